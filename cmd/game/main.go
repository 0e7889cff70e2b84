package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/pixelshooter/internal/config"
	"github.com/tomz197/pixelshooter/internal/logging"
	"github.com/tomz197/pixelshooter/internal/loop"
	"github.com/tomz197/pixelshooter/internal/sound"
	"github.com/tomz197/pixelshooter/internal/store"
)

func main() {
	// The terminal belongs to the game; logs only go to a file when asked.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("PIXELSHOOTER_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(logOut, "game")

	tuning, err := config.TuningFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load tuning: %v\n", err)
		os.Exit(1)
	}

	kv := store.OpenOrMemory(config.GetEnv("PIXELSHOOTER_APP", "pixelshooter"), logger)
	settings, err := store.LoadSettings(kv)
	if err != nil {
		logger.Warn("Using default settings", "err", err)
	}

	player, err := sound.NewPlayer(config.GetEnvBool("PIXELSHOOTER_SOUND", settings.Sound), logger)
	if err != nil {
		logger.Warn("Sound disabled", "err", err)
	}
	defer player.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{
		Username: config.GetEnv("USER", ""),
		Tuning:   &tuning,
		KV:       kv,
		Sound:    player,
		Logger:   logger,
	}
	if err := loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
