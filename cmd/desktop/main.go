package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/pixelshooter/internal/config"
	"github.com/tomz197/pixelshooter/internal/desktop"
	"github.com/tomz197/pixelshooter/internal/logging"
	"github.com/tomz197/pixelshooter/internal/sound"
	"github.com/tomz197/pixelshooter/internal/store"
)

func main() {
	logger := logging.New(os.Stderr, "desktop")

	tuning, err := config.TuningFromEnv()
	if err != nil {
		logger.Fatal("Failed to load tuning", "err", err)
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

	g := desktop.New(desktop.Options{
		PlayerName: config.GetEnv("USER", "PLAYER"),
		Tuning:     &tuning,
		KV:         kv,
		Sound:      player,
		Logger:     logger,
	})
	defer g.Close()

	ebiten.SetWindowSize(int(tuning.Width), int(tuning.Height))
	ebiten.SetWindowTitle("Pixel Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Error("Game error", "err", err)
	}
}
