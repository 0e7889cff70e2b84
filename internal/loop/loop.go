// Package loop runs the single-player terminal game: one client hosted by
// a private server around the local score store.
package loop

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pixelshooter/internal/config"
	"github.com/tomz197/pixelshooter/internal/draw"
	"github.com/tomz197/pixelshooter/internal/loop/client"
	"github.com/tomz197/pixelshooter/internal/loop/server"
	"github.com/tomz197/pixelshooter/internal/sound"
	"github.com/tomz197/pixelshooter/internal/store"
)

// Options configures a local game.
type Options struct {
	Username     string
	Tuning       *config.Tuning
	KV           store.KV // Scores and settings; nil keeps them in memory
	Sound        *sound.Player
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc
}

// Run plays until the player quits or ctx is cancelled.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	kv := opts.KV
	if kv == nil {
		kv = store.NewMemoryKV()
	}

	scores := store.NewScores(kv, opts.Logger)
	srv := server.NewServer(scores, opts.Logger)

	c := client.NewClient(srv, r, w, client.ClientOptions{
		TermSizeFunc: opts.TermSizeFunc,
		Username:     opts.Username,
		Tuning:       opts.Tuning,
		Sound:        opts.Sound,
		Settings:     kv,
		Logger:       opts.Logger,
	})
	return c.Run(ctx)
}
