package loop

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/pixelshooter/internal/store"
)

func TestRunLocalGame(t *testing.T) {
	kv := store.NewMemoryKV()
	var out bytes.Buffer

	// Start, toggle sound, then quit.
	in := strings.NewReader("\rtq")
	opts := Options{
		Username:     "local",
		KV:           kv,
		TermSizeFunc: func() (int, int, error) { return 100, 30, nil },
	}

	done := make(chan error, 1)
	go func() { done <- Run(context.Background(), in, &out, opts) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}

	if _, err := kv.Load("settings"); err != nil {
		t.Errorf("Expected the sound toggle saved to the store, got %v", err)
	}
}
