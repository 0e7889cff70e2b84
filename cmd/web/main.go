package main

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pixelshooter/internal/config"
	"github.com/tomz197/pixelshooter/internal/logging"
	"github.com/tomz197/pixelshooter/internal/store"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var pageTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"rank": func(i int) int { return i + 1 },
}).Parse(htmlPage))

type pageData struct {
	SSHHost     string
	Leaderboard []store.Entry
}

func main() {
	logger := logging.New(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	// The SSH server owns the board; reload it on every request.
	kv := store.OpenOrMemory(config.GetEnv("PIXELSHOOTER_APP", "pixelshooter-ssh"), logger)
	board := func() []store.Entry {
		return store.NewScores(kv, logger).Leaderboard()
	}

	addr := net.JoinHostPort(host, port)
	logger.Info("Starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, newMux(sshHost, board, logger)); err != nil {
		logger.Fatal("Server error", "err", err)
	}
}

func newMux(sshHost string, board func() []store.Entry, logger *log.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := pageData{SSHHost: sshHost, Leaderboard: board()}
		if err := pageTmpl.Execute(w, data); err != nil {
			logger.Error("Failed to render page", "err", err)
		}
	})

	mux.HandleFunc("GET /api/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(board()); err != nil {
			logger.Error("Failed to encode leaderboard", "err", err)
		}
	})

	return mux
}
