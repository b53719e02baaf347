// Package web serves the games over WebSocket.
//
// Every connection to /ws/{game} owns one engine. Engine calls, deferred
// actions and socket writes all run on the connection's sched.Loop, so engines
// stay single-threaded exactly as they are in the terminal front end.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-mindgames/internal/config"
	"github.com/vovakirdan/tui-mindgames/internal/multiplayer"
	"github.com/vovakirdan/tui-mindgames/internal/registry"
	"github.com/vovakirdan/tui-mindgames/internal/storage"
)

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// AllowAnyOrigin disables the same-origin check on WebSocket upgrades.
	AllowAnyOrigin bool

	// Seed fixes the RNG seed of every session. Zero seeds from the clock.
	Seed int64

	Memory      config.MemoryConfig
	TicTacToe   config.TicTacToeConfig
	CodeBreaker config.CodeBreakerConfig

	// Logger defaults to a stderr logger prefixed "arcade-web".
	Logger *log.Logger
}

// DefaultConfig returns a config with the built-in game settings.
func DefaultConfig() Config {
	return Config{
		Address:     ":8080",
		Memory:      config.DefaultMemoryConfig(),
		TicTacToe:   config.DefaultTicTacToeConfig(),
		CodeBreaker: config.DefaultCodeBreakerConfig(),
	}
}

// Server is the HTTP and WebSocket front end.
type Server struct {
	config   Config
	store    *storage.Store
	logger   *log.Logger
	router   *mux.Router
	upgrader websocket.Upgrader
	http     *http.Server
}

// NewServer creates a server. store may be nil, in which case results are
// not saved and the scores endpoint reports 503.
func NewServer(cfg Config, store *storage.Store) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-web",
		})
	}

	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if cfg.AllowAnyOrigin {
		s.upgrader.CheckOrigin = func(*http.Request) bool { return true }
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/api/games", s.handleGames).Methods("GET")
	r.HandleFunc("/api/scores/{game}", s.handleScores).Methods("GET")
	r.HandleFunc("/ws/{game}", s.handleWS)
	s.router = r

	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the router, for mounting or httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting web server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.logger.Error("server error", "error", err)
			return fmt.Errorf("web: http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// gameEntry is one item of /api/games.
type gameEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Mode  string `json:"mode"`
}

// scoresResponse is the body of /api/scores/{game}.
type scoresResponse struct {
	Game   string                `json:"game"`
	Scores []storage.ScoreEntry  `json:"scores"`
	Recent []storage.MatchResult `json:"recent"`
	Stats  *storage.GameStats    `json:"stats"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGames(w http.ResponseWriter, _ *http.Request) {
	games := registry.List()
	out := make([]gameEntry, 0, len(games))
	for _, g := range games {
		out = append(out, gameEntry{
			ID:    g.ID,
			Title: g.Title,
			Mode:  multiplayer.ModeFor(g.ID).String(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["game"]
	if !registry.Exists(gameID) {
		writeError(w, http.StatusNotFound, "unknown game")
		return
	}
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "scores are not available")
		return
	}

	resp := scoresResponse{Game: gameID}
	var err error
	if resp.Scores, err = s.store.TopScores(gameID, 10); err != nil {
		s.logger.Error("cannot load scores", "game", gameID, "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load scores")
		return
	}
	if resp.Recent, err = s.store.RecentResults(gameID, 10); err != nil {
		s.logger.Error("cannot load results", "game", gameID, "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load results")
		return
	}
	if resp.Stats, err = s.store.GetGameStats(gameID); err != nil {
		s.logger.Error("cannot load stats", "game", gameID, "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load stats")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["game"]
	if !registry.Exists(gameID) {
		writeError(w, http.StatusNotFound, "unknown game")
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		s.logger.Warn("websocket upgrade failed", "game", gameID, "error", err)
		return
	}

	sess, err := s.newSession(conn, gameID)
	if err != nil {
		s.logger.Error("cannot start session", "game", gameID, "error", err)
		conn.Close()
		return
	}

	start := time.Now()
	s.logger.Info("session opened", "session", sess.id, "game", gameID, "remote", r.RemoteAddr)
	sess.run(r.Context())
	s.logger.Info("session closed", "session", sess.id, "game", gameID, "duration", time.Since(start))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
