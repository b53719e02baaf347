package web

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-mindgames/internal/multiplayer"
	"github.com/vovakirdan/tui-mindgames/internal/sched"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
	loopBuffer     = 64
)

// Message types sent by the server.
const (
	TypeWelcome = "welcome"
	TypeView    = "view"
)

// ClientMessage is one input from the browser.
//
//	{"type":"start"}                          new game (also "reset")
//	{"type":"click","index":4}                memory and tictactoe
//	{"type":"pick","color":"red"}             codebreaker
//	{"type":"erase"} / {"type":"submit"}      codebreaker
//	{"type":"guess","guess":["red",...]}      codebreaker, whole guess at once
type ClientMessage struct {
	Type  string   `json:"type"`
	Index *int     `json:"index,omitempty"`
	Color string   `json:"color,omitempty"`
	Guess []string `json:"guess,omitempty"`
}

// ServerMessage is sent after connecting and after every state transition.
type ServerMessage struct {
	Type    string `json:"type"`
	Session string `json:"session,omitempty"`
	Match   string `json:"match,omitempty"`
	Game    string `json:"game"`
	View    any    `json:"view,omitempty"`
}

// session is one WebSocket connection playing one game.
// Everything except the read loop runs on loop.
type session struct {
	id     multiplayer.SessionID
	gameID string
	conn   *websocket.Conn
	loop   *sched.Loop
	saver  multiplayer.ResultSaver
	logger *log.Logger

	driver driver
	match  *multiplayer.Match
	saved  bool
	closed bool
}

func (s *Server) newSession(conn *websocket.Conn, gameID string) (*session, error) {
	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess := &session{
		id:     multiplayer.NewSessionID(),
		gameID: gameID,
		conn:   conn,
		loop:   sched.NewLoop(loopBuffer),
		logger: s.logger,
	}
	if s.store != nil {
		sess.saver = s.store
	}

	d, err := s.newDriver(gameID, sess.loop, rand.New(rand.NewSource(seed)), sess.emit)
	if err != nil {
		return nil, err
	}
	sess.driver = d
	return sess, nil
}

// run blocks until the client disconnects or ctx is cancelled.
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() { _ = s.loop.Run(ctx) }()
	s.loop.Post(s.begin)

	s.conn.SetReadLimit(maxMessageSize)
	for {
		var msg ClientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("read failed", "session", s.id, "error", err)
			}
			break
		}
		if !s.loop.Post(func() { s.handle(msg) }) {
			break
		}
	}

	cancel()
	<-s.loop.Done()
	// The loop has exited, so the engine is ours now
	s.driver.stop()
	s.conn.Close()
}

func (s *session) begin() {
	s.send(ServerMessage{Type: TypeWelcome, Session: string(s.id), Game: s.gameID})
	s.restart()
}

func (s *session) restart() {
	s.match = multiplayer.NewMatch(s.id, s.gameID)
	s.saved = false
	s.driver.start()
}

func (s *session) handle(msg ClientMessage) {
	switch msg.Type {
	case "start", "reset":
		s.restart()
	default:
		if !s.driver.handle(msg) {
			s.logger.Debug("input ignored", "session", s.id, "type", msg.Type)
		}
	}
}

// emit is the engine's renderer. The result is saved before the final view
// goes out, so a client that sees the game end can already read it back.
func (s *session) emit(view any) {
	s.checkFinished()
	msg := ServerMessage{Type: TypeView, Game: s.gameID, View: view}
	if s.match != nil {
		msg.Match = string(s.match.ID)
	}
	s.send(msg)
}

func (s *session) checkFinished() {
	if s.saved || s.match == nil {
		return
	}
	done, score, outcome := s.driver.result()
	if !done {
		return
	}
	s.saved = true
	if s.saver == nil {
		return
	}
	if err := s.saver.SaveMatchResult(s.match.Result(score, string(outcome))); err != nil {
		s.logger.Error("cannot save result", "session", s.id, "game", s.gameID, "error", err)
	}
}

func (s *session) send(msg ServerMessage) {
	if s.closed {
		return
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(msg); err != nil {
		s.logger.Warn("write failed", "session", s.id, "error", err)
		// Unblocks the read loop, which then tears the session down
		s.closed = true
		s.conn.Close()
	}
}
