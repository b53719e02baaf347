// Package memory implements a Simon-style sequence memory game.
//
// Each round the engine appends one random cell to a growing sequence and
// replays the whole sequence; the player then has to click it back in order.
package memory

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-mindgames/internal/config"
	"github.com/vovakirdan/tui-mindgames/internal/sched"
)

// Status is the phase of the round state machine.
type Status int

const (
	StatusIdle          Status = iota // Before the first Start
	StatusPresenting                  // Replaying the sequence, clicks ignored
	StatusAwaitingInput               // Player repeats the sequence
	StatusEvaluating                  // Round completed, next round pending
	StatusGameOver                    // Wrong click; Start to play again
)

// String returns the status name used in render payloads.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPresenting:
		return "presenting"
	case StatusAwaitingInput:
		return "awaiting_input"
	case StatusEvaluating:
		return "evaluating"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText lets Status serialize as its name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Feedback marks the outcome of the last click.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "correct"
	case FeedbackWrong:
		return "wrong"
	default:
		return "none"
	}
}

// MarshalText lets Feedback serialize as its name.
func (f Feedback) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// NoCell is used for HighlightedCell and FeedbackCell when nothing is shown.
const NoCell = -1

// View is the render payload emitted after every transition.
type View struct {
	Level           int      `json:"level"`
	Score           int      `json:"score"`
	Status          Status   `json:"status"`
	HighlightedCell int      `json:"highlightedCell"`
	Feedback        Feedback `json:"feedback"`
	FeedbackCell    int      `json:"feedbackCell"`
	SequenceLength  int      `json:"sequenceLength"`
	Progress        int      `json:"progress"`
	Cells           int      `json:"cells"`
}

// Renderer receives a View after every state transition.
type Renderer func(View)

// Engine owns one memory game. It is not safe for concurrent use; all calls
// and scheduled actions must come from one goroutine.
type Engine struct {
	cfg    config.MemoryConfig
	rng    *rand.Rand
	timers *sched.Group
	render Renderer

	sequence []int
	progress []int
	level    int
	score    int
	status   Status

	highlighted  int
	feedback     Feedback
	feedbackCell int
	flashes      int // Bumped per flash so an older clear never hides a newer one
}

// New creates an idle engine. render may be nil.
func New(cfg config.MemoryConfig, s sched.Scheduler, rng *rand.Rand, render Renderer) *Engine {
	return &Engine{
		cfg:          cfg,
		rng:          rng,
		timers:       sched.NewGroup(s),
		render:       render,
		level:        1,
		highlighted:  NoCell,
		feedbackCell: NoCell,
	}
}

// Start begins a new game, discarding any game in progress and its pending playback.
func (e *Engine) Start() {
	e.timers.CancelAll()
	e.sequence = e.sequence[:0]
	e.progress = e.progress[:0]
	e.level = 1
	e.score = 0
	e.highlighted = NoCell
	e.clearFeedback()
	e.nextRound()
}

// Stop cancels pending playback without changing the visible state.
func (e *Engine) Stop() {
	e.timers.CancelAll()
}

// nextRound extends the sequence and replays it.
func (e *Engine) nextRound() {
	e.progress = e.progress[:0]
	e.sequence = append(e.sequence, e.rng.Intn(e.cfg.Grid.Cells()))
	e.status = StatusPresenting
	e.emit()
	e.timers.After(e.cfg.Timing.StepInterval, func() { e.playStep(0) })
}

// playStep lights sequence[i]; the last step hands control to the player.
func (e *Engine) playStep(i int) {
	e.highlighted = e.sequence[i]
	e.emit()

	cell := e.sequence[i]
	e.timers.After(e.cfg.Timing.Highlight, func() {
		if e.highlighted == cell {
			e.highlighted = NoCell
			e.emit()
		}
	})

	if i+1 < len(e.sequence) {
		e.timers.After(e.cfg.Timing.StepInterval, func() { e.playStep(i + 1) })
		return
	}
	e.status = StatusAwaitingInput
	e.emit()
}

// HandleCellClick processes a click on cell index.
// Returns false if the click was ignored.
func (e *Engine) HandleCellClick(index int) bool {
	if e.status != StatusAwaitingInput || index < 0 || index >= e.cfg.Grid.Cells() {
		return false
	}

	e.progress = append(e.progress, index)
	pos := len(e.progress) - 1

	if e.sequence[pos] != index {
		e.status = StatusGameOver
		e.flash(FeedbackWrong, index, e.cfg.Timing.WrongFlash)
		return true
	}

	if len(e.progress) < len(e.sequence) {
		e.flash(FeedbackCorrect, index, e.cfg.Timing.CorrectFlash)
		return true
	}

	e.score += e.level * e.cfg.Scoring.PointsPerLevel
	e.level++
	e.status = StatusEvaluating
	e.flash(FeedbackCorrect, index, e.cfg.Timing.CorrectFlash)
	e.timers.After(e.cfg.Timing.NextRoundDelay, e.nextRound)
	return true
}

// flash shows click feedback on a cell and clears it after d.
func (e *Engine) flash(f Feedback, cell int, d time.Duration) {
	e.flashes++
	id := e.flashes
	e.feedback = f
	e.feedbackCell = cell
	e.emit()
	e.timers.After(d, func() {
		if e.flashes == id {
			e.clearFeedback()
			e.emit()
		}
	})
}

func (e *Engine) clearFeedback() {
	e.feedback = FeedbackNone
	e.feedbackCell = NoCell
}

func (e *Engine) emit() {
	if e.render != nil {
		e.render(e.View())
	}
}

// View returns the current render payload.
func (e *Engine) View() View {
	return View{
		Level:           e.level,
		Score:           e.score,
		Status:          e.status,
		HighlightedCell: e.highlighted,
		Feedback:        e.feedback,
		FeedbackCell:    e.feedbackCell,
		SequenceLength:  len(e.sequence),
		Progress:        len(e.progress),
		Cells:           e.cfg.Grid.Cells(),
	}
}

// Status returns the current phase.
func (e *Engine) Status() Status { return e.status }

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Sequence returns a copy of the current sequence.
func (e *Engine) Sequence() []int {
	return append([]int(nil), e.sequence...)
}
