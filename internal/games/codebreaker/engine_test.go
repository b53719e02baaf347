package codebreaker

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-mindgames/internal/config"
)

func newTestEngine(seed int64, render Renderer) *Engine {
	e := New(config.DefaultCodeBreakerConfig(), rand.New(rand.NewSource(seed)), render)
	e.Start()
	return e
}

// wrongGuess returns a complete guess that cannot be all exact.
func wrongGuess(secret []Color) []Color {
	g := append([]Color(nil), secret...)
	if g[0] == Red {
		g[0] = Blue
	} else {
		g[0] = Red
	}
	return g
}

func TestStartDrawsSecret(t *testing.T) {
	e := newTestEngine(1, nil)
	secret := e.Secret()
	if len(secret) != 4 {
		t.Fatalf("secret length = %d, expected 4", len(secret))
	}
	for _, c := range secret {
		if c < Red || c > Orange {
			t.Errorf("secret color %v outside the palette", c)
		}
	}
	v := e.View()
	if v.Status != StatusPlaying || v.CurrentRow != 0 || len(v.Rows) != 0 {
		t.Errorf("fresh view = %+v", v)
	}
	if v.Secret != nil {
		t.Error("secret must stay hidden while playing")
	}
}

func TestSameSeedSameSecret(t *testing.T) {
	a := newTestEngine(77, nil).Secret()
	b := newTestEngine(77, nil).Secret()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("secrets differ: %v vs %v", a, b)
		}
	}
}

func TestWinningGuess(t *testing.T) {
	e := newTestEngine(2, nil)
	e.SubmitGuess(wrongGuess(e.Secret()))
	if !e.SubmitGuess(e.Secret()) {
		t.Fatal("correct guess rejected")
	}
	if e.Status() != StatusWon {
		t.Fatalf("status = %v, expected won", e.Status())
	}
	// Two rows used of eight: (8+1-2)*10
	if e.Score() != 70 {
		t.Errorf("Score() = %d, expected 70", e.Score())
	}
	if e.SubmitGuess(e.Secret()) {
		t.Error("guesses after a win should be ignored")
	}
	if e.Rows() != 2 {
		t.Errorf("rows = %d, expected 2", e.Rows())
	}
}

func TestEighthMissLoses(t *testing.T) {
	e := newTestEngine(3, nil)
	miss := wrongGuess(e.Secret())
	for i := 1; i <= 8; i++ {
		if !e.SubmitGuess(miss) {
			t.Fatalf("guess %d rejected", i)
		}
		if i < 8 && e.Status() != StatusPlaying {
			t.Fatalf("status after %d misses = %v", i, e.Status())
		}
	}
	if e.Status() != StatusLost {
		t.Fatalf("status = %v, expected lost", e.Status())
	}
	v := e.View()
	if len(v.Secret) != 4 {
		t.Fatalf("lost view should reveal the secret, got %v", v.Secret)
	}
	for i, c := range e.Secret() {
		if v.Secret[i] != c {
			t.Errorf("revealed secret %v, want %v", v.Secret, e.Secret())
		}
	}
	if e.SubmitGuess(e.Secret()) {
		t.Error("guesses after a loss should be ignored")
	}
	if e.Score() != 0 {
		t.Errorf("Score() after loss = %d, expected 0", e.Score())
	}
}

func TestInvalidGuessesIgnored(t *testing.T) {
	e := newTestEngine(4, nil)
	bad := [][]Color{
		nil,
		{Red, Blue, Green},
		{Red, Blue, Green, Yellow, Purple},
		{Red, NoColor, Green, Yellow},
		{Red, Color(99), Green, Yellow},
	}
	for _, g := range bad {
		if e.SubmitGuess(g) {
			t.Errorf("SubmitGuess(%v) should be ignored", g)
		}
	}
	if e.Rows() != 0 {
		t.Errorf("rows = %d, invalid guesses must not consume rows", e.Rows())
	}

	idle := New(config.DefaultCodeBreakerConfig(), rand.New(rand.NewSource(1)), nil)
	if idle.SubmitGuess([]Color{Red, Red, Red, Red}) {
		t.Error("guess before Start should be ignored")
	}
}

func TestPickEraseSubmit(t *testing.T) {
	var last View
	e := newTestEngine(5, func(v View) { last = v })

	for _, c := range []Color{Red, Blue, Green} {
		if !e.Pick(c) {
			t.Fatalf("Pick(%v) rejected", c)
		}
	}
	if e.Submit() {
		t.Fatal("incomplete guess should not submit")
	}
	if last.Notice != "choose 4 colors" {
		t.Errorf("notice = %q", last.Notice)
	}
	if e.Rows() != 0 {
		t.Error("incomplete submit must not consume a row")
	}

	if !e.Erase() {
		t.Fatal("Erase() rejected")
	}
	if last.Notice != "" {
		t.Error("editing the guess should clear the notice")
	}
	want := []Color{Red, Blue, NoColor, NoColor}
	for i, c := range want {
		if last.Current[i] != c {
			t.Fatalf("current = %v, want %v", last.Current, want)
		}
	}

	e.Pick(Yellow)
	e.Pick(Purple)
	if e.Pick(Orange) {
		t.Error("Pick on a full guess should be ignored")
	}
	if !e.Submit() {
		t.Fatal("full guess should submit")
	}
	if last.CurrentRow != 1 || len(last.Rows) != 1 {
		t.Fatalf("after submit: %+v", last)
	}
	for _, c := range last.Current {
		if c != NoColor {
			t.Fatal("current guess should be cleared after submit")
		}
	}
	if got := last.Rows[0].Guess; got[2] != Yellow || got[3] != Purple {
		t.Errorf("submitted row = %v", got)
	}
}

func TestEraseEmptyAndPickOutsidePalette(t *testing.T) {
	cfg := config.DefaultCodeBreakerConfig()
	cfg.Code.Colors = 4
	e := New(cfg, rand.New(rand.NewSource(6)), nil)
	e.Start()

	if e.Erase() {
		t.Error("Erase on an empty guess should be ignored")
	}
	if e.Pick(Purple) || e.Pick(NoColor) {
		t.Error("colors outside the configured palette should be ignored")
	}
	for _, c := range e.Secret() {
		if c > Yellow {
			t.Errorf("secret uses %v outside a 4-color palette", c)
		}
	}
	if got := len(e.View().Palette); got != 4 {
		t.Errorf("palette size = %d, expected 4", got)
	}
}

func TestStartResetsGame(t *testing.T) {
	e := newTestEngine(8, nil)
	e.SubmitGuess(wrongGuess(e.Secret()))
	e.Pick(Red)
	e.Start()
	v := e.View()
	if len(v.Rows) != 0 || v.CurrentRow != 0 || v.Status != StatusPlaying {
		t.Errorf("Start should clear the board, got %+v", v)
	}
	for _, c := range v.Current {
		if c != NoColor {
			t.Error("Start should clear the guess being built")
		}
	}
}
