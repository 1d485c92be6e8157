package typing

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/rush-arcade/internal/config"
)

// Session is one typing round: the player races a per-word countdown and
// scores a point for every target word typed in full.
type Session struct {
	Score            int
	SecondsRemaining int
	TargetWord       string
	Running          bool

	roundSeconds int
	words        []string
	rng          *rand.Rand
	timerArmed   bool
	played       bool
}

// NewSession creates an idle session drawing words from cfg.
func NewSession(cfg config.TypingConfig, seed int64) *Session {
	words := make([]string, len(cfg.Words))
	for i, w := range cfg.Words {
		words[i] = normalize(w)
	}

	return &Session{
		roundSeconds: cfg.RoundSeconds,
		words:        words,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Start resets the score, picks a word and arms the countdown.
func (s *Session) Start() {
	s.Score = 0
	s.Running = true
	s.played = true
	s.advanceWord()
}

// OnInput compares the player's current input with the target word,
// ignoring case. On a match it scores a point, moves to a new word and
// reports true. Input outside a running round is ignored.
func (s *Session) OnInput(text string) bool {
	if !s.Running {
		return false
	}
	if normalize(text) != s.TargetWord {
		return false
	}

	s.Score++
	s.advanceWord()
	return true
}

// TickSecond is called once per elapsed countdown second.
// It ends the round when the countdown reaches zero.
func (s *Session) TickSecond() {
	if !s.Running || !s.timerArmed {
		return
	}

	s.SecondsRemaining--
	if s.SecondsRemaining <= 0 {
		s.SecondsRemaining = 0
		s.End()
	}
}

// End stops the round and freezes the score.
func (s *Session) End() {
	s.Running = false
	s.timerArmed = false
	s.TargetWord = ""
}

// Ended reports whether at least one round has been played and none is running.
func (s *Session) Ended() bool {
	return s.played && !s.Running
}

// TimerArmed reports whether the countdown is currently active.
func (s *Session) TimerArmed() bool {
	return s.timerArmed
}

// advanceWord picks a new target and restarts the countdown. Re-arming
// replaces the previous timer rather than adding a second one.
func (s *Session) advanceWord() {
	s.TargetWord = s.words[s.rng.Intn(len(s.words))]
	s.SecondsRemaining = s.roundSeconds
	s.timerArmed = true
}

func normalize(text string) string {
	return strings.ToUpper(text)
}
