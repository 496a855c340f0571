package catcher

// Session is the mutable state of one run. A fresh Session is built on
// every scene build; only the high score carries over.
type Session struct {
	Score         int
	Lives         int
	HighScore     int
	GameOver      bool
	GameStarted   bool // Always true when the variant has no start gate
	LastSpinScore int
}

// NewSession creates the state for a new run.
func NewSession(lives, highScore int, gated bool) *Session {
	return &Session{
		Lives:       lives,
		HighScore:   highScore,
		GameStarted: !gated,
	}
}

// Reset restores lives and score for a restart. The high score is kept.
func (s *Session) Reset(lives int) {
	s.Lives = lives
	s.Score = 0
	s.GameOver = false
}

// Celebrate reports whether score is a milestone not yet celebrated,
// and records it if so.
func (s *Session) Celebrate(every int) bool {
	if every <= 0 || s.Score <= 0 || s.Score%every != 0 || s.Score == s.LastSpinScore {
		return false
	}
	s.LastSpinScore = s.Score
	return true
}
