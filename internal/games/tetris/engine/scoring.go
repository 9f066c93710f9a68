package engine

import (
	"math"
	"time"
)

// Level bounds.
const (
	MinLevel = 1
	MaxLevel = 20
)

// Tracker accumulates score and cleared lines and owns the level counter.
type Tracker struct {
	score int
	lines int
	level int
}

// NewTracker creates a tracker starting at the given level (clamped to 1..20).
func NewTracker(startLevel int) *Tracker {
	t := &Tracker{}
	t.Reset(startLevel)
	return t
}

// Reset zeroes score and lines and sets the level.
func (t *Tracker) Reset(startLevel int) {
	t.score = 0
	t.lines = 0
	t.level = clampLevel(startLevel)
}

// Score returns the accumulated score.
func (t *Tracker) Score() int {
	return t.score
}

// Lines returns the cumulative number of cleared lines.
func (t *Tracker) Lines() int {
	return t.lines
}

// Level returns the current level.
func (t *Tracker) Level() int {
	return t.level
}

// AddScore adds n points. Negative amounts are ignored.
func (t *Tracker) AddScore(n int) {
	if n > 0 {
		t.score += n
	}
}

// AddLines adds n to the cleared-lines counter. Negative amounts are ignored.
func (t *Tracker) AddLines(n int) {
	if n > 0 {
		t.lines += n
	}
}

// ReachLevelRequirement reports whether lines cleared so far are enough to
// leave the current level. With L = level-1 the threshold is 5L²+5L, so the
// first clear at level 1 always qualifies and later thresholds run 10, 30, 60...
// It is never true at the level cap.
func (t *Tracker) ReachLevelRequirement(lines int) bool {
	if t.level >= MaxLevel {
		return false
	}
	return lines >= LevelThreshold(t.level)
}

// LevelUp advances one level unless already capped.
func (t *Tracker) LevelUp() bool {
	if t.level >= MaxLevel {
		return false
	}
	t.level++
	return true
}

// LevelThreshold returns the cumulative lines needed to leave level.
func LevelThreshold(level int) int {
	l := clampLevel(level) - 1
	return 5*l*l + 5*l
}

// FallIntervalMs returns the gravity interval for a level in milliseconds:
// round(1065/(level+2)) + 45. That is 400ms at level 1 and 93ms at level 20.
func FallIntervalMs(level int) int {
	x := clampLevel(level) - 1
	return int(math.Round(1065.0/float64(x+3))) + 45
}

// FallInterval is FallIntervalMs as a duration.
func FallInterval(level int) time.Duration {
	return time.Duration(FallIntervalMs(level)) * time.Millisecond
}

func clampLevel(level int) int {
	return max(MinLevel, min(MaxLevel, level))
}
