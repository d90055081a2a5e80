// Package engine derives verdicts, goal progress and financial health from an
// AppData snapshot. Every function is pure: no I/O, no logging, no clock.
package engine

import (
	"fmt"
	"math"
)

const (
	// NoEstimate is returned when there is no allocation to project from.
	NoEstimate = "—"
	// GoalReached is returned once the total meets the goal.
	GoalReached = "Goal reached ✓"
)

// Progress is current as a percentage of goal, capped at 100. goal must be
// positive.
func Progress(current, goal float64) float64 {
	return math.Min(current/goal*100, 100)
}

// PeriodsRemaining estimates how many months of allocation are left until goal.
func PeriodsRemaining(current, goal, allocation float64) string {
	if allocation <= 0 {
		return NoEstimate
	}
	if current >= goal {
		return GoalReached
	}
	n := int(math.Ceil((goal - current) / allocation))
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}
