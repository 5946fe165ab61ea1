package search

import (
	"fmt"
	"math"
	"strings"
)

// History weighting defaults.
const (
	// DefaultHistoryWindow is the number of trailing turns that
	// participate in query augmentation.
	DefaultHistoryWindow = 2

	// DefaultHistoryDecay is the per-turn weight decay, applied by
	// distance from the most recent turn.
	DefaultHistoryDecay = 0.9
)

// HistoryWeighter renders a trailing conversation window into a single
// decayed-weight text fragment appended to the raw query.
type HistoryWeighter struct {
	window int
	decay  float64
}

// NewHistoryWeighter creates a weighter with the given window and decay.
// Non-positive values fall back to the defaults.
func NewHistoryWeighter(window int, decay float64) *HistoryWeighter {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	if decay <= 0 {
		decay = DefaultHistoryDecay
	}
	return &HistoryWeighter{window: window, decay: decay}
}

// Fragment renders the last window turns as "<weight> * <content>"
// pieces joined by spaces in chronological order. The most recent turn
// carries weight 1.00, each earlier turn one decay step less. Empty
// history yields an empty fragment.
func (w *HistoryWeighter) Fragment(history []Turn) string {
	if len(history) == 0 {
		return ""
	}

	recent := history
	if len(recent) > w.window {
		recent = recent[len(recent)-w.window:]
	}

	pieces := make([]string, len(recent))
	for i, turn := range recent {
		// i runs chronologically; distance counts back from the newest.
		distance := len(recent) - 1 - i
		weight := math.Pow(w.decay, float64(distance))
		pieces[i] = fmt.Sprintf("%.2f * %s", weight, turn.Content)
	}
	return strings.Join(pieces, " ")
}

// Augment appends the history fragment to the raw query. With empty
// history the raw query is returned unmodified.
func (w *HistoryWeighter) Augment(query string, history []Turn) string {
	fragment := w.Fragment(history)
	if fragment == "" {
		return query
	}
	return query + " " + fragment
}
