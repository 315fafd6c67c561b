package model

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dori/goalboard/internal/catalog"
	"github.com/google/uuid"
)

var (
	// ErrEmptyText is returned when a goal has no text.
	ErrEmptyText = errors.New("goal text is empty")
	// ErrInvalidProgress is returned for a progress with a non-positive total
	// or a negative current value.
	ErrInvalidProgress = errors.New("invalid progress")
)

// Goal is a single goal on the board.
type Goal struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
	// Category is a category key. It is not checked against the catalog;
	// unknown keys render with the default category.
	Category  string    `json:"category" yaml:"category"`
	Completed bool      `json:"completed" yaml:"completed"`
	Progress  *Progress `json:"progress,omitempty" yaml:"progress,omitempty"`
	// Card decorates the goal's card; nil means plain.
	Card *CardCustomization `json:"card,omitempty" yaml:"card,omitempty"`
}

// Progress tracks measurable advancement toward a goal, e.g. 3 of 12 books.
type Progress struct {
	Current float64 `json:"current" yaml:"current"`
	Total   float64 `json:"total" yaml:"total"`
	Unit    string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// NewGoal creates an incomplete goal with a fresh ID.
func NewGoal(text, category string) Goal {
	return Goal{
		ID:       uuid.New().String(),
		Text:     strings.TrimSpace(text),
		Category: category,
	}
}

// Validate checks the goal's text and progress.
func (g Goal) Validate() error {
	if strings.TrimSpace(g.Text) == "" {
		return ErrEmptyText
	}
	if g.Progress != nil {
		if err := g.Progress.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Descriptor resolves the goal's category with r.
func (g Goal) Descriptor(r *catalog.Resolver) catalog.Category {
	return r.Resolve(g.Category)
}

// Validate reports whether the progress can be displayed.
func (p Progress) Validate() error {
	if p.Total <= 0 || math.IsNaN(p.Total) || math.IsInf(p.Total, 0) {
		return fmt.Errorf("%w: total must be positive, got %v", ErrInvalidProgress, p.Total)
	}
	if p.Current < 0 || math.IsNaN(p.Current) {
		return fmt.Errorf("%w: current must not be negative, got %v", ErrInvalidProgress, p.Current)
	}
	return nil
}

// Fraction returns Current/Total clamped to [0, 1]. Invalid progress is 0.
func (p Progress) Fraction() float64 {
	if p.Validate() != nil {
		return 0
	}
	return math.Min(p.Current/p.Total, 1)
}

// Percent returns the rounded completion percentage.
func (p Progress) Percent() int {
	return int(math.Round(p.Fraction() * 100))
}

// Done reports whether the current value has reached the total.
func (p Progress) Done() bool {
	return p.Validate() == nil && p.Current >= p.Total
}

// String formats the progress as "3/12 books".
func (p Progress) String() string {
	s := formatAmount(p.Current) + "/" + formatAmount(p.Total)
	if p.Unit != "" {
		s += " " + p.Unit
	}
	return s
}

func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
