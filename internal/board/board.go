// Package board keeps the goals of one session in memory and groups them by
// category for display.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dori/goalboard/internal/catalog"
	"github.com/dori/goalboard/internal/model"
)

// ErrGoalNotFound is returned when an operation names an unknown goal ID.
var ErrGoalNotFound = errors.New("goal not found")

// Board is an ordered, in-memory set of goals. It is not safe for concurrent
// use; the TUI owns it from a single goroutine.
type Board struct {
	resolver *catalog.Resolver
	goals    []model.Goal
}

// Group is the goals of one resolved category.
type Group struct {
	Category catalog.Category
	Goals    []model.Goal
}

// Stats summarises completion across the board.
type Stats struct {
	Total     int
	Completed int
}

// Percent returns the completed share as a whole percentage.
func (s Stats) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Completed * 100 / s.Total
}

// New creates a board seeded with goals. Seeds are validated; goals without
// an ID get one, and the legacy default category key is migrated when the
// resolver uses the current schema.
func New(resolver *catalog.Resolver, seed ...model.Goal) (*Board, error) {
	if resolver == nil {
		resolver = catalog.NewResolver(catalog.SchemaCurrent)
	}
	b := &Board{resolver: resolver}

	seen := make(map[string]bool, len(seed))
	for i, g := range seed {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("goal %d: %w", i, err)
		}
		if g.ID == "" {
			g.ID = model.NewGoal(g.Text, g.Category).ID
		}
		if seen[g.ID] {
			return nil, fmt.Errorf("goal %d: duplicate id %q", i, g.ID)
		}
		seen[g.ID] = true
		if resolver.Schema() == catalog.SchemaCurrent {
			g.Category = catalog.MigrateCategoryKey(g.Category)
		}
		b.goals = append(b.goals, g)
	}
	return b, nil
}

// Resolver returns the category resolver the board groups with.
func (b *Board) Resolver() *catalog.Resolver {
	return b.resolver
}

// Goals returns a copy of all goals in insertion order.
func (b *Board) Goals() []model.Goal {
	out := make([]model.Goal, len(b.goals))
	copy(out, b.goals)
	return out
}

// Len returns the number of goals.
func (b *Board) Len() int {
	return len(b.goals)
}

// Get returns the goal with id.
func (b *Board) Get(id string) (model.Goal, error) {
	i := b.index(id)
	if i < 0 {
		return model.Goal{}, fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	return b.goals[i], nil
}

// Create adds a new incomplete goal.
func (b *Board) Create(text, category string) (model.Goal, error) {
	g := model.NewGoal(text, category)
	if err := g.Validate(); err != nil {
		return model.Goal{}, err
	}
	b.goals = append(b.goals, g)
	return g, nil
}

// UpdateText replaces a goal's text.
func (b *Board) UpdateText(id, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ErrEmptyText
	}
	return b.update(id, func(g *model.Goal) error {
		g.Text = text
		return nil
	})
}

// UpdateCategory moves a goal to another category key. The key is stored as
// given; unknown keys display under the default category.
func (b *Board) UpdateCategory(id, category string) error {
	return b.update(id, func(g *model.Goal) error {
		g.Category = category
		return nil
	})
}

// UpdateProgress sets or clears (nil) a goal's progress. Reaching the total
// marks the goal completed.
func (b *Board) UpdateProgress(id string, p *model.Progress) error {
	if p != nil {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return b.update(id, func(g *model.Goal) error {
		if p == nil {
			g.Progress = nil
			return nil
		}
		cp := *p
		g.Progress = &cp
		if cp.Done() {
			g.Completed = true
		}
		return nil
	})
}

// Toggle flips a goal's completion and returns the new state.
func (b *Board) Toggle(id string) (bool, error) {
	var done bool
	err := b.update(id, func(g *model.Goal) error {
		g.Completed = !g.Completed
		done = g.Completed
		return nil
	})
	return done, err
}

// Delete removes a goal.
func (b *Board) Delete(id string) error {
	i := b.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	b.goals = append(b.goals[:i], b.goals[i+1:]...)
	return nil
}

// Groups returns the non-empty category groups in table order, followed by
// the default group for goals whose category is unknown.
func (b *Board) Groups() []Group {
	byKey := make(map[string][]model.Goal)
	for _, g := range b.goals {
		key := b.resolver.Resolve(g.Category).Key
		byKey[key] = append(byKey[key], g)
	}

	var groups []Group
	for _, c := range b.resolver.Categories() {
		if goals := byKey[c.Key]; len(goals) > 0 {
			groups = append(groups, Group{Category: c, Goals: goals})
		}
	}
	def := b.resolver.Default()
	if goals := byKey[def.Key]; len(goals) > 0 {
		groups = append(groups, Group{Category: def, Goals: goals})
	}
	return groups
}

// Stats counts total and completed goals.
func (b *Board) Stats() Stats {
	s := Stats{Total: len(b.goals)}
	for _, g := range b.goals {
		if g.Completed {
			s.Completed++
		}
	}
	return s
}

func (b *Board) update(id string, fn func(*model.Goal) error) error {
	i := b.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	return fn(&b.goals[i])
}

func (b *Board) index(id string) int {
	for i := range b.goals {
		if b.goals[i].ID == id {
			return i
		}
	}
	return -1
}
