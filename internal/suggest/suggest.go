// Package suggest implements prefix autocomplete over the country directory
// and the keyboard navigation state that goes with it.
package suggest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tatianab/worldle/internal/directory"
)

// NoSelection is the selection index when nothing is highlighted.
const NoSelection = -1

// ErrInvalidSelection is matched by every *SelectionError.
var ErrInvalidSelection = errors.New("invalid selection index")

// SelectionError reports an index outside the current suggestions.
type SelectionError struct {
	Index int
	Count int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection %d out of range [0,%d)", e.Index, e.Count)
}

func (e *SelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// Step is a navigation move through the suggestion list.
type Step int

const (
	Up   Step = -1
	Down Step = 1
)

type entry struct {
	name string
	key  string
}

// Engine answers prefix queries. It only reads from the directory, so one
// Engine may serve many sessions.
type Engine struct {
	entries []entry
}

// New builds an engine over every name in dir.
func New(dir *directory.Directory) *Engine {
	e := &Engine{entries: make([]entry, 0, dir.Len())}
	for name, key := range dir.Entries() {
		e.entries = append(e.entries, entry{name: name, key: key})
	}
	return e
}

// Suggest returns the names starting with prefix, ignoring case, in
// directory order. An empty prefix has no suggestions.
func (e *Engine) Suggest(prefix string) []string {
	p := directory.Normalize(prefix)
	if p == "" {
		return nil
	}
	var out []string
	for _, en := range e.entries {
		if strings.HasPrefix(en.key, p) {
			out = append(out, en.name)
		}
	}
	return out
}

// Navigate moves current one step through [0,count), wrapping at both
// ends. From NoSelection, Down lands on the first item and Up on the last.
// With nothing to select, or a current index outside [NoSelection,count),
// it returns current and false.
func Navigate(current, count int, step Step) (int, bool) {
	if count <= 0 || current < NoSelection || current >= count {
		return current, false
	}
	next := current + int(step)
	switch {
	case next < 0:
		next = count - 1
	case next >= count:
		next = 0
	}
	return next, true
}

// Select returns the suggestion at index.
func Select(index int, suggestions []string) (string, error) {
	if index < 0 || index >= len(suggestions) {
		return "", &SelectionError{Index: index, Count: len(suggestions)}
	}
	return suggestions[index], nil
}

// State is the autocomplete state owned by an input field.
type State struct {
	Prefix      string
	Suggestions []string
	Selected    int
}

// NewState returns an empty state with no selection.
func NewState() State {
	return State{Selected: NoSelection}
}

// Update recomputes suggestions when prefix differs from the one st was
// built for. The selection is reset only in that case.
func (e *Engine) Update(st State, prefix string) State {
	if prefix == st.Prefix {
		return st
	}
	return State{
		Prefix:      prefix,
		Suggestions: e.Suggest(prefix),
		Selected:    NoSelection,
	}
}

// Move steps the selection. It reports false when there is nothing to
// select, leaving st unchanged.
func (st State) Move(step Step) (State, bool) {
	next, ok := Navigate(st.Selected, len(st.Suggestions), step)
	if !ok {
		return st, false
	}
	st.Selected = next
	return st, true
}

// Selection returns the highlighted suggestion.
func (st State) Selection() (string, error) {
	return Select(st.Selected, st.Suggestions)
}

// HasSelection reports whether an item is highlighted.
func (st State) HasSelection() bool {
	return st.Selected >= 0 && st.Selected < len(st.Suggestions)
}

// Clear drops the prefix, suggestions and selection, as after a commit.
func (st State) Clear() State {
	return NewState()
}
