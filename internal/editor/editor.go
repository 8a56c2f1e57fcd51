// Package editor models the client-side state of the speech view: the current
// text and the selection a rewrite applies to. Offsets are in runes so they
// match what the browser reports for the rendered text.
package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrSelectionRange is returned when a selection does not fit the text.
	ErrSelectionRange = errors.New("selection is out of range")

	// ErrSelectionStale is returned when the text under the selection no longer
	// matches what was selected.
	ErrSelectionStale = errors.New("selection no longer matches the speech text")
)

// Selection is a half-open rune range [Start, End) and the text it covered
// when it was captured.
type Selection struct {
	Start int
	End   int
	Text  string
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return s.Start == s.End
}

// State is the speech text as currently shown plus the active selection.
type State struct {
	Text      string
	Selection Selection
}

// Check verifies that the selection fits Text and still covers Selection.Text.
func (s State) Check() error {
	runes := []rune(s.Text)
	sel := s.Selection
	if sel.Start < 0 || sel.End < sel.Start || sel.End > len(runes) {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrSelectionRange, sel.Start, sel.End, len(runes))
	}
	if string(runes[sel.Start:sel.End]) != sel.Text {
		return ErrSelectionStale
	}
	return nil
}

// ApplyRewrite replaces exactly the selected range with replacement and
// returns the new state. The returned selection covers the inserted text so a
// follow-up rewrite can target it. Other occurrences of the selected text are
// left alone.
func (s State) ApplyRewrite(replacement string) (State, error) {
	if err := s.Check(); err != nil {
		return s, err
	}
	runes := []rune(s.Text)
	sel := s.Selection

	out := make([]rune, 0, len(runes)-(sel.End-sel.Start)+len([]rune(replacement)))
	out = append(out, runes[:sel.Start]...)
	out = append(out, []rune(replacement)...)
	out = append(out, runes[sel.End:]...)

	return State{
		Text: string(out),
		Selection: Selection{
			Start: sel.Start,
			End:   sel.Start + len([]rune(replacement)),
			Text:  replacement,
		},
	}, nil
}
