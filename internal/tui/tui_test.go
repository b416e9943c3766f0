package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/worldle/internal/directory"
	"github.com/tatianab/worldle/internal/game"
	"github.com/tatianab/worldle/internal/models"
	"github.com/tatianab/worldle/internal/suggest"
)

// firstRand always picks the first country.
type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

type fakeHinter struct {
	calls int
}

func (f *fakeHinter) Hint(_ context.Context, target models.Country, _ []game.Result, number int) (string, error) {
	f.calls++
	return "It is in Southeast Asia.", nil
}

func newTestModel(t *testing.T, hinter Hinter) model {
	t.Helper()
	dir, err := directory.New([]models.Country{
		{Code: "TH", Name: "Thailand", Latitude: 15.87, Longitude: 100.99, Population: 71697030, Area: 513120},
		{Code: "FR", Name: "France", Latitude: 46.23, Longitude: 2.21, Population: 67935660, Area: 551695},
		{Code: "FI", Name: "Finland", Latitude: 61.92, Longitude: 25.75, Population: 5556106, Area: 338424},
		{Code: "VN", Name: "Vietnam", Latitude: 14.06, Longitude: 108.28, Population: 98186856, Area: 331212},
	})
	if err != nil {
		t.Fatalf("directory.New: %v", err)
	}
	return NewModel(dir, firstRand{}, hinter)
}

func send(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(model)
	}
	return m, cmd
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func startPlaying(t *testing.T, m model) model {
	t.Helper()
	m, _ = send(t, m, key(tea.KeyEnter))
	if m.state != statePlaying {
		t.Fatalf("Expected playing state, got %d", m.state)
	}
	return m
}

func TestMenuNavigation(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, key(tea.KeyDown))
	if m.menu != menuHowToPlay {
		t.Fatalf("Expected how-to-play highlighted, got %d", m.menu)
	}
	m, _ = send(t, m, key(tea.KeyEnter))
	if m.state != stateHowToPlay {
		t.Fatalf("Expected how-to-play screen, got %d", m.state)
	}
	if !strings.Contains(m.View(), "How to Play") {
		t.Error("Expected how-to-play content in view")
	}
	m, _ = send(t, m, key(tea.KeyEsc))
	if m.state != stateMenu {
		t.Fatalf("Expected menu, got %d", m.state)
	}

	m, _ = send(t, m, key(tea.KeyUp), key(tea.KeyUp))
	if m.menu != menuQuit {
		t.Fatalf("Expected quit highlighted after wrapping, got %d", m.menu)
	}
}

func TestTypingShowsSuggestions(t *testing.T) {
	m := startPlaying(t, newTestModel(t, nil))

	m, _ = send(t, m, typed("f"))
	if got := m.suggestions.Suggestions; len(got) != 2 || got[0] != "France" || got[1] != "Finland" {
		t.Fatalf("Unexpected suggestions %v", got)
	}
	if m.suggestions.Selected != suggest.NoSelection {
		t.Errorf("Expected no selection, got %d", m.suggestions.Selected)
	}

	m, _ = send(t, m, typed("z"))
	if len(m.suggestions.Suggestions) != 0 {
		t.Errorf("Expected no suggestions, got %v", m.suggestions.Suggestions)
	}
	if !strings.Contains(m.View(), "No suggestions found.") {
		t.Error("Expected empty suggestion notice in view")
	}
}

func TestArrowKeysCycleSuggestions(t *testing.T) {
	m := startPlaying(t, newTestModel(t, nil))

	m, _ = send(t, m, typed("f"), key(tea.KeyDown))
	if m.suggestions.Selected != 0 || m.textInput.Value() != "France" {
		t.Fatalf("Expected France selected, got %d %q", m.suggestions.Selected, m.textInput.Value())
	}
	m, _ = send(t, m, key(tea.KeyDown), key(tea.KeyDown))
	if m.suggestions.Selected != 0 {
		t.Fatalf("Expected wrap to first suggestion, got %d", m.suggestions.Selected)
	}
	m, _ = send(t, m, key(tea.KeyUp))
	if m.suggestions.Selected != 1 || m.textInput.Value() != "Finland" {
		t.Fatalf("Expected Finland selected, got %d %q", m.suggestions.Selected, m.textInput.Value())
	}
	// The prefix being completed is unchanged by navigation.
	if m.suggestions.Prefix != "f" {
		t.Errorf("Expected prefix f, got %q", m.suggestions.Prefix)
	}
}

func TestSubmitGuesses(t *testing.T) {
	m := startPlaying(t, newTestModel(t, nil))

	m, cmd := send(t, m, typed("Atlantis"), key(tea.KeyEnter))
	if cmd == nil || !strings.HasPrefix(m.toast, msgInvalidCountry) {
		t.Fatalf("Expected invalid country toast, got %q", m.toast)
	}
	if m.session.Tries() != 0 || m.textInput.Value() != "Atlantis" {
		t.Errorf("Unknown guess should keep the input and record nothing")
	}
	m, _ = send(t, m, toastExpiredMsg{id: m.toastID})
	if m.toast != "" {
		t.Errorf("Expected toast to expire, got %q", m.toast)
	}

	m.textInput.Reset()
	m, _ = send(t, m, typed("france"), key(tea.KeyEnter))
	if m.session.Tries() != 1 || m.textInput.Value() != "" || m.suggestions.Prefix != "" {
		t.Fatalf("Expected France recorded and input cleared")
	}
	if !strings.Contains(m.View(), "France") {
		t.Error("Expected guess in view")
	}

	m, _ = send(t, m, typed("France"), key(tea.KeyEnter))
	if m.toast != msgAlreadyGuessed || m.session.Tries() != 1 {
		t.Errorf("Expected duplicate notice, got %q with %d tries", m.toast, m.session.Tries())
	}

	m, _ = send(t, m, typed("Thailand"), key(tea.KeyEnter))
	if m.state != stateEnded || m.session.State() != game.Won {
		t.Fatalf("Expected win, got %d / %v", m.state, m.session.State())
	}
	view := m.View()
	if !strings.Contains(view, "You guessed it in 2 tries!") || !strings.Contains(view, "71,697,030") {
		t.Errorf("Unexpected end screen:\n%s", view)
	}

	m, _ = send(t, m, key(tea.KeyEnter))
	if m.state != statePlaying || m.session.Tries() != 0 {
		t.Errorf("Expected a fresh round")
	}
}

func TestGiveUp(t *testing.T) {
	m := startPlaying(t, newTestModel(t, nil))

	m, _ = send(t, m, typed("/giveup"), key(tea.KeyEnter))
	if m.state != stateEnded || m.session.State() != game.Abandoned {
		t.Fatalf("Expected abandoned round, got %d / %v", m.state, m.session.State())
	}
	if !strings.Contains(m.View(), "Better luck next time!") {
		t.Error("Expected loss message")
	}

	m, _ = send(t, m, typed("m"))
	if m.state != stateMenu {
		t.Errorf("Expected menu, got %d", m.state)
	}
}

func TestHints(t *testing.T) {
	m := startPlaying(t, newTestModel(t, nil))
	m, _ = send(t, m, typed("/hint"), key(tea.KeyEnter))
	if m.toast != msgHintsDisabled {
		t.Errorf("Expected hints disabled notice, got %q", m.toast)
	}

	hinter := &fakeHinter{}
	m = startPlaying(t, newTestModel(t, hinter))
	m, cmd := send(t, m, typed("/hint"), key(tea.KeyEnter))
	if cmd == nil || !m.hintPending {
		t.Fatal("Expected a pending hint request")
	}
	m, _ = send(t, m, cmd())
	if hinter.calls != 1 || len(m.hints) != 1 || m.hintPending {
		t.Fatalf("Expected one hint, got %v (calls %d)", m.hints, hinter.calls)
	}
	if !strings.Contains(m.View(), "Southeast Asia") {
		t.Error("Expected hint in view")
	}
}

func TestHintFromPreviousRoundIsDropped(t *testing.T) {
	hinter := &fakeHinter{}
	m := startPlaying(t, newTestModel(t, hinter))

	m, stale := send(t, m, typed("/hint"), key(tea.KeyEnter))
	if stale == nil {
		t.Fatal("Expected a hint request")
	}
	m, _ = send(t, m, typed("/giveup"), key(tea.KeyEnter))
	m, _ = send(t, m, key(tea.KeyEnter))
	if m.state != statePlaying || m.session.Tries() != 0 {
		t.Fatalf("Expected a fresh round, got %d", m.state)
	}

	m, _ = send(t, m, stale())
	if len(m.hints) != 0 {
		t.Fatalf("Expected no hints in the new round, got %v", m.hints)
	}

	m, cmd := send(t, m, typed("/hint"), key(tea.KeyEnter))
	if cmd == nil || !m.hintPending {
		t.Fatal("Expected a new hint request")
	}
	m, _ = send(t, m, cmd())
	if len(m.hints) != 1 || m.hintPending {
		t.Errorf("Expected one hint for the new round, got %v", m.hints)
	}
}
