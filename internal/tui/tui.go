package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/tatianab/worldle/internal/directory"
	"github.com/tatianab/worldle/internal/game"
	"github.com/tatianab/worldle/internal/models"
	"github.com/tatianab/worldle/internal/suggest"
)

type sessionState int

const (
	stateMenu sessionState = iota
	stateHowToPlay
	statePlaying
	stateEnded
	stateError
)

const toastDuration = 2 * time.Second

const (
	msgInvalidCountry = "Invalid country name!"
	msgAlreadyGuessed = "You already guessed this country!"
	msgHintsDisabled  = "Hints are off. Set GEMINI_API_KEY to enable them."
)

type menuItem int

const (
	menuPlay menuItem = iota
	menuHowToPlay
	menuQuit
)

var menuLabels = []string{"▶ Play now", "❓ How to play", "✕ Exit"}

// Hinter produces clues about the hidden country.
type Hinter interface {
	Hint(ctx context.Context, target models.Country, guesses []game.Result, number int) (string, error)
}

type model struct {
	state       sessionState
	dir         *directory.Directory
	suggester   *suggest.Engine
	rng         game.Rand
	hinter      Hinter
	session     *game.Session
	textInput   textinput.Model
	viewport    viewport.Model
	suggestions suggest.State
	hints       []string
	hintPending bool
	menu        menuItem
	toast       string
	toastID     int
	err         error
	width       int
	height      int
}

// NewModel builds the game UI. hinter may be nil, which disables hints.
func NewModel(dir *directory.Directory, rng game.Rand, hinter Hinter) model {
	ti := textinput.New()
	ti.Placeholder = "Enter country name..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return model{
		state:       stateMenu,
		dir:         dir,
		suggester:   suggest.New(dir),
		rng:         rng,
		hinter:      hinter,
		textInput:   ti,
		suggestions: suggest.NewState(),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type toastExpiredMsg struct {
	id int
}

type hintMsg struct {
	round string
	hint  string
	err  error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateHowToPlay:
			return m.updateHowToPlay(msg)
		case statePlaying:
			return m.updatePlaying(msg)
		case stateEnded:
			return m.updateEnded(msg)
		case stateError:
			if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 5)
		return m, nil

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil

	case hintMsg:
		// Replies for an earlier round are stale.
		if m.session == nil || msg.round != m.session.ID() {
			log.Debug().Str("round", msg.round).Msg("dropping stale hint")
			return m, nil
		}
		m.hintPending = false
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("hint request failed")
			cmd := m.showToast("Could not get a hint right now.")
			return m, cmd
		}
		if m.state == statePlaying {
			m.hints = append(m.hints, msg.hint)
		}
		return m, nil
	}

	if m.state == statePlaying {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyUp:
		m.menu = menuItem((int(m.menu) + len(menuLabels) - 1) % len(menuLabels))
	case tea.KeyDown, tea.KeyTab:
		m.menu = menuItem((int(m.menu) + 1) % len(menuLabels))
	case tea.KeyEnter:
		return m.activate(m.menu)
	case tea.KeyRunes:
		switch msg.String() {
		case "p":
			return m.activate(menuPlay)
		case "h", "?":
			return m.activate(menuHowToPlay)
		case "q":
			return m.activate(menuQuit)
		}
	}
	return m, nil
}

func (m model) activate(item menuItem) (tea.Model, tea.Cmd) {
	switch item {
	case menuPlay:
		return m.startRound()
	case menuHowToPlay:
		m.state = stateHowToPlay
		w, h := m.width, m.height-4
		if w == 0 {
			w, h = 80, 20
		}
		m.viewport = viewport.New(w, max(h, 5))
		m.viewport.SetContent(renderHowToPlay(w))
		return m, nil
	}
	return m, tea.Quit
}

func (m model) updateHowToPlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyBackspace:
		m.state = stateMenu
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// startRound discards any previous round and draws a new target.
func (m model) startRound() (tea.Model, tea.Cmd) {
	session, err := game.Start(m.dir, m.rng)
	if err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}
	m.session = session
	m.state = statePlaying
	m.hints = nil
	m.hintPending = false
	m.toast = ""
	m.textInput.Reset()
	m.suggestions = m.suggestions.Clear()
	log.Info().Str("round", session.ID()).Int("countries", m.dir.Len()).Msg("new round started")
	cmd := m.textInput.Focus()
	return m, cmd
}

func (m model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		return m.moveSelection(suggest.Up), nil
	case tea.KeyDown:
		return m.moveSelection(suggest.Down), nil
	case tea.KeyEsc:
		m.suggestions = m.suggestions.Clear()
		return m, nil
	case tea.KeyCtrlG:
		return m.giveUp()
	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	before := m.textInput.Value()
	m.textInput, cmd = m.textInput.Update(msg)
	if value := m.textInput.Value(); value != before {
		m.suggestions = m.suggester.Update(m.suggestions, value)
	}
	return m, cmd
}

// moveSelection steps through the suggestions and mirrors the highlighted
// name into the input without changing the prefix being completed.
func (m model) moveSelection(step suggest.Step) model {
	st, ok := m.suggestions.Move(step)
	if !ok {
		return m
	}
	m.suggestions = st
	if name, err := st.Selection(); err == nil {
		m.textInput.SetValue(name)
		m.textInput.CursorEnd()
	}
	return m
}

func (m model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.textInput.Value())
	if value == "" {
		return m, nil
	}
	if strings.HasPrefix(value, "/") {
		return m.command(value)
	}

	res, err := m.session.SubmitGuess(value)
	switch {
	case errors.Is(err, game.ErrUnknownCountry):
		text := msgInvalidCountry
		var unknown *game.UnknownCountryError
		if errors.As(err, &unknown) && unknown.Suggestion != "" {
			text += " Did you mean " + unknown.Suggestion + "?"
		}
		cmd := m.showToast(text)
		return m, cmd
	case errors.Is(err, game.ErrDuplicateGuess):
		m.clearInput()
		cmd := m.showToast(msgAlreadyGuessed)
		return m, cmd
	case err != nil:
		m.err = err
		m.state = stateError
		return m, nil
	}

	log.Info().Str("round", m.session.ID()).Str("guess", res.Code).Float64("distance_km", res.DistanceKm).
		Str("direction", res.Direction.String()).Stringer("state", res.State).Msg("guess recorded")
	m.clearInput()
	if res.State == game.Won {
		m.state = stateEnded
	}
	return m, nil
}

func (m model) command(input string) (tea.Model, tea.Cmd) {
	m.clearInput()
	switch strings.ToLower(input) {
	case "/giveup", "/give-up":
		return m.giveUp()
	case "/hint":
		return m.requestHint()
	case "/menu":
		m.state = stateMenu
		return m, nil
	case "/quit":
		return m, tea.Quit
	}
	cmd := m.showToast("Unknown command " + input)
	return m, cmd
}

func (m model) giveUp() (tea.Model, tea.Cmd) {
	if err := m.session.GiveUp(); err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}
	m.clearInput()
	m.state = stateEnded
	return m, nil
}

func (m model) requestHint() (tea.Model, tea.Cmd) {
	if m.hinter == nil {
		cmd := m.showToast(msgHintsDisabled)
		return m, cmd
	}
	if m.hintPending {
		return m, nil
	}
	m.hintPending = true

	hinter := m.hinter
	round := m.session.ID()
	target := m.session.Target()
	guesses := m.session.Guesses()
	number := len(m.hints) + 1
	return m, func() tea.Msg {
		hint, err := hinter.Hint(context.Background(), target, guesses, number)
		return hintMsg{round: round, hint: hint, err: err}
	}
}

func (m model) updateEnded(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.startRound()
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyRunes:
		switch msg.String() {
		case "p", "r":
			return m.startRound()
		case "m":
			m.state = stateMenu
			return m, nil
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *model) clearInput() {
	m.textInput.Reset()
	m.suggestions = m.suggestions.Clear()
}

func (m *model) showToast(text string) tea.Cmd {
	m.toastID++
	m.toast = text
	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func Run(dir *directory.Directory, rng game.Rand, hinter Hinter) error {
	p := tea.NewProgram(NewModel(dir, rng, hinter), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
