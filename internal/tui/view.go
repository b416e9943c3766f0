package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/worldle/internal/game"
	"github.com/tatianab/worldle/internal/geo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	menuStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("#EEEEEE"))

	menuSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#4A90E2")).
				Bold(true)

	suggestionBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#0095F2")).
				Width(40)

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0095F2"))

	guessRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2B2B2B")).
			Background(lipgloss.Color("#70E7FB")).
			PaddingLeft(1).
			PaddingRight(1)

	arrowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5C9FD6")).
			Bold(true).
			Padding(0, 1)

	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF4444")).
			Bold(true).
			Padding(0, 2)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80")).Bold(true)
	loseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")).Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

var numbers = message.NewPrinter(language.English)

const guessNameWidth = 28

func (m model) View() string {
	var s string

	switch m.state {
	case stateMenu:
		s = m.renderMenu()
	case stateHowToPlay:
		s = lipgloss.JoinVertical(lipgloss.Left,
			m.viewport.View(),
			helpStyle.Render("↑/↓ to scroll, Esc to go back"),
		)
	case statePlaying:
		s = m.renderGame()
	case stateEnded:
		s = m.renderEnd()
	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🌍 WORLDLE 🌍") + "\n")
	b.WriteString(subtitleStyle.Render("Guess the Country!") + "\n\n")
	for i, label := range menuLabels {
		if menuItem(i) == m.menu {
			b.WriteString(menuSelectedStyle.Render("› "+label) + "\n")
		} else {
			b.WriteString(menuStyle.Render(label) + "\n")
		}
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ and Enter, or p / h / q"))
	return b.String()
}

func (m model) renderGame() string {
	parts := []string{
		titleStyle.Render("Which country is hiding?") + "  " +
			subtitleStyle.Render(fmt.Sprintf("Tries: %d", m.session.Tries())),
		"",
		m.textInput.View(),
	}
	if box := m.renderSuggestions(); box != "" {
		parts = append(parts, box)
	}
	if m.toast != "" {
		parts = append(parts, toastStyle.Render(m.toast))
	}

	parts = append(parts, "", sectionStyle.Render("COUNTRIES GUESSED"))
	parts = append(parts, renderGuesses(m.session.Guesses())...)

	if len(m.hints) > 0 || m.hintPending {
		parts = append(parts, "", sectionStyle.Render("HINTS"))
		for i, h := range m.hints {
			parts = append(parts, fmt.Sprintf("%d. %s", i+1, h))
		}
		if m.hintPending {
			parts = append(parts, helpStyle.Render("thinking..."))
		}
	}

	parts = append(parts, "", helpStyle.Render("Enter to guess, ↑/↓ to pick a suggestion. Commands: /hint, /giveup (Ctrl+G), /menu, /quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderSuggestions draws the dropdown, or nothing when the input is empty.
func (m model) renderSuggestions() string {
	st := m.suggestions
	if strings.TrimSpace(st.Prefix) == "" {
		return ""
	}
	if len(st.Suggestions) == 0 {
		return suggestionBoxStyle.Render(helpStyle.Render("No suggestions found."))
	}

	lines := make([]string, len(st.Suggestions))
	for i, name := range st.Suggestions {
		if i == st.Selected {
			lines[i] = highlightStyle.Render(name)
		} else {
			lines[i] = name
		}
	}
	return suggestionBoxStyle.Render(strings.Join(lines, "\n"))
}

// renderGuesses lists guesses newest first.
func renderGuesses(guesses []game.Result) []string {
	if len(guesses) == 0 {
		return []string{helpStyle.Render("No guesses yet")}
	}
	rows := make([]string, 0, len(guesses))
	for _, g := range slices.Backward(guesses) {
		rows = append(rows, renderGuess(g))
	}
	return rows
}

func renderGuess(g game.Result) string {
	row := guessRowStyle.Render(fmt.Sprintf("%-*s %12s", guessNameWidth, g.Name, formatDistance(g.DistanceKm)))
	return lipgloss.JoinHorizontal(lipgloss.Center, row, " ", arrowStyle.Render(g.Direction.Arrow()))
}

func formatDistance(km float64) string {
	return numbers.Sprintf("~ %.1fkm", km)
}

func (m model) renderEnd() string {
	var header, result string
	if m.session.State() == game.Won {
		header = winStyle.Render("🎉 Congratulations! 🎉")
		result = fmt.Sprintf("You guessed it in %d tries!", m.session.Tries())
	} else {
		header = loseStyle.Render("😢 Game Over 😢")
		result = "Better luck next time!"
	}

	target := m.session.Target()
	info := numbers.Sprintf("Population: %d  |  Area: %.0f km²  |  Coordinates: %.2f°, %.2f°  |  Geohash: %s",
		target.Population, target.Area, target.Latitude, target.Longitude, target.Geohash())

	parts := []string{
		header,
		result,
		"",
		"The answer was: " + titleStyle.Render(target.Name),
		subtitleStyle.Render(info),
	}
	if guesses := m.session.Guesses(); len(guesses) > 0 {
		parts = append(parts, "", sectionStyle.Render("YOUR GUESSES"))
		parts = append(parts, renderGuesses(guesses)...)
	}
	parts = append(parts, "", helpStyle.Render("Enter / p: play again   m: main menu   q: quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHowToPlay(width int) string {
	wrap := lipgloss.NewStyle().Width(max(width-2, 20))
	arrows := make([]string, 0, 8)
	for _, d := range geo.Directions() {
		arrows = append(arrows, fmt.Sprintf("%s = %s", d.Arrow(), d))
	}

	sections := []string{
		titleStyle.Render("📖 How to Play"),
		"",
		sectionStyle.Render("Game Objective"),
		wrap.Render("Your goal is to identify the mystery country. Use your geography knowledge to guess!"),
		"",
		sectionStyle.Render("How to Make a Guess"),
		wrap.Render("1. Type the country name in the input box\n" +
			"2. Use ↑/↓ to pick one of the suggestions\n" +
			"3. Press Enter to submit your guess\n" +
			"4. You can guess as many times as you want!"),
		"",
		sectionStyle.Render("Understanding the Feedback"),
		wrap.Render("After each guess you'll see the distance from your guess to the target " +
			"country in kilometers, and an arrow pointing towards it:"),
		renderGuess(game.Result{Name: "Vietnam", DistanceKm: 1245, Direction: geo.NorthEast}),
		renderGuess(game.Result{Name: "Thailand", DistanceKm: 523, Direction: geo.West}),
		"",
		wrap.Render(strings.Join(arrows, "   ")),
		"",
		sectionStyle.Render("Tips & Tricks"),
		wrap.Render("• Use the arrow directions to triangulate the target location\n" +
			"• If the distance gets smaller, you're getting closer!\n" +
			"• Stuck? Type /hint for a clue, or /giveup to see the answer"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
