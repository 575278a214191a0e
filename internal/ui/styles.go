package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Reinaldo-Kn/pifatro/internal/game/card"
)

// Icon constants
const (
	HeartIcon = "❤️"
	CoinIcon  = "🪙"
	DeckIcon  = "🂠"
)

// Lipgloss styles
var (
	docStyle      = lipgloss.NewStyle().Margin(1, 2)
	redStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	blackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	selectedBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("220"))
	cursorBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("45"))
	promptStyle   = lipgloss.NewStyle().MarginTop(1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	gameOverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func cardStyle(c card.Card) lipgloss.Style {
	if c.Suit == card.Heart || c.Suit == card.Diamond {
		return redStyle
	}
	return blackStyle
}

// renderCardFace draws a single card as a two-line face, rank over suit.
func renderCardFace(c card.Card) string {
	style := cardStyle(c)
	rank := style.Render(fmt.Sprintf("%-2s", c.Rank.String()))
	suit := style.Render(fmt.Sprintf("%-2s", c.Suit.String()))
	return lipgloss.JoinVertical(lipgloss.Center, rank, suit)
}

// renderHand draws the hand as a row of bordered cards. Selected cards
// get a gold border, the cursor card a cyan one.
func renderHand(hand []card.Card, selection []int, cursor int) string {
	if len(hand) == 0 {
		return boxStyle.Render("(empty hand)")
	}

	selected := make(map[int]bool, len(selection))
	for _, idx := range selection {
		selected[idx] = true
	}

	faces := make([]string, 0, len(hand))
	for i, c := range hand {
		border := boxStyle
		switch {
		case selected[i]:
			border = selectedBox
		case i == cursor:
			border = cursorBox
		}

		face := border.Render(renderCardFace(c))
		// Lift selected cards above the row.
		if selected[i] {
			face = lipgloss.JoinVertical(lipgloss.Center, face, " ")
		} else {
			face = lipgloss.JoinVertical(lipgloss.Center, " ", face)
		}

		label := dimStyle.Render(fmt.Sprintf(" %d ", i+1))
		faces = append(faces, lipgloss.JoinVertical(lipgloss.Center, face, label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom, faces...)
}

// renderStatusBar draws lives, coins and remaining deck size.
func renderStatusBar(lives, coins, deck int) string {
	hearts := strings.Repeat(HeartIcon+" ", lives)
	if lives == 0 {
		hearts = dimStyle.Render("no lives")
	}
	return boxStyle.Render(fmt.Sprintf(" %s │ %s %d │ %s %d ", strings.TrimSpace(hearts), CoinIcon, coins, DeckIcon, deck))
}
