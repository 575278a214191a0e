package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Reinaldo-Kn/pifatro/internal/game/session"
)

func (m *Model) View() string {
	if m.showingHelp {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			renderHelp(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.sess.Phase() == session.PhaseGameOver {
		return m.gameOverView()
	}

	return m.gameView()
}

func (m *Model) gameView() string {
	var sb strings.Builder

	title := titleStyle("🃏 PIFATRO")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	status := renderStatusBar(m.sess.Lives(), m.sess.Coins(), m.sess.DeckRemaining())
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, status))
	sb.WriteString("\n")

	middle := m.renderMiddleSection()
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, middle))
	sb.WriteString("\n")

	hand := renderHand(m.sess.Hand(), m.sess.Selection(), m.cursor)
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hand))
	sb.WriteString("\n")

	prompt := m.renderPrompt()
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, prompt))

	if m.notice != "" {
		style := noticeStyle
		if m.noticeIsErr {
			style = errorStyle
		}
		sb.WriteString("\n")
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, style.Render(m.notice)))
	}

	return docStyle.Render(sb.String())
}

// renderMiddleSection shows the drawn card awaiting a decision, or the
// last discard when nothing is pending.
func (m *Model) renderMiddleSection() string {
	if pending, ok := m.sess.Pending(); ok {
		content := lipgloss.JoinVertical(lipgloss.Center,
			"Drawn card",
			boxStyle.Render(renderCardFace(pending)),
			dimStyle.Render("swap or toss, either costs a life"),
		)
		return boxStyle.Render(content)
	}

	if discard, ok := m.sess.LastDiscard(); ok {
		content := lipgloss.JoinVertical(lipgloss.Center,
			dimStyle.Render("Last discard"),
			boxStyle.Render(renderCardFace(discard)),
		)
		return boxStyle.Render(content)
	}

	return boxStyle.Render(dimStyle.Render("  D to draw a card  "))
}

func (m *Model) renderPrompt() string {
	var hint string
	if _, ok := m.sess.Pending(); ok {
		hint = "1-9/Enter: swap into slot │ X: discard"
	} else if len(m.sess.Selection()) > 0 {
		hint = fmt.Sprintf("picking a pife (%d/3) │ Space/1-9: toggle", len(m.sess.Selection()))
	} else {
		hint = "D: draw │ Space/1-9: select │ [ ]: move │ H: help"
	}
	return promptStyle.Render(dimStyle.Render(hint))
}

func (m *Model) gameOverView() string {
	msg := fmt.Sprintf("%s\n\nFinal coins: %s %d\n\nN: new game │ Q: quit",
		gameOverStyle.Render("💀 GAME OVER"), CoinIcon, m.sess.Coins())

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Padding(1, 3).Render(msg),
		lipgloss.WithWhitespaceChars(" "),
	)
}

func renderHelp() string {
	var sb strings.Builder
	sb.WriteString("📖 How to play\n")
	sb.WriteString(strings.Repeat("─", 48) + "\n\n")

	sb.WriteString("Draw a card, then swap it into your hand or toss\n")
	sb.WriteString("it. Either way the decision costs one life.\n\n")

	sb.WriteString("Select three cards to attempt a pife:\n")
	sb.WriteString("• Trinca: three of the same rank (+1 life, 50 coins)\n")
	sb.WriteString("• Sequence: three consecutive ranks (+1 life, 100 coins)\n")
	sb.WriteString("• Straight flush: a sequence in one suit (+2 lives, 200 coins)\n\n")

	sb.WriteString("Aces are low and sequences never wrap around.\n")
	sb.WriteString("Lives cap at three. Run out and the game ends.\n\n")

	sb.WriteString("Keys\n")
	sb.WriteString("• D: draw  • X: discard the drawn card\n")
	sb.WriteString("• 1-9 / Space / Enter: select or swap\n")
	sb.WriteString("• ← →: move cursor  • [ ]: rearrange the hand\n")
	sb.WriteString("• N: new game  • H: toggle help  • Q / ESC: quit\n")

	return boxStyle.Padding(0, 1).Render(sb.String())
}
