package tui

import (
	"fmt"
	"strings"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

const (
	cursorMark  = "»"
	discardMark = "──"
	cardIndent  = "  "
)

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("♠ ♥ Five Card Draw ♦ ♣"))
	b.WriteString("\n\n")

	var table strings.Builder
	switch m.screen {
	case screenDebugPrompt:
		table.WriteString("DEBUG?\n")
		table.WriteString(m.renderYesNo())
	case screenPickDealer, screenPickPlayer:
		m.renderPicking(&table)
	case screenDiscard:
		m.renderDiscard(&table)
	case screenResult:
		m.renderResult(&table)
	}
	b.WriteString(m.styles.Table.Render(table.String()))
	b.WriteString("\n")

	if m.lastErr != nil {
		b.WriteString(m.styles.Error.Render(m.lastErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Info.Render(fmt.Sprintf("Rounds %d  You %d  Dealer %d  Ties %d  Seed %d",
		m.session.Rounds, m.session.PlayerWins, m.session.DealerWins, m.session.Ties, m.session.Seed())))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderYesNo() string {
	yes, no := " ", " "
	if m.choice == choiceYes {
		yes = m.styles.Cursor.Render(cursorMark)
	} else {
		no = m.styles.Cursor.Render(cursorMark)
	}
	return fmt.Sprintf(" %sYES %sNO\n", yes, no)
}

func (m *Model) renderCard(c poker.Card) string {
	if c.IsRed() {
		return m.styles.RedCard.Render(c.String())
	}
	return m.styles.BlackCard.Render(c.String())
}

func (m *Model) renderCards(cards []poker.Card) string {
	cells := make([]string, len(cards))
	for i, c := range cards {
		cells[i] = m.renderCard(c)
	}
	return cardIndent + strings.Join(cells, "  ")
}

func (m *Model) renderHidden() string {
	cells := make([]string, poker.HandSize)
	for i := range cells {
		cells[i] = m.styles.Hidden.Render("XX")
	}
	return cardIndent + strings.Join(cells, "  ")
}

func (m *Model) renderPicking(b *strings.Builder) {
	// Arrow column: two leading spaces, then four columns per card.
	col := len(cardIndent) + m.picker.Slot()*4
	if m.picker.OnSuit() {
		col++
	}
	arrowLine := func(mark string) string {
		return strings.Repeat(" ", col) + m.styles.Cursor.Render(mark)
	}

	b.WriteString("DEALER\n")
	if m.screen == screenPickDealer {
		b.WriteString(arrowLine("^") + "\n")
		b.WriteString(m.renderCards(m.picker.Cards()) + "\n")
		b.WriteString(arrowLine("v") + "\n")
	} else {
		b.WriteString("\n" + m.renderCards(m.picked.Cards()) + "\n\n")
	}

	b.WriteString("\nPLAYER\n")
	if m.screen == screenPickPlayer {
		b.WriteString(arrowLine("^") + "\n")
		b.WriteString(m.renderCards(m.picker.Cards()) + "\n")
		b.WriteString(arrowLine("v") + "\n")
	} else {
		b.WriteString("\n" + m.renderHidden() + "\n\n")
	}
}

func (m *Model) renderDiscard(b *strings.Builder) {
	b.WriteString("DEALER\n")
	b.WriteString(m.renderHidden() + "\n\n")

	b.WriteString("PLAYER\n")
	cells := make([]string, poker.HandSize)
	marks := make([]string, poker.HandSize)
	for i, c := range m.round.Player.Cards() {
		pointer := " "
		if !m.onDone && i == m.cursor {
			pointer = m.styles.Cursor.Render(cursorMark)
		}
		cells[i] = pointer + m.renderCard(c)

		marks[i] = "  "
		if m.discards[i] {
			marks[i] = m.styles.Discard.Render(discardMark)
		}
	}
	b.WriteString(" " + strings.Join(cells, " ") + "\n")
	b.WriteString("  " + strings.Join(marks, "  ") + "\n\n")

	done := " DONE"
	if m.onDone {
		done = m.styles.Cursor.Render(cursorMark) + "DONE"
	}
	b.WriteString(strings.Repeat(" ", 8) + done + "\n")
	b.WriteString(m.styles.Info.Render(fmt.Sprintf("Discard up to %d cards (%d selected)", game.MaxDiscards, m.numDiscard)))
}

func (m *Model) renderResult(b *strings.Builder) {
	b.WriteString("DEALER\n")
	b.WriteString(m.renderCards(m.round.Dealer.Cards()) + "\n")
	b.WriteString("    " + m.styles.Rank.Render(rankLabel(m.result.Dealer)) + "\n")
	if !m.round.Picked() {
		b.WriteString(m.styles.Info.Render(fmt.Sprintf("    dealer drew %d", len(m.dealerSlots))) + "\n")
	}
	b.WriteString("\n")

	b.WriteString("PLAYER\n")
	b.WriteString(m.renderCards(m.round.Player.Cards()) + "\n")
	b.WriteString("    " + m.styles.Rank.Render(rankLabel(m.result.Player)) + "\n\n")

	b.WriteString("      " + m.renderVerdict() + "\n\n")
	b.WriteString("WOULD YOU LIKE TO PLAY AGAIN?\n")
	b.WriteString(m.renderYesNo())
}

func (m *Model) renderVerdict() string {
	switch m.result.Winner {
	case poker.PlayerWins:
		return m.styles.Win.Render("YOU WIN")
	case poker.DealerWins:
		return m.styles.Lose.Render("DEALER WINS")
	default:
		return m.styles.Tie.Render("TIE")
	}
}

// rankLabel names the rank in capitals, as the table has always shown it.
func rankLabel(c poker.Classification) string {
	return strings.ToUpper(c.Rank.String())
}
