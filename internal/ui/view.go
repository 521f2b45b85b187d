package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/deckofcards/internal/domain"
	"github.com/renato0307/deckofcards/internal/theme"
)

// region is a rectangle of terminal cells, end-exclusive
type region struct {
	x0, y0, x1, y1 int
}

func (r region) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// screen is a rendered deck view together with its clickable regions
type screen struct {
	body   string
	button region
	card   region
}

// screenBuilder stacks sections vertically and tracks where each one lands
type screenBuilder struct {
	sections []string
	y        int
}

func (b *screenBuilder) add(section string) region {
	h := lipgloss.Height(section)
	r := region{x0: 0, y0: b.y, x1: lipgloss.Width(section), y1: b.y + h}
	b.sections = append(b.sections, section)
	b.y += h
	return r
}

func (b *screenBuilder) String() string {
	return strings.Join(b.sections, "\n")
}

func (m *Model) View() string {
	if m.state == stateWorkoutForm && m.workoutForm != nil {
		return m.workoutForm.View()
	}
	return m.render(m.clock.Now()).body
}

// render lays out the deck screen. Hit-testing uses the same layout so
// mouse regions always match what is on screen.
func (m *Model) render(now time.Time) screen {
	d := m.session.Display(now)
	var b screenBuilder
	var s screen

	b.add(renderHeader(m.devMode, ""))
	b.add(renderStatus(d))
	b.add("")
	s.card = b.add(renderCard(d))
	b.add(renderInstruction(d))
	b.add("")

	button := renderButton(d)
	s.button = b.add(button)
	if d.Holding {
		// Bar sits on its own line so it never widens the button region
		b.add(m.holdBar.ViewAs(d.HoldProgress))
	} else {
		b.add("")
	}

	b.add(renderSelections(d.Selections))

	if m.errorManager.HasError() {
		b.add("")
		b.add(m.errorManager.Render(m.width))
	}

	if d.State == domain.StateIdle {
		if tips := m.keys.Tips(); len(tips) > 0 {
			b.add("")
			b.add(RenderTip(tips[m.tipIndex%len(tips)]))
		}
	}

	b.add(theme.HelpStyle.Render(m.help.View(m.keys)))

	s.body = b.String()
	return s
}

func renderStatus(d domain.Display) string {
	status := theme.StatusStyle.Render(d.Status)
	if d.State == domain.StateComplete {
		status = theme.CompleteStyle.Render(d.Status)
	}
	return status + "   " + theme.TimerStyle.Render("⏱ "+d.TimerText)
}

func renderCard(d domain.Display) string {
	if !d.CardVisible {
		return theme.CardBackStyle.Render("♠ ♥\n\n♦ ♣")
	}

	face := theme.CardBlackStyle
	if d.CardRed {
		face = theme.CardRedStyle
	}
	corner := face.Render(d.Rank + d.Suit)
	return theme.CardStyle.Render(corner + "\n\n" + face.Render(d.Suit) + "\n\n" + corner)
}

func renderInstruction(d domain.Display) string {
	if !d.CardVisible {
		return theme.PositionStyle.Render("Start the deck to deal the first card")
	}
	return theme.InstructionStyle.Render(d.Instruction) + "  " +
		theme.PositionStyle.Render(fmt.Sprintf("card %d of %d", d.Position, d.Total))
}

func renderButton(d domain.Display) string {
	switch d.ButtonRole {
	case domain.RoleResetOnly:
		return theme.ButtonResetStyle.Render(d.ButtonLabel)
	case domain.RoleDone:
		return theme.ButtonDoneStyle.Render(d.ButtonLabel)
	}
	return theme.ButtonStartStyle.Render(d.ButtonLabel)
}

func renderSelections(selections domain.WorkoutMap) string {
	lines := make([]string, 0, len(domain.Suits))
	for _, suit := range domain.Suits {
		lines = append(lines, theme.SelectionLabelStyle.Render(string(suit)+" "+suit.Name())+
			theme.SelectionValueStyle.Render(selections[suit]))
	}
	return strings.Join(lines, "\n")
}
