package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Position renders where the current image sits in the gallery.
type Position struct {
	bar    progress.Model
	total  int
	styled bool
}

// NewPosition creates a position bar for total images.
func NewPosition(total int, styled bool) Position {
	var bar progress.Model
	if styled {
		bar = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	} else {
		bar = progress.New(progress.WithFillCharacters('#', '-'), progress.WithoutPercentage())
	}
	bar.Width = 20
	return Position{bar: bar, total: total, styled: styled}
}

// View renders the bar for a zero-based index.
func (p Position) View(index int) string {
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Min(1.0, float64(index+1)/float64(p.total))
	}
	label := fmt.Sprintf("%d / %d", index+1, p.total)
	if p.total == 0 {
		label = "0 / 0"
	}
	if p.styled {
		label = lipgloss.NewStyle().Bold(true).Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
