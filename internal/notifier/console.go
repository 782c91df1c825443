package notifier

import (
	"fmt"
	"io"
	"sync"

	"SymbolWatch/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	symbolStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Width(12)
	priceStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Width(10).Align(lipgloss.Right)
	naStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Width(10).Align(lipgloss.Right)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Console writes one styled line per update event.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// OnUpdate renders evt. It is safe for concurrent use.
func (c *Console) OnUpdate(evt model.UpdateEvent) {
	line := timeStyle.Render(evt.At.Format("15:04:05")) + " " + symbolStyle.Render(evt.Symbol)
	if evt.OK() {
		line += priceStyle.Render(evt.DisplayText) + " " + dimStyle.Render(evt.Currency)
	} else {
		line += naStyle.Render(model.NotAvailable)
		if evt.Status == model.StatusFailed && evt.Err != nil {
			line += " " + dimStyle.Render(evt.Err.Error())
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, line)
}
