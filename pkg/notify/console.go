package notify

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	colorCyan  = lipgloss.Color("14")
	colorGreen = lipgloss.Color("82")
	colorRed   = lipgloss.Color("196")
)

// Console writes notifications to a terminal or any writer. On a terminal a status
// line is redrawn in place and cleared when dismissed; elsewhere every message is a
// plain line.
type Console struct {
	mu          sync.Mutex
	out         io.Writer
	interactive bool

	statusStyle lipgloss.Style
	infoStyle   lipgloss.Style
	errorStyle  lipgloss.Style
}

// NewConsole creates a console notifier writing to out.
func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:         out,
		interactive: isTerminal(out),
		statusStyle: r.NewStyle().Foreground(colorCyan).Faint(true),
		infoStyle:   r.NewStyle().Foreground(colorGreen),
		errorStyle:  r.NewStyle().Bold(true).Foreground(colorRed),
	}
}

// DisableColor renders every message unstyled.
func (c *Console) DisableColor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	plain := lipgloss.NewStyle()
	c.statusStyle, c.infoStyle, c.errorStyle = plain, plain, plain
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Status prints msg as a status line.
func (c *Console) Status(msg string) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.interactive {
		fmt.Fprintln(c.out, c.statusStyle.Render(msg))
		return func() {}
	}

	fmt.Fprint(c.out, "\r\033[K"+c.statusStyle.Render(msg))
	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			fmt.Fprint(c.out, "\r\033[K")
		})
	}
}

// StatusFor prints msg as a status line and clears it after d.
func (c *Console) StatusFor(msg string, d time.Duration) {
	dismiss := c.Status(msg)
	time.AfterFunc(d, dismiss)
}

// Info prints msg as an informational line.
func (c *Console) Info(msg string) {
	c.line(c.infoStyle.Render(msg))
}

// Error prints msg as an error line.
func (c *Console) Error(msg string) {
	c.line(c.errorStyle.Render(msg))
}

func (c *Console) line(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interactive {
		fmt.Fprint(c.out, "\r\033[K")
	}
	fmt.Fprintln(c.out, s)
}
