// Package notify delivers the short success/failure messages shown after
// each data operation. Notifiers are fire-and-forget: they return nothing
// and must not fail the operation that triggered them.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophusers/internal/logging"
)

type Notifier interface {
	Success(ctx context.Context, msg string)
	Failure(ctx context.Context, msg string)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Console prints toast-like lines to a writer. With styled set, the ✓/✗
// prefix is colored.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	styled bool
}

func NewConsole(w io.Writer, styled bool) *Console {
	return &Console{w: w, styled: styled}
}

func (c *Console) Success(_ context.Context, msg string) { c.print("✓", successStyle, msg) }

func (c *Console) Failure(_ context.Context, msg string) { c.print("✗", failureStyle, msg) }

func (c *Console) print(prefix string, style lipgloss.Style, msg string) {
	if c.styled {
		prefix = style.Render(prefix)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.w, "%s %s\n", prefix, msg)
}

// Log forwards notifications to a structured logger.
type Log struct {
	log logging.Logger
}

func NewLog(l logging.Logger) *Log {
	return &Log{log: l}
}

func (n *Log) Success(ctx context.Context, msg string) {
	n.log.Info(ctx, msg, "notification", "success")
}

func (n *Log) Failure(ctx context.Context, msg string) {
	n.log.Warn(ctx, msg, "notification", "failure")
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

func (m Multi) Success(ctx context.Context, msg string) {
	for _, n := range m {
		n.Success(ctx, msg)
	}
}

func (m Multi) Failure(ctx context.Context, msg string) {
	for _, n := range m {
		n.Failure(ctx, msg)
	}
}
