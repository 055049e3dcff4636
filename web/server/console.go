package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by recording messages in a console
type WebLogger struct {
	renderID string
	console  *Console
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, console *Console) core.Logger {
	return &WebLogger{
		renderID: renderID,
		console:  console,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Printf("[%s] %s", wl.renderID, message)

	if wl.console != nil {
		wl.console.record(ConsoleMessage{
			RenderID:  wl.renderID,
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		})
	}
}

// Console keeps the most recent messages from every render
type Console struct {
	mu      sync.Mutex
	history []ConsoleMessage
	limit   int
}

// NewConsole creates a console retaining at most limit messages
func NewConsole(limit int) *Console {
	return &Console{limit: limit}
}

// Logger returns a logger whose messages are tagged with renderID
func (c *Console) Logger(renderID string) core.Logger {
	return NewWebLogger(renderID, c)
}

// record appends msg, dropping the oldest messages past the limit
func (c *Console) record(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = append(c.history, msg)
	if len(c.history) > c.limit {
		c.history = c.history[len(c.history)-c.limit:]
	}
}

// Recent returns a copy of the retained messages, oldest first
func (c *Console) Recent() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	history := make([]ConsoleMessage, len(c.history))
	copy(history, c.history)
	return history
}
