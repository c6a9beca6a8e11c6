package local

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleName is the sender name of the server console
const ConsoleName = "CONSOLE"

// Console is the server operator. It holds every permission and writes
// replies to its writer.
type Console struct {
	mu       sync.Mutex
	out      io.Writer
	messages []string
}

// NewConsole creates a console writing to out; a nil writer only records
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Name implements host.CommandSender
func (c *Console) Name() string { return ConsoleName }

// HasPermission implements host.CommandSender
func (c *Console) HasPermission(string) bool { return true }

// SendMessage implements host.CommandSender
func (c *Console) SendMessage(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	if c.out != nil {
		fmt.Fprintln(c.out, StripColors(msg))
	}
}

// Messages returns every reply sent to the console
func (c *Console) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

// StripColors removes §x colour codes for plain terminals
func StripColors(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '§' && i+1 < len(runes) {
			i++
			continue
		}
		out = append(out, runes[i])
	}
	return string(out)
}
