// ABOUTME: Non-blocking Display that queues session events for the update loop.
// ABOUTME: The model drains it after every intent it issues.
package tui

import (
	"sync"

	"github.com/harperreed/fittrack/internal/session"
)

type inbox struct {
	mu      sync.Mutex
	dirty   map[session.Surface]bool
	notices []string
	prompt  *session.Prompt
}

func newInbox() *inbox {
	return &inbox{dirty: map[session.Surface]bool{}}
}

func (b *inbox) Redraw(surfaces ...session.Surface) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range surfaces {
		b.dirty[s] = true
	}
}

func (b *inbox) Notify(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, msg)
}

func (b *inbox) ShowPrompt(p *session.Prompt) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prompt = p
}

// drain hands back and clears everything queued.
func (b *inbox) drain() (map[session.Surface]bool, []string, *session.Prompt) {
	b.mu.Lock()
	defer b.mu.Unlock()
	dirty, notices, prompt := b.dirty, b.notices, b.prompt
	b.dirty = map[session.Surface]bool{}
	b.notices = nil
	b.prompt = nil
	return dirty, notices, prompt
}
