// ABOUTME: Confirmation and informational prompts.
// ABOUTME: A confirmed prompt runs its action exactly once.
package session

import (
	"errors"
	"sync"
)

// ErrPromptClosed is returned when confirming with no open prompt.
var ErrPromptClosed = errors.New("no open prompt")

// Prompt is a modal question. With no action it only informs.
type Prompt struct {
	Title   string
	Message string

	action func() error
	once   sync.Once
	err    error
}

// NewPrompt creates a prompt. A nil action makes it informational.
func NewPrompt(title, message string, action func() error) *Prompt {
	return &Prompt{Title: title, Message: message, action: action}
}

// Informational reports whether the prompt has nothing to confirm.
func (p *Prompt) Informational() bool {
	return p.action == nil
}

// run executes the action at most once and returns its result.
func (p *Prompt) run() error {
	p.once.Do(func() {
		if p.action != nil {
			p.err = p.action()
		}
	})
	return p.err
}
