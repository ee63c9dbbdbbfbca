// ABOUTME: Display adapters connecting the session to CLI output.
// ABOUTME: One-shot commands print notices; servers log them instead.
package main

import (
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/session"
)

// cliDisplay prints notifications. Surfaces are rendered by each command.
type cliDisplay struct{}

func (cliDisplay) Redraw(...session.Surface) {}

func (cliDisplay) Notify(msg string) {
	color.Green("✓ %s", msg)
}

func (cliDisplay) ShowPrompt(*session.Prompt) {}

// logDisplay keeps stdout clean for servers that own it.
type logDisplay struct {
	log *log.Logger
}

func (d logDisplay) Redraw(surfaces ...session.Surface) {
	d.log.Debug("redraw", "surfaces", surfaces)
}

func (d logDisplay) Notify(msg string) {
	d.log.Info(msg)
}

func (d logDisplay) ShowPrompt(p *session.Prompt) {
	d.log.Info("prompt opened", "title", p.Title)
}
