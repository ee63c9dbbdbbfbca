// ABOUTME: Shared output and argument helpers for CLI commands.
// ABOUTME: Renders list view-models and parses month arguments.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/views"
)

// printList renders a list view-model, or its empty placeholder.
func printList(l views.List) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = bold.Println(l.Title)
	if l.IsEmpty() {
		_, _ = faint.Printf("  %s\n", l.Empty.Message)
		return
	}
	for _, item := range l.Items {
		fmt.Printf("  %s %s %s %s\n",
			faint.Sprint(padRight(fmt.Sprintf("#%d", item.ID), 5)),
			padRight(truncate(item.Title, 24), 24),
			faint.Sprint(padRight(item.Detail, 28)),
			item.Value)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// parseMonth parses a YYYY-MM argument.
func parseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month: %s (use YYYY-MM)", s)
	}
	return t.Year(), t.Month(), nil
}

// bar renders a progress fraction as a fixed-width bar.
func bar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
