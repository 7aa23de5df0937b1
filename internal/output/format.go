// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskly/internal/store"
)

const (
	// GlyphPending marks a task that is not completed yet.
	GlyphPending = "⬜"

	// GlyphCompleted marks a completed task.
	GlyphCompleted = "✅"

	// GlyphHigh is the high-priority marker.
	GlyphHigh = "🔴"

	// GlyphMedium is the medium-priority marker.
	GlyphMedium = "🟡"

	// GlyphLow is the low-priority marker.
	GlyphLow = "🟢"

	// GlyphError prefixes user-visible error messages.
	GlyphError = "❌"

	// GlyphInfo prefixes informational no-op messages.
	GlyphInfo = "ℹ️"

	// GlyphEmpty prefixes empty-state messages.
	GlyphEmpty = "📭"

	// GlyphRemoved prefixes the remove confirmation.
	GlyphRemoved = "🗑️"
)

// StatusGlyph returns the completion marker for a task.
func StatusGlyph(completed bool) string {
	if completed {
		return GlyphCompleted
	}
	return GlyphPending
}

// PriorityGlyph returns the marker for a priority level.
// Unknown values fall back to the low marker so that hand-edited files
// still render every line.
func PriorityGlyph(p store.Priority) string {
	switch p {
	case store.PriorityHigh:
		return GlyphHigh
	case store.PriorityMedium:
		return GlyphMedium
	default:
		return GlyphLow
	}
}

// FormatTask formats a task line for the list command.
// Format: "{N}. {STATUS} {PRIORITY} {TITLE}\n"
func FormatTask(w io.Writer, num int, task store.Task) {
	title := normalizeTitle(task.Title)
	fmt.Fprintf(w, "%d. %s %s %s\n", num, StatusGlyph(task.Completed), PriorityGlyph(task.Priority), title)
}

// FormatTotal formats the trailing count line for the list command,
// separated from the entries by a blank line.
func FormatTotal(w io.Writer, count int) {
	noun := "tasks"
	if count == 1 {
		noun = "task"
	}
	fmt.Fprintf(w, "\nTotal: %d %s\n", count, noun)
}

// Errorf writes a user-visible error message with the failure glyph.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, GlyphError+" "+format+"\n", args...)
}

// Infof writes an informational message with the info glyph.
func Infof(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, GlyphInfo+" "+format+"\n", args...)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
