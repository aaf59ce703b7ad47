package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dkrasnov/notecompass/internal/client/models"
)

// Display limits for list rendering. Cosmetic only: stored notes are never
// modified by truncation.
const (
	titleDisplayLimit   = 50
	contentDisplayLimit = 120
)

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// renderNote prints one note summary: id and title on the first line,
// date (when known) and truncated content below.
func renderNote(w io.Writer, n models.Note) {
	title := n.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(w, "[%s] %s\n", n.ID, models.Truncate(title, titleDisplayLimit))
	if d := formatDate(n.UpdatedAt); d != "" {
		fmt.Fprintf(w, "    %s\n", d)
	}
	content := n.Content
	if content == "" {
		content = "No content"
	}
	fmt.Fprintf(w, "    %s\n", models.Truncate(content, contentDisplayLimit))
}

// renderNotes prints the whole collection in its current order.
func renderNotes(w io.Writer, notes []models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes yet. Create your first note with 'add'.")
		return
	}
	noun := "notes"
	if len(notes) == 1 {
		noun = "note"
	}
	fmt.Fprintf(w, "%d %s saved\n", len(notes), noun)
	for _, n := range notes {
		renderNote(w, n)
	}
}
