package models

import (
	"encoding/json"
	"time"
)

// Note is a single user-owned record. The server assigns ID and refreshes
// UpdatedAt on every create/update; the client never invents identifiers.
// A zero UpdatedAt means the server omitted the timestamp and the caller
// may substitute the current time.
type Note struct {
	ID        string
	Title     string
	Content   string
	UpdatedAt time.Time
}

// noteWire mirrors the API payload: Mongo-style "_id" and an RFC3339
// "updatedAt" that some responses omit.
type noteWire struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func (n *Note) UnmarshalJSON(data []byte) error {
	var w noteWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	n.ID = w.ID
	n.Title = w.Title
	n.Content = w.Content
	n.UpdatedAt = time.Time{}
	if w.UpdatedAt != "" {
		// An unparsable timestamp is not fatal; the note is still usable.
		if ts, err := time.Parse(time.RFC3339, w.UpdatedAt); err == nil {
			n.UpdatedAt = ts
		}
	}
	return nil
}

func (n Note) MarshalJSON() ([]byte, error) {
	w := noteWire{ID: n.ID, Title: n.Title, Content: n.Content}
	if !n.UpdatedAt.IsZero() {
		w.UpdatedAt = n.UpdatedAt.Format(time.RFC3339)
	}
	return json.Marshal(w)
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut. It is a display helper only and never feeds back into
// stored data.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
