package cli

import (
	"strings"

	"github.com/dkrasnov/notecompass/internal/client/models"
)

// noteForm is the controlled title/content pair behind add and edit. It
// holds the user's unsaved edits; nothing here touches the network.
type noteForm struct {
	note    *models.Note // nil ⇒ create mode
	title   string
	content string
}

// newNoteForm builds a form pre-populated from note, or an empty create
// form when note is nil.
func newNoteForm(note *models.Note) *noteForm {
	f := &noteForm{}
	f.Reset(note)
	return f
}

// Reset repopulates the form when the supplied note identity changes.
// Calling it with the same note keeps the user's current edits.
func (f *noteForm) Reset(note *models.Note) {
	if note == nil {
		if f.note == nil && (f.title != "" || f.content != "") {
			return
		}
		f.note = nil
		f.title = ""
		f.content = ""
		return
	}
	if f.note != nil && f.note.ID == note.ID {
		return
	}
	f.note = note
	f.title = note.Title
	f.content = note.Content
}

func (f *noteForm) SetTitle(title string)     { f.title = title }
func (f *noteForm) SetContent(content string) { f.content = content }
func (f *noteForm) Title() string             { return f.title }
func (f *noteForm) Content() string           { return f.content }

// Editing reports whether the form targets an existing note.
func (f *noteForm) Editing() bool { return f.note != nil }

// Submit invokes save with the trimmed fields. It refuses (returning
// false, save not called) when the trimmed title is empty.
func (f *noteForm) Submit(save func(title, content string)) bool {
	title := strings.TrimSpace(f.title)
	if title == "" {
		return false
	}
	save(title, strings.TrimSpace(f.content))
	return true
}

// Cancel discards local edits. No validation happens on the way out.
func (f *noteForm) Cancel() {
	f.title = ""
	f.content = ""
	f.note = nil
}
