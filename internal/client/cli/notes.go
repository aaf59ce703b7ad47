package cli

import (
	"context"
	"fmt"

	"github.com/dkrasnov/notecompass/internal/client/models"
)

// loadNotes replaces the local collection with the server's. On failure
// the collection stays empty and the user is told; retrying is just
// running the command again.
func (a *App) loadNotes(ctx context.Context) {
	notes, err := a.notes.List(ctx, a.session.Token)
	if err != nil {
		a.logger.Error(ctx, "notes load failed", "err", err)
		a.notify("Failed to load notes.")
		a.collection = nil
		return
	}
	a.collection = notes
}

// List prints the current collection.
func (a *App) List(ctx context.Context) error {
	renderNotes(a.out, a.collection)
	return nil
}

// Refresh re-fetches the collection from the server.
func (a *App) Refresh(ctx context.Context) error {
	a.loadNotes(ctx)
	return a.List(ctx)
}

// Add collects a new note and creates it on the server. Title and content
// are both required before anything is sent. On success the server's note
// is prepended to the collection; on failure the draft is kept and offered
// back on the next add.
func (a *App) Add(ctx context.Context) error {
	if a.draft == nil {
		a.draft = newNoteForm(nil)
	} else {
		a.notify("Resuming your unsaved draft (press Enter to keep a value).")
	}

	title, err := GetTextWithDefault(a.reader, "Note title", a.draft.Title(), a.out)
	if err != nil {
		return err
	}
	a.draft.SetTitle(title)

	content, err := GetMultiline(a.reader, "Write your note (current draft kept if empty):", a.out)
	if err != nil {
		return err
	}
	if content != "" {
		a.draft.SetContent(content)
	}

	if a.draft.Title() == "" || a.draft.Content() == "" {
		a.notify("Title and content required.")
		return nil
	}

	created, err := a.notes.Create(ctx, a.session.Token, a.draft.Title(), a.draft.Content())
	if err != nil {
		a.logger.Error(ctx, "note create failed", "err", err)
		a.notify("Failed to create note. Your draft was kept.")
		return nil
	}

	// newest first
	a.collection = append([]models.Note{*created}, a.collection...)
	a.draft = nil
	a.notify("Note added.")
	return nil
}

// Delete removes a note by id after an explicit confirmation. A server
// failure leaves the collection untouched.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id to delete", a.out)
	if err != nil {
		return err
	}
	if a.findNote(id) == nil {
		a.notify("No such note.")
		return nil
	}
	if !Confirm(a.reader, "Are you sure you want to delete this note?", a.out) {
		a.notify("Delete cancelled.")
		return nil
	}

	if err := a.notes.Delete(ctx, a.session.Token, id); err != nil {
		a.logger.Error(ctx, "note delete failed", "id", id, "err", err)
		a.notify("Failed to delete note.")
		return nil
	}

	a.removeNote(id)
	a.notify("Note deleted.")
	return nil
}

// Edit opens the note form for an existing note and switches to the
// editing view.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id to edit", a.out)
	if err != nil {
		return err
	}
	note := a.findNote(id)
	if note == nil {
		a.notify("No such note.")
		return nil
	}

	a.beginEdit(note)
	a.EditShow(ctx)
	a.notify("Editing. Commands: title, content, show, save, cancel.")
	return nil
}

// EditTitle replaces the form's title.
func (a *App) EditTitle(ctx context.Context) error {
	title, err := GetTextWithDefault(a.reader, "Note title", a.form.Title(), a.out)
	if err != nil {
		return err
	}
	a.form.SetTitle(title)
	return nil
}

// EditContent replaces the form's content.
func (a *App) EditContent(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "Write your note (current text kept if empty):", a.out)
	if err != nil {
		return err
	}
	if content != "" {
		a.form.SetContent(content)
	}
	return nil
}

// EditShow prints the form's current (unsaved) state.
func (a *App) EditShow(ctx context.Context) error {
	fmt.Fprintf(a.out, "Title:   %s\n", a.form.Title())
	fmt.Fprintf(a.out, "Content: %s\n", a.form.Content())
	return nil
}

// EditSave submits the form. A blank title is rejected locally with zero
// API calls. On server success the matching note is replaced in place,
// preserving collection order, and the form closes. On failure the form
// stays open with the edits intact.
func (a *App) EditSave(ctx context.Context) error {
	var title, content string
	ok := a.form.Submit(func(t, c string) { title, content = t, c })
	if !ok {
		a.notify("Title is required.")
		return nil
	}

	id := a.form.note.ID
	updated, err := a.notes.Update(ctx, a.session.Token, id, title, content)
	if err != nil {
		a.logger.Error(ctx, "note update failed", "id", id, "err", err)
		a.notify("Failed to update note. Your edits were kept.")
		return nil
	}

	a.replaceNote(*updated)
	a.endEdit()
	a.notify("Note updated.")
	return nil
}

// EditCancel discards the form without validation.
func (a *App) EditCancel(ctx context.Context) error {
	a.form.Cancel()
	a.endEdit()
	return nil
}

func (a *App) findNote(id string) *models.Note {
	for i := range a.collection {
		if a.collection[i].ID == id {
			return &a.collection[i]
		}
	}
	return nil
}

func (a *App) removeNote(id string) {
	for i := range a.collection {
		if a.collection[i].ID == id {
			a.collection = append(a.collection[:i], a.collection[i+1:]...)
			return
		}
	}
}

func (a *App) replaceNote(n models.Note) {
	for i := range a.collection {
		if a.collection[i].ID == n.ID {
			a.collection[i] = n
			return
		}
	}
}
