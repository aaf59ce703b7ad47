package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkrasnov/notecompass/internal/client/models"
)

func TestLoadNotes(t *testing.T) {
	notes := &fakeNotes{notes: []models.Note{{ID: "1", Title: "Groceries"}}}
	a, _ := newTestApp(&fakeAuth{}, notes, "")
	a.toDashboard(testSession())

	a.loadNotes(context.Background())
	require.Len(t, a.collection, 1)
	require.Equal(t, "Groceries", a.collection[0].Title)
}

func TestLoadNotes_FailureLeavesEmptyCollection(t *testing.T) {
	notes := &fakeNotes{listErr: errors.New("boom")}
	a, out := newTestApp(&fakeAuth{}, notes, "")
	a.toDashboard(testSession())

	a.loadNotes(context.Background())
	require.Empty(t, a.collection)
	require.Contains(t, out.String(), "Failed to load notes.")
}

func TestAdd_PrependsNewNote(t *testing.T) {
	created := &models.Note{ID: "2", Title: "Chores", Content: "Laundry"}
	notes := &fakeNotes{created: created}
	a, out := newTestApp(&fakeAuth{}, notes, "Chores\nLaundry\n\n")
	a.toDashboard(testSession())
	a.collection = []models.Note{{ID: "1", Title: "Groceries"}}

	require.NoError(t, a.Add(context.Background()))
	require.Len(t, a.collection, 2)
	require.Equal(t, "2", a.collection[0].ID)
	require.Equal(t, "1", a.collection[1].ID)
	require.Nil(t, a.draft)
	require.Contains(t, out.String(), "Note added.")
}

func TestAdd_RequiresTitleAndContent(t *testing.T) {
	notes := &fakeNotes{created: &models.Note{ID: "1"}}
	a, out := newTestApp(&fakeAuth{}, notes, "\n\n")
	a.toDashboard(testSession())

	require.NoError(t, a.Add(context.Background()))
	require.Empty(t, a.collection)
	require.Contains(t, out.String(), "Title and content required.")
}

func TestAdd_FailureKeepsDraft(t *testing.T) {
	notes := &fakeNotes{createErr: errors.New("boom")}
	a, out := newTestApp(&fakeAuth{}, notes, "Chores\nLaundry\n\n")
	a.toDashboard(testSession())

	require.NoError(t, a.Add(context.Background()))
	require.Empty(t, a.collection)
	require.NotNil(t, a.draft)
	require.Equal(t, "Chores", a.draft.Title())
	require.Equal(t, "Laundry", a.draft.Content())
	require.Contains(t, out.String(), "Your draft was kept")
}

func TestAdd_DraftOfferedOnRetry(t *testing.T) {
	created := &models.Note{ID: "1", Title: "Chores", Content: "Laundry"}
	notes := &fakeNotes{createErr: errors.New("boom")}
	a, _ := newTestApp(&fakeAuth{}, notes, "Chores\nLaundry\n\n\n\n")
	a.toDashboard(testSession())

	require.NoError(t, a.Add(context.Background()))
	require.NotNil(t, a.draft)

	// Second attempt: keep the draft values by pressing Enter through the
	// prompts, this time the server accepts.
	notes.createErr = nil
	notes.created = created
	require.NoError(t, a.Add(context.Background()))
	require.Len(t, a.collection, 1)
	require.Nil(t, a.draft)
}

func TestDelete_Confirmed(t *testing.T) {
	notes := &fakeNotes{}
	a, out := newTestApp(&fakeAuth{}, notes, "1\ny\n")
	a.toDashboard(testSession())
	a.collection = []models.Note{{ID: "1"}, {ID: "2"}}

	require.NoError(t, a.Delete(context.Background()))
	require.Equal(t, "1", notes.deletedID)
	require.Len(t, a.collection, 1)
	require.Equal(t, "2", a.collection[0].ID)
	require.Contains(t, out.String(), "Note deleted.")
}

func TestDelete_Declined(t *testing.T) {
	notes := &fakeNotes{}
	a, out := newTestApp(&fakeAuth{}, notes, "1\nn\n")
	a.toDashboard(testSession())
	a.collection = []models.Note{{ID: "1"}}

	require.NoError(t, a.Delete(context.Background()))
	require.Empty(t, notes.deletedID)
	require.Len(t, a.collection, 1)
	require.Contains(t, out.String(), "Delete cancelled.")
}

func TestDelete_UnknownID(t *testing.T) {
	notes := &fakeNotes{}
	a, out := newTestApp(&fakeAuth{}, notes, "9\n")
	a.toDashboard(testSession())
	a.collection = []models.Note{{ID: "1"}}

	require.NoError(t, a.Delete(context.Background()))
	require.Contains(t, out.String(), "No such note.")
	require.Len(t, a.collection, 1)
}

func TestDelete_ServerFailureKeepsCollection(t *testing.T) {
	notes := &fakeNotes{deleteErr: errors.New("boom")}
	a, out := newTestApp(&fakeAuth{}, notes, "1\ny\n")
	a.toDashboard(testSession())
	a.collection = []models.Note{{ID: "1"}}

	require.NoError(t, a.Delete(context.Background()))
	require.Len(t, a.collection, 1)
	require.Contains(t, out.String(), "Failed to delete note.")
}

func TestEdit_OpensForm(t *testing.T) {
	a, _ := newTestApp(&fakeAuth{}, &fakeNotes{}, "1\n")
	a.toDashboard(testSession())
	a.collection = []models.Note{{ID: "1", Title: "Groceries", Content: "Milk"}}

	require.NoError(t, a.Edit(context.Background()))
	require.Equal(t, ViewEditing, a.View())
	require.Equal(t, "Groceries", a.form.Title())
}

func TestEdit_UnknownIDStaysOnDashboard(t *testing.T) {
	a, out := newTestApp(&fakeAuth{}, &fakeNotes{}, "9\n")
	a.toDashboard(testSession())

	require.NoError(t, a.Edit(context.Background()))
	require.Equal(t, ViewDashboard, a.View())
	require.Contains(t, out.String(), "No such note.")
}

func TestEditSave_ReplacesInPlace(t *testing.T) {
	updated := &models.Note{ID: "2", Title: "Ideas v2", Content: "Go hiking"}
	notes := &fakeNotes{updated: updated}
	a, out := newTestApp(&fakeAuth{}, notes, "")
	a.toDashboard(testSession())
	a.collection = []models.Note{
		{ID: "1", Title: "Groceries"},
		{ID: "2", Title: "Ideas", Content: "Old"},
		{ID: "3", Title: "Chores"},
	}
	a.beginEdit(&a.collection[1])
	a.form.SetTitle("Ideas v2")
	a.form.SetContent("Go hiking")

	require.NoError(t, a.EditSave(context.Background()))
	require.Equal(t, "2", notes.updatedID)
	require.Equal(t, ViewDashboard, a.View())
	require.Equal(t, []string{"1", "2", "3"}, []string{a.collection[0].ID, a.collection[1].ID, a.collection[2].ID})
	require.Equal(t, "Ideas v2", a.collection[1].Title)
	require.Contains(t, out.String(), "Note updated.")
}

func TestEditSave_BlankTitleRejectedLocally(t *testing.T) {
	notes := &fakeNotes{}
	a, out := newTestApp(&fakeAuth{}, notes, "")
	a.toDashboard(testSession())
	a.collection = []models.Note{{ID: "1", Title: "Groceries"}}
	a.beginEdit(&a.collection[0])
	a.form.SetTitle("  ")

	require.NoError(t, a.EditSave(context.Background()))
	require.Empty(t, notes.updatedID)
	require.Equal(t, ViewEditing, a.View())
	require.Contains(t, out.String(), "Title is required.")
}

func TestEditSave_FailureKeepsFormOpen(t *testing.T) {
	notes := &fakeNotes{updateErr: errors.New("boom")}
	a, out := newTestApp(&fakeAuth{}, notes, "")
	a.toDashboard(testSession())
	a.collection = []models.Note{{ID: "1", Title: "Groceries", Content: "Milk"}}
	a.beginEdit(&a.collection[0])
	a.form.SetTitle("Groceries v2")

	require.NoError(t, a.EditSave(context.Background()))
	require.Equal(t, ViewEditing, a.View())
	require.Equal(t, "Groceries v2", a.form.Title())
	require.Equal(t, "Groceries", a.collection[0].Title)
	require.Contains(t, out.String(), "Your edits were kept")
}

func TestEditCancel_DiscardsEdits(t *testing.T) {
	a, _ := newTestApp(&fakeAuth{}, &fakeNotes{}, "")
	a.toDashboard(testSession())
	a.collection = []models.Note{{ID: "1", Title: "Groceries"}}
	a.beginEdit(&a.collection[0])
	a.form.SetTitle("Changed")

	require.NoError(t, a.EditCancel(context.Background()))
	require.Equal(t, ViewDashboard, a.View())
	require.Nil(t, a.form)
	require.Equal(t, "Groceries", a.collection[0].Title)
}
