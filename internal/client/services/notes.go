package services

import (
	"context"
	"time"

	"github.com/dkrasnov/notecompass/internal/client/api"
	"github.com/dkrasnov/notecompass/internal/client/models"
)

// nowFn is a test seam for the synthesized update timestamp.
var nowFn = time.Now

// NoteService wraps the remote note operations. Each call is a single
// round trip; nothing is cached here.
type NoteService interface {
	List(ctx context.Context, token string) ([]models.Note, error)
	Create(ctx context.Context, token, title, content string) (*models.Note, error)
	Update(ctx context.Context, token, id, title, content string) (*models.Note, error)
	Delete(ctx context.Context, token, id string) error
}

type noteService struct {
	client api.Client
}

func NewNoteService(client api.Client) NoteService {
	return &noteService{client: client}
}

func (s *noteService) List(ctx context.Context, token string) ([]models.Note, error) {
	return s.client.ListNotes(ctx, token)
}

func (s *noteService) Create(ctx context.Context, token, title, content string) (*models.Note, error) {
	return s.client.CreateNote(ctx, token, title, content)
}

// Update returns the server's version of the note. Some responses omit the
// refreshed timestamp; those get the current time so the list never shows
// an updated note with a stale (or zero) date.
func (s *noteService) Update(ctx context.Context, token, id, title, content string) (*models.Note, error) {
	note, err := s.client.UpdateNote(ctx, token, id, title, content)
	if err != nil {
		return nil, err
	}
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = nowFn()
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, token, id string) error {
	return s.client.DeleteNote(ctx, token, id)
}
