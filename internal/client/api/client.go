package api

import (
	"context"

	"github.com/dkrasnov/notecompass/internal/client/models"
)

// Client is the remote NoteCompass API surface the rest of the client
// programs against. Login and Register need no token; every note operation
// authenticates with the session's bearer token.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, name, mobile, email, password string) (*models.Session, error)
	ListNotes(ctx context.Context, token string) ([]models.Note, error)
	CreateNote(ctx context.Context, token, title, content string) (*models.Note, error)
	UpdateNote(ctx context.Context, token, id, title, content string) (*models.Note, error)
	DeleteNote(ctx context.Context, token, id string) error
}
