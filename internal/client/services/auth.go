// Package services contains the application services of the NoteCompass
// client: authentication/session lifecycle and note operations. Services
// are thin on purpose — the remote API is the source of truth and the UI
// layer owns the in-memory note collection.
package services

import (
	"context"
	"fmt"

	"github.com/dkrasnov/notecompass/internal/client/api"
	"github.com/dkrasnov/notecompass/internal/client/models"
	"github.com/dkrasnov/notecompass/internal/client/session"
)

// AuthService drives the session lifecycle.
//
// Contract:
//   - Login/Register: authenticate against the server and persist the
//     session so it survives restarts.
//   - Resume: read the persisted session at startup; nil means logged out.
//   - Logout: drop the persisted session. No server call is involved.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, name, mobile, email, password string) (*models.Session, error)
	Resume(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	sess, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := a.store.Save(ctx, *sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return sess, nil
}

func (a *authService) Register(ctx context.Context, name, mobile, email, password string) (*models.Session, error) {
	sess, err := a.client.Register(ctx, name, mobile, email, password)
	if err != nil {
		return nil, err
	}
	if err := a.store.Save(ctx, *sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return sess, nil
}

func (a *authService) Resume(ctx context.Context) (*models.Session, error) {
	return a.store.Load(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}
