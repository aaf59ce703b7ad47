package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dkrasnov/notecompass/internal/client/api"
	"github.com/dkrasnov/notecompass/internal/client/config"
	"github.com/dkrasnov/notecompass/internal/client/models"
	"github.com/dkrasnov/notecompass/internal/client/services"
	"github.com/dkrasnov/notecompass/internal/client/session"
	"github.com/dkrasnov/notecompass/internal/logging"
)

// App owns the terminal client's state: the current view, the session and
// the authoritative in-memory note collection for this session. Commands
// run synchronously, so at most one request is ever in flight and the
// prompt only returns once the round trip finished.
type App struct {
	config *config.Config
	auth   services.AuthService
	notes  services.NoteService
	store  *session.SQLiteStore
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer

	view       View
	session    *models.Session
	collection []models.Note
	form       *noteForm // open note form while view == ViewEditing
	draft      *noteForm // add draft kept across a failed create
}

// NewApp wires the client together: local session store, HTTP API client,
// and the services on top of them.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	store, err := session.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "session store init failed", "path", cfg.SessionDBPath, "err", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)

	return &App{
		config: cfg,
		auth:   services.NewAuthService(apiClient, store),
		notes:  services.NewNoteService(apiClient),
		store:  store,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		view:   ViewAuth,
	}, nil
}

// Close releases the session store.
func (a *App) Close() error {
	return a.store.Close()
}

// Run resumes any persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to NoteCompass (type 'help' for commands)")

	sess, err := a.auth.Resume(ctx)
	if err != nil {
		a.logger.Error(ctx, "session resume failed", "err", err)
	}
	if sess != nil {
		a.toDashboard(sess)
		a.loadNotes(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) View() View { return a.view }

func (a *App) isLoggedIn() bool { return a.session != nil }

// toDashboard installs the session and moves to the dashboard view. The
// note collection starts empty until loadNotes fills it.
func (a *App) toDashboard(sess *models.Session) {
	a.session = sess
	a.collection = nil
	a.form = nil
	a.view = ViewDashboard
}

// toAuth drops all session-scoped state and returns to the auth view.
func (a *App) toAuth() {
	a.session = nil
	a.collection = nil
	a.form = nil
	a.draft = nil
	a.view = ViewAuth
}

// beginEdit opens the note form for an existing note.
func (a *App) beginEdit(note *models.Note) {
	a.form = newNoteForm(note)
	a.view = ViewEditing
}

// endEdit closes the note form and returns to the dashboard.
func (a *App) endEdit() {
	a.form = nil
	a.view = ViewDashboard
}

// status renders the prompt suffix: the signed-in email and current view.
func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.session.User.Email, a.view)
}

// notify prints a user-facing message.
func (a *App) notify(msg string) {
	fmt.Fprintln(a.out, msg)
}
