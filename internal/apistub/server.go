// Package apistub is an in-memory double of the NoteCompass HTTP API. It
// speaks the exact wire contract the client expects and is used for
// integration tests and local development, never in production.
//
// Endpoints:
//
//	POST   /auth/login      {email, password}                → {token, user}
//	POST   /auth/register   {name, mobile, email, password}  → {token, user}
//	GET    /notes                                            → [{_id, title, content, updatedAt}]
//	POST   /notes           {title, content}                 → {_id, title, content, updatedAt}
//	PUT    /notes/{id}      {title, content}                 → {_id, title, content, updatedAt}
//	DELETE /notes/{id}                                       → {"success": true}
//
// Errors carry {"message": "..."} bodies. Note routes require an
// "Authorization: Bearer <token>" header.
package apistub

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

type ctxKey int

const userIDKey ctxKey = 0

// Server is the HTTP handler. Construct with NewServer and host it with
// net/http or net/http/httptest.
type Server struct {
	store  *memStore
	tokens *JWTService
	router *mux.Router
}

// NewServer builds a stub with empty state. The secret only needs to be
// consistent within one server's lifetime.
func NewServer(secret string) *Server {
	s := &Server{
		store:  newMemStore(),
		tokens: NewJWTService(secret, 72*time.Hour),
	}

	r := mux.NewRouter()
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)

	notes := r.PathPrefix("/notes").Subrouter()
	notes.Use(s.requireAuth)
	notes.HandleFunc("", s.handleListNotes).Methods(http.MethodGet)
	notes.HandleFunc("", s.handleCreateNote).Methods(http.MethodPost)
	notes.HandleFunc("/{id}", s.handleUpdateNote).Methods(http.MethodPut)
	notes.HandleFunc("/{id}", s.handleDeleteNote).Methods(http.MethodDelete)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// wire DTOs

type userDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile,omitempty"`
}

type noteDTO struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updatedAt"`
}

type sessionDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

func toUserDTO(u *userRecord) userDTO {
	return userDTO{ID: u.ID, Name: u.Name, Email: u.Email, Mobile: u.Mobile}
}

func toNoteDTO(n *noteRecord) noteDTO {
	return noteDTO{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		UpdatedAt: n.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// requireAuth rejects requests without a valid bearer token and stores the
// authenticated user id in the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := s.tokens.ValidateToken(tokenStr)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if _, exists := s.store.userByID(userID); !exists {
			writeError(w, http.StatusUnauthorized, "unknown user")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	u, err := s.store.authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	s.respondWithSession(w, u)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Mobile   string `json:"mobile"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	u, err := s.store.createUser(req.Name, req.Mobile, req.Email, req.Password)
	if err == ErrEmailTaken {
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create user")
		return
	}

	s.respondWithSession(w, u)
}

func (s *Server) respondWithSession(w http.ResponseWriter, u *userRecord) {
	token, err := s.tokens.GenerateToken(u.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, sessionDTO{Token: token, User: toUserDTO(u)})
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	notes := s.store.listNotes(userID)

	out := make([]noteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteDTO(n))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	n := s.store.createNote(userID, req.Title, req.Content)
	writeJSON(w, http.StatusCreated, toNoteDTO(n))
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	noteID := mux.Vars(r)["id"]

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	n, err := s.store.updateNote(userID, noteID, req.Title, req.Content)
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}
	writeJSON(w, http.StatusOK, toNoteDTO(n))
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	noteID := mux.Vars(r)["id"]

	if err := s.store.deleteNote(userID, noteID); err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
