package apistub

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrBadLogin     = errors.New("invalid email or password")
	ErrNoteNotFound = errors.New("note not found")
)

type userRecord struct {
	ID           string
	Name         string
	Email        string
	Mobile       string
	PasswordHash []byte
}

type noteRecord struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	UpdatedAt time.Time
}

// memStore keeps users and notes in memory behind one mutex. Notes are
// stored most-recent-first per user, matching the order the list endpoint
// returns.
type memStore struct {
	mu    sync.Mutex
	users map[string]*userRecord // keyed by email
	byID  map[string]*userRecord
	notes map[string][]*noteRecord // keyed by user id, newest first
	nowFn func() time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[string]*userRecord),
		byID:  make(map[string]*userRecord),
		notes: make(map[string][]*noteRecord),
		nowFn: time.Now,
	}
}

func (s *memStore) createUser(name, mobile, email, password string) (*userRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return nil, ErrEmailTaken
	}
	u := &userRecord{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Mobile:       mobile,
		PasswordHash: hash,
	}
	s.users[email] = u
	s.byID[u.ID] = u
	return u, nil
}

func (s *memStore) authenticate(email, password string) (*userRecord, error) {
	s.mu.Lock()
	u, ok := s.users[email]
	s.mu.Unlock()
	if !ok {
		return nil, ErrBadLogin
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, ErrBadLogin
	}
	return u, nil
}

func (s *memStore) userByID(id string) (*userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	return u, ok
}

func (s *memStore) listNotes(userID string) []*noteRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes := s.notes[userID]
	out := make([]*noteRecord, len(notes))
	copy(out, notes)
	return out
}

func (s *memStore) createNote(userID, title, content string) *noteRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := &noteRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		UpdatedAt: s.nowFn(),
	}
	s.notes[userID] = append([]*noteRecord{n}, s.notes[userID]...)
	return n
}

func (s *memStore) updateNote(userID, noteID, title, content string) (*noteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notes[userID] {
		if n.ID == noteID {
			n.Title = title
			n.Content = content
			n.UpdatedAt = s.nowFn()
			return n, nil
		}
	}
	return nil, ErrNoteNotFound
}

func (s *memStore) deleteNote(userID, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes := s.notes[userID]
	for i, n := range notes {
		if n.ID == noteID {
			s.notes[userID] = append(notes[:i], notes[i+1:]...)
			return nil
		}
	}
	return ErrNoteNotFound
}
