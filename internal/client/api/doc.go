// Package api wraps the remote NoteCompass HTTP JSON endpoints behind the
// Client interface.
//
// Endpoints
//
//	POST   /auth/login      {email, password}                → {token, user}
//	POST   /auth/register   {name, email, mobile, password}  → {token, user}
//	GET    /notes           (bearer)                         → [Note, ...]
//	POST   /notes           (bearer) {title, content}        → Note
//	PUT    /notes/:id       (bearer) {title, content}        → Note
//	DELETE /notes/:id       (bearer)                         → {success}
//
// Error mapping
//
//   - transport failure → errors.Is(err, ErrUnavailable)
//   - 401/403           → errors.Is(err, ErrUnauthorized) (via *APIError)
//   - other non-2xx     → *APIError carrying the server's message field
package api
