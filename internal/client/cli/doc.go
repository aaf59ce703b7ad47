// Package cli provides the interactive NoteCompass command-line client.
//
// It wires configuration, the local session store, API services, and an
// interactive REPL organised around three views. Typical flow: resume a
// persisted session (or prompt for credentials), load the note collection,
// and execute user commands.
//
// Key features:
//   - Login / Register / Logout with a persisted session
//   - List, add, edit, and delete notes against the NoteCompass API
//   - A note form that keeps unsaved edits across failed requests
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
