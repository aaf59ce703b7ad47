package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	View() View
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	EditTitle(ctx context.Context) error
	EditContent(ctx context.Context) error
	EditShow(ctx context.Context) error
	EditSave(ctx context.Context) error
	EditCancel(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the NoteCompass client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The command set depends on the
// current view. Unknown commands are reported back to the user. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Auth view (not logged in):
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — sign in
//	  - exit | quit    — leave the program
//
//	Dashboard view:
//	  - help           — show available commands
//	  - list | l       — print the note collection
//	  - refresh        — re-fetch notes from the server
//	  - add            — create a note
//	  - edit           — open a note for editing
//	  - delete | del   — delete a note (with confirmation)
//	  - whoami         — show the signed-in profile
//	  - logout         — sign out
//	  - exit | quit    — leave the program
//
//	Editing view (a note form is open):
//	  - help           — show available commands
//	  - title          — change the title
//	  - content        — replace the content
//	  - show           — print the unsaved form
//	  - save           — submit to the server
//	  - cancel         — discard the edits
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("nc> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		switch a.View() {
		case ViewAuth:
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}

		case ViewDashboard:
			switch cmd {
			case "help":
				printlnFn("Available commands: (l)ist, refresh, add, edit, delete, whoami, logout, exit")
			case "l", "list":
				_ = a.List(ctx)
			case "refresh":
				_ = a.Refresh(ctx)
			case "add":
				_ = a.Add(ctx)
			case "edit":
				_ = a.Edit(ctx)
			case "del", "delete":
				_ = a.Delete(ctx)
			case "whoami":
				_ = a.Whoami(ctx)
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}

		case ViewEditing:
			switch cmd {
			case "help":
				printlnFn("Available commands: title, content, show, save, cancel, exit")
			case "title":
				_ = a.EditTitle(ctx)
			case "content":
				_ = a.EditContent(ctx)
			case "show":
				_ = a.EditShow(ctx)
			case "save":
				_ = a.EditSave(ctx)
			case "cancel":
				_ = a.EditCancel(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}
