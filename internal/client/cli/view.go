package cli

// View enumerates the client's top-level UI states. Transitions are
// explicit methods on App so the state machine can be tested without any
// terminal attached.
type View int

const (
	// ViewAuth: no session; only login/register are available.
	ViewAuth View = iota
	// ViewDashboard: authenticated; the note collection is loaded and
	// list/add/edit/delete operate on it.
	ViewDashboard
	// ViewEditing: a note form is open for one existing note.
	ViewEditing
)

func (v View) String() string {
	switch v {
	case ViewAuth:
		return "auth"
	case ViewDashboard:
		return "dashboard"
	case ViewEditing:
		return "editing"
	default:
		return "unknown"
	}
}
