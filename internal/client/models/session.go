package models

// Session pairs the opaque bearer token with the signed-in user's profile.
// A Session exists exactly while the client considers itself authenticated;
// its absence routes the UI back to the auth view.
type Session struct {
	Token string
	User  User
}
