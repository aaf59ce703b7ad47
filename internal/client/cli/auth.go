package cli

import (
	"context"
	"fmt"
	"sort"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers and can be swapped
// in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// printFieldErrors lists validation problems in a stable order.
func (a *App) printFieldErrors(errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(a.out, "  %s: %s\n", f, errs[f])
	}
}

// Login prompts for credentials, validates them locally, and submits.
// Validation failures never reach the network. On success the session is
// persisted and the app moves to the dashboard; on rejection the user gets
// a generic notification and stays on the auth view, credentials intact
// on the server side (nothing is cleared).
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if errs := validateAuth(authInput{Email: email, Password: password}); len(errs) > 0 {
		a.notify("Please fix the errors below:")
		a.printFieldErrors(errs)
		return nil
	}

	sess, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.logger.Error(ctx, "login failed", "err", err)
		a.notify("Authentication failed. Please check your credentials.")
		return nil
	}

	a.notify("Logged in successfully!")
	a.toDashboard(sess)
	a.loadNotes(ctx)
	return nil
}

// Register collects the registration form, validates it, and creates the
// account. Each invocation starts with a clean form: earlier errors and
// the confirmation field never leak into a new attempt.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	mobile, err := getSimpleText(a.reader, "Enter mobile number", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	in := authInput{Name: name, Mobile: mobile, Email: email, Password: password, Confirm: confirm, Register: true}
	if errs := validateAuth(in); len(errs) > 0 {
		a.notify("Please fix the errors below:")
		a.printFieldErrors(errs)
		return nil
	}

	sess, err := a.auth.Register(ctx, name, mobile, email, password)
	if err != nil {
		a.logger.Error(ctx, "registration failed", "err", err)
		a.notify("Authentication failed. Please check your details.")
		return nil
	}

	a.notify("Account created successfully!")
	a.toDashboard(sess)
	a.loadNotes(ctx)
	return nil
}

// Logout clears the persisted session and all session-scoped state. The
// server is not involved.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.toAuth()
	a.notify("Logged out.")
	return nil
}

// Whoami prints the signed-in user's profile.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.User
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	if u.Mobile != "" {
		fmt.Fprintf(a.out, "mobile: %s\n", u.Mobile)
	}
	return nil
}
