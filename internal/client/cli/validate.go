package cli

import "regexp"

var (
	// emailRe checks the basic local@domain.tld shape; anything stricter
	// is the server's business.
	emailRe  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
)

const minPasswordLen = 6

// authInput carries the credential form fields. Name, Mobile and Confirm
// are only checked in register mode.
type authInput struct {
	Name     string
	Mobile   string
	Email    string
	Password string
	Confirm  string
	Register bool
}

// validateAuth checks the form before any network call. It returns a
// field → message map; an empty map means the input may be submitted.
func validateAuth(in authInput) map[string]string {
	errs := make(map[string]string)

	if in.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(in.Email) {
		errs["email"] = "Please enter a valid email"
	}

	if in.Password == "" {
		errs["password"] = "Password is required"
	} else if len(in.Password) < minPasswordLen {
		errs["password"] = "Password must be at least 6 characters"
	}

	if in.Register {
		if in.Name == "" {
			errs["name"] = "Name is required"
		}
		if in.Mobile == "" {
			errs["mobile"] = "Mobile number is required"
		} else if !mobileRe.MatchString(in.Mobile) {
			errs["mobile"] = "Mobile number must be 10 digits"
		}
		if in.Confirm == "" {
			errs["confirmPassword"] = "Please confirm your password"
		} else if in.Password != in.Confirm {
			errs["confirmPassword"] = "Passwords do not match"
		}
	}

	return errs
}
