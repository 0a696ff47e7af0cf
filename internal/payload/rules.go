package payload

import (
	"fmt"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Bounds is an inclusive length range for a registration field.
type Bounds struct {
	Min int
	Max int
}

// Registration form limits enforced by the target server.
var (
	UsernameBounds = Bounds{Min: 6, Max: 20}
	PasswordBounds = Bounds{Min: 8, Max: 20}
	RecoverBounds  = Bounds{Min: 6, Max: 20}
)

// Shapes of every generated password and recovery key.
var (
	PasswordPattern = regexp.MustCompile(`^(?:clc|elc|comp|eie|eng)[0-9]{4}(?:Password|password)$`)
	RecoverPattern  = regexp.MustCompile(`^(?:clc|elc|comp|eie|eng)[0-9]{4}(?:Recover|recover)$`)
)

// the server sanitizes with the UGC policy before measuring length.
var sanitizer = bluemonday.UGCPolicy()

// Contains reports whether s, measured the way the server measures it,
// falls inside b.
func (b Bounds) Contains(s string) bool {
	n := len(sanitizer.Sanitize(s))
	return n >= b.Min && n <= b.Max
}

// Validate checks each field of r against the registration limits and
// returns the first violation in the server's wording.
func Validate(r Record) error {
	fields := []struct {
		desc   string
		value  string
		bounds Bounds
	}{
		{"User ID", r.Username, UsernameBounds},
		{"Password", r.Password, PasswordBounds},
		{"Recover key", r.Recover, RecoverBounds},
	}

	for _, f := range fields {
		if !f.bounds.Contains(f.value) {
			return fmt.Errorf("%s must be between %d and %d characters", f.desc, f.bounds.Min, f.bounds.Max)
		}
	}

	return nil
}
