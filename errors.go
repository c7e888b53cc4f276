package limits

import "errors"

var (
	// ErrDuplicateName is returned by Register when the name is already taken.
	// The registry is left untouched.
	ErrDuplicateName = errors.New("limit already registered")
	// ErrNilLimit is returned when a nil *Limit is evaluated.
	ErrNilLimit = errors.New("nil limit")
)

// IsDuplicate reports whether err comes from a rejected duplicate registration.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}
