package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName      = errors.New("please enter a name")
	ErrInvalidEmail     = errors.New("please enter a valid email")
	ErrPasswordTooShort = errors.New("password must be at least 5 characters long")
	ErrPasswordMismatch = errors.New("passwords have to match")
	ErrEmptyPassword    = errors.New("please enter a password")
	ErrInvalidTitle     = errors.New("title must be between 3 and 100 characters")
	ErrInvalidPrice     = errors.New("please enter a valid price")
	ErrInvalidDesc      = errors.New("description must be between 5 and 400 characters")
	ErrMissingImage     = errors.New("attached file is not an image")
)

var userFacing = []error{
	ErrInvalidName,
	ErrInvalidEmail,
	ErrPasswordTooShort,
	ErrPasswordMismatch,
	ErrEmptyPassword,
	ErrInvalidTitle,
	ErrInvalidPrice,
	ErrInvalidDesc,
	ErrMissingImage,
}

// UserMessage returns the text of the first form validation error found in
// err's chain. The text is safe to show to the user.
func UserMessage(err error) (string, bool) {
	for _, target := range userFacing {
		if errors.Is(err, target) {
			return target.Error(), true
		}
	}
	return "", false
}
