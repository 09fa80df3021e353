package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-shop/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldTitle           = "title"
	FieldPrice           = "price"
	FieldDescription     = "description"
	FieldImage           = "image"
)

const (
	minPasswordLen = 5
	minTitleLen    = 3
	maxTitleLen    = 100
	minDescLen     = 5
	maxDescLen     = 400
)

// FormValidator validates signup, login and product forms.
type FormValidator struct{}

func NewFormValidator() Validator {
	return &FormValidator{}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupForm:
		return v.validateSignup(value, fields...)
	case *models.SignupForm:
		return v.validateSignup(*value, fields...)

	case models.LoginForm:
		return v.validateLogin(value, fields...)
	case *models.LoginForm:
		return v.validateLogin(*value, fields...)

	case models.ProductForm:
		return v.validateProduct(value, fields...)
	case *models.ProductForm:
		return v.validateProduct(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateSignup(form models.SignupForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(form.Name) == "" {
				return ErrInvalidName
			}
		case FieldEmail:
			if !isEmail(form.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(form.Password) < minPasswordLen {
				return ErrPasswordTooShort
			}
		case FieldConfirmPassword:
			if form.Password != form.ConfirmPassword {
				return ErrPasswordMismatch
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *FormValidator) validateLogin(form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(form.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if form.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *FormValidator) validateProduct(form models.ProductForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPrice, FieldDescription, FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			n := utf8.RuneCountInString(strings.TrimSpace(form.Title))
			if n < minTitleLen || n > maxTitleLen {
				return ErrInvalidTitle
			}
		case FieldPrice:
			if form.Price <= 0 {
				return ErrInvalidPrice
			}
		case FieldDescription:
			n := utf8.RuneCountInString(strings.TrimSpace(form.Description))
			if n < minDescLen || n > maxDescLen {
				return ErrInvalidDesc
			}
		case FieldImage:
			if form.ImagePath == "" {
				return ErrMissingImage
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && addr.Name == ""
}

// ParsePrice converts a decimal amount such as "19.99" or "5" to cents.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return 0, ErrInvalidPrice
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, ErrInvalidPrice
	}

	var cents int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, ErrInvalidPrice
		}
	}

	return units*100 + cents, nil
}
