package product

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field length bounds enforced by the product API.
const (
	IDMinLen          = 3
	IDMaxLen          = 10
	NameMinLen        = 5
	NameMaxLen        = 100
	DescriptionMinLen = 10
	DescriptionMaxLen = 200
)

// idPattern restricts identifiers to letters, digits and hyphens.
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// ErrInvalidProduct wraps every validation failure returned by Validate.
var ErrInvalidProduct = errors.New("invalid product")

// FieldError describes one violated field constraint.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateID checks the identifier format only. Uniqueness is decided by the API.
func ValidateID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return &FieldError{Field: FieldID, Message: "is required"}
	case !idPattern.MatchString(id):
		return &FieldError{Field: FieldID, Message: "may only contain letters, digits and '-'"}
	}
	return checkLength(FieldID, id, IDMinLen, IDMaxLen)
}

// Validate checks every field of p and returns all violations joined
// together, wrapped in ErrInvalidProduct. It returns nil for a valid product.
func Validate(p Product) error {
	var errs []error

	if err := ValidateID(p.ID); err != nil {
		errs = append(errs, err)
	}
	if err := checkLength(FieldName, p.Name, NameMinLen, NameMaxLen); err != nil {
		errs = append(errs, err)
	}
	if err := checkLength(FieldDescription, p.Description, DescriptionMinLen, DescriptionMaxLen); err != nil {
		errs = append(errs, err)
	}
	if err := checkLogo(p.Logo); err != nil {
		errs = append(errs, err)
	}
	if p.DateRelease.IsZero() {
		errs = append(errs, &FieldError{Field: FieldDateRelease, Message: "is required"})
	}
	switch {
	case p.DateRevision.IsZero():
		errs = append(errs, &FieldError{Field: FieldDateRevision, Message: "is required"})
	case !p.DateRelease.IsZero() && p.DateRevision.Before(p.DateRelease):
		errs = append(errs, &FieldError{Field: FieldDateRevision, Message: "must not be before date_release"})
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidProduct, errors.Join(errs...))
}

func checkLength(field, value string, lo, hi int) error {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	if n == 0 {
		return &FieldError{Field: field, Message: "is required"}
	}
	if n < lo || n > hi {
		return &FieldError{Field: field, Message: fmt.Sprintf("must be %d to %d characters", lo, hi)}
	}
	return nil
}

func checkLogo(logo string) error {
	logo = strings.TrimSpace(logo)
	if logo == "" {
		return &FieldError{Field: FieldLogo, Message: "is required"}
	}
	if _, err := url.Parse(logo); err != nil {
		return &FieldError{Field: FieldLogo, Message: "must be a valid URI reference"}
	}
	return nil
}
