package renderer

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-layout/pkg/model"
)

var (
	// ErrUnknownFieldType is matched by *UnknownFieldTypeError.
	ErrUnknownFieldType = errors.New("renderer: unknown field type")
	// ErrNotConfigured is returned when Render runs before Configure.
	ErrNotConfigured = errors.New("renderer: not configured")
	// ErrAttributeNotApplicable flags an option the resolved input type cannot
	// carry, e.g. minvalue on a text input.
	ErrAttributeNotApplicable = errors.New("renderer: attribute not applicable")
	// ErrConflictingBehaviour flags two behaviour rules of the same kind
	// targeting one field.
	ErrConflictingBehaviour = errors.New("renderer: conflicting behaviour rules")
	// ErrInvalidBehaviour flags a behaviour rule that declares no effect.
	ErrInvalidBehaviour = errors.New("renderer: invalid behaviour rule")
	// ErrDefaultOutOfRange flags a datetime default hour or minute outside
	// its clock range.
	ErrDefaultOutOfRange = errors.New("renderer: default out of range")
	// ErrMissingOption flags a required field option that was not supplied.
	ErrMissingOption = errors.New("renderer: missing option")
	// ErrInvalidValue flags a bound value the renderer cannot interpret.
	ErrInvalidValue = errors.New("renderer: invalid value")
)

// UnknownFieldTypeError reports a field type with no registered renderer.
type UnknownFieldTypeError struct {
	Type  model.FieldType
	Field string
}

func (e *UnknownFieldTypeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("renderer: unknown field type %q", e.Type)
	}
	return fmt.Sprintf("renderer: unknown field type %q for field %q", e.Type, e.Field)
}

// Is lets errors.Is match ErrUnknownFieldType.
func (e *UnknownFieldTypeError) Is(target error) bool {
	return target == ErrUnknownFieldType
}
