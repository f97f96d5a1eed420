package work

import (
	"fmt"
	"strings"
)

// UnknownWorkTypeError is returned when a record's type tag does not
// resolve to a known work type.
type UnknownWorkTypeError struct {
	TypeTag string
}

func (e *UnknownWorkTypeError) Error() string {
	return fmt.Sprintf("unknown work type %q", e.TypeTag)
}

// MissingRequiredFieldsError is returned at construction when required
// fields are absent. It carries every missing field name, not just the
// first found.
type MissingRequiredFieldsError struct {
	Fields []string
}

func (e *MissingRequiredFieldsError) Error() string {
	return fmt.Sprintf("work is missing required field(s): %s", strings.Join(e.Fields, ","))
}
