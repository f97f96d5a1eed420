// Package work defines the core domain types for citable works: the
// validated work record, its contributor roster, and the work-type and
// medium tags.
package work

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the kind of work being cited.
type Type string

// Known work types. "essay" is accepted as an alias for chapter.
const (
	TypeBook      Type = "book"
	TypeChapter   Type = "chapter"
	TypeJournal   Type = "journal"
	TypeMagazine  Type = "magazine"
	TypeNewspaper Type = "newspaper"
	TypeWebsite   Type = "website"
)

// Medium identifies the distribution channel a work was consulted
// through. It selects which block of medium-specific fields applies.
type Medium string

const (
	MediumPrint    Medium = "print"
	MediumWebsite  Medium = "website"
	MediumDatabase Medium = "db"
	MediumEbook    Medium = "ebook"
)

// typeAliases maps lowercased type tags to canonical types.
var typeAliases = map[string]Type{
	"book":      TypeBook,
	"chapter":   TypeChapter,
	"essay":     TypeChapter,
	"journal":   TypeJournal,
	"magazine":  TypeMagazine,
	"newspaper": TypeNewspaper,
	"website":   TypeWebsite,
}

// requiredFields must be present and non-nil in every raw record.
var requiredFields = []string{"title"}

// Work is an immutable, validated view over a raw citation record.
// Field access is total: probing an unset field yields a zero value,
// never an error, so style formatters can consult optional fields
// freely.
type Work struct {
	typ          Type
	fields       map[string]any
	contributors []Contributor
}

// New validates a raw record and returns a Work. It fails with
// *UnknownWorkTypeError when the type tag does not resolve to a known
// work type, and with *MissingRequiredFieldsError (listing every
// missing field) when a required field is absent or nil.
func New(raw map[string]any) (*Work, error) {
	typeTag, _ := raw["type"].(string)
	typ, ok := typeAliases[strings.ToLower(typeTag)]
	if !ok {
		return nil, &UnknownWorkTypeError{TypeTag: typeTag}
	}

	var missing []string
	for _, field := range requiredFields {
		if v, ok := raw[field]; !ok || v == nil {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingRequiredFieldsError{Fields: missing}
	}

	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		fields[k] = v
	}

	return &Work{
		typ:          typ,
		fields:       fields,
		contributors: parseContributors(raw),
	}, nil
}

// Type returns the resolved work type.
func (w *Work) Type() Type {
	return w.typ
}

// Contributors returns the contributor roster in input order.
func (w *Work) Contributors() []Contributor {
	return w.contributors
}

// Has reports whether a field is present and non-nil.
func (w *Work) Has(key string) bool {
	v, ok := w.fields[key]
	return ok && v != nil
}

// Str returns a field as a string, coercing numeric values to their
// decimal form. Unset fields yield "".
func (w *Work) Str(key string) string {
	return coerceString(w.fields[key])
}

// Bool returns a field's truthiness: false for unset fields, false
// booleans, zero numbers, and the strings "" and "0".
func (w *Work) Bool(key string) bool {
	switch v := w.fields[key].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}

// coerceString renders a raw scalar as a string. Integral floats (the
// usual shape of JSON numbers) drop their fractional part.
func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
