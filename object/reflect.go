package object

import (
	"context"
	"reflect"
	"strings"
	"unicode"

	metaruntime "github.com/objkit/meta-runtime"
	"github.com/objkit/meta-runtime/errors"
)

// methodShape is the exact signature a struct method must have to be
// harvested into a slot.
type methodShape = func(ctx context.Context, self metaruntime.Composable, args ...any) (any, error)

// FromStruct builds a metaobject from a Go struct value. Every exported
// method matching the Method signature
//
//	func (recv) Name(ctx context.Context, self metaruntime.Composable, args ...any) (any, error)
//
// becomes a method slot; the slot name is the method name converted to
// kebab-case (Inc -> "inc", ResetAll -> "reset-all"). Exported methods with
// any other signature are skipped. The object's diagnostic name is the
// kebab-cased struct type name.
//
// The harvested slots close over the struct value, so a provider built this
// way keeps its behavior in Go code while its mutable state lives in the
// composable's data fields.
func FromStruct(v any) (*Object, error) {
	if v == nil {
		return nil, errors.InvalidArgument(errors.PhaseCompose, "source value is nil")
	}

	rv := reflect.ValueOf(v)
	rt := rv.Type()

	base := rt
	if base.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, errors.InvalidArgument(errors.PhaseCompose, "source value is a nil pointer")
		}
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		return nil, errors.New(errors.PhaseCompose, errors.KindInvalidArgument).
			Detail("source must be a struct or pointer to struct, got %s", rt.Kind()).
			Build()
	}

	obj := NewNamed(toKebabCase(base.Name()))

	for i := 0; i < rt.NumMethod(); i++ {
		method := rt.Method(i)
		if !method.IsExported() {
			continue
		}

		fn, ok := rv.Method(i).Interface().(methodShape)
		if !ok {
			continue
		}

		obj.SetMethod(toKebabCase(method.Name), metaruntime.Method(fn))
	}

	return obj, nil
}

// toKebabCase converts PascalCase to kebab-case.
// Handles acronyms: GetHTTPCode -> get-http-code
func toKebabCase(s string) string {
	if len(s) == 0 {
		return ""
	}

	runes := []rune(s)
	var result strings.Builder

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if unicode.IsUpper(r) {
			acronymEnd := i + 1
			for acronymEnd < len(runes) && unicode.IsUpper(runes[acronymEnd]) {
				acronymEnd++
			}

			if acronymEnd > i+1 {
				// Last uppercase before lowercase starts next word, not part of acronym
				if acronymEnd < len(runes) && unicode.IsLower(runes[acronymEnd]) {
					acronymEnd--
				}
			}

			if i > 0 {
				result.WriteByte('-')
			}

			for j := i; j < acronymEnd; j++ {
				result.WriteRune(unicode.ToLower(runes[j]))
			}
			i = acronymEnd - 1 // -1 because loop will increment
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
