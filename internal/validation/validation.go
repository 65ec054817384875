package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Mensajes estándar. Los formularios los muestran tal cual.
const (
	MsgRequired     = "this field is required"
	MsgInvalid      = "invalid format"
	MsgCustomFailed = "custom validation failed"
)

// Validator es un predicado custom.
// ok=true => válido. ok=false con message vacío => mensaje genérico; con message => se usa verbatim.
type Validator func(value any) (ok bool, message string)

// Rule es la regla declarativa de un campo. Todo es opcional.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Validator Validator
}

// Schema mapea key de campo (o path con puntos, ej "owner.phone") a su regla.
type Schema map[string]Rule

// Errors mapea cada key del schema a su lista de errores (vacía = válido).
type Errors map[string][]string

// Valid es el "OR de todos" que hacía useForm.validate().
func (e Errors) Valid() bool {
	for _, errs := range e {
		if len(errs) > 0 {
			return false
		}
	}
	return true
}

// Fields devuelve sólo las keys con errores.
func (e Errors) Fields() []string {
	out := make([]string, 0)
	for k, errs := range e {
		if len(errs) > 0 {
			out = append(out, k)
		}
	}
	return out
}

// Predicate adapta un bool simple a Validator (false => mensaje genérico).
func Predicate(fn func(value any) bool) Validator {
	return func(value any) (bool, string) {
		return fn(value), ""
	}
}

// Message adapta una función que devuelve "" si es válido o el mensaje de error.
func Message(fn func(value any) string) Validator {
	return func(value any) (bool, string) {
		msg := fn(value)
		return msg == "", msg
	}
}

// ValidateField evalúa value contra rule y devuelve los errores en orden.
func ValidateField(value any, rule Rule) []string {
	errs := make([]string, 0)

	v := normalize(value)
	if isEmpty(v) {
		if rule.Required {
			errs = append(errs, MsgRequired)
		}
		return errs
	}

	// Desde acá no se corta: se acumulan todos los fallos.
	if rule.MinLength > 0 {
		if n, ok := length(v); ok && n < rule.MinLength {
			errs = append(errs, fmt.Sprintf("must be at least %d characters", rule.MinLength))
		}
	}
	if rule.MaxLength > 0 {
		if n, ok := length(v); ok && n > rule.MaxLength {
			errs = append(errs, fmt.Sprintf("must be at most %d characters", rule.MaxLength))
		}
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(asText(v)) {
		errs = append(errs, MsgInvalid)
	}
	if rule.Validator != nil {
		ok, msg := rule.Validator(v)
		if !ok {
			if strings.TrimSpace(msg) == "" {
				msg = MsgCustomFailed
			}
			errs = append(errs, msg)
		}
	}

	return errs
}

// ValidateForm aplica cada regla del schema a su valor resuelto en data.
// Cada key del schema produce exactamente una entrada en el resultado.
func ValidateForm(data map[string]any, schema Schema) Errors {
	out := make(Errors, len(schema))
	for key, rule := range schema {
		out[key] = ValidateField(Resolve(data, key), rule)
	}
	return out
}

// Resolve camina data por cada segmento del path. Intermedios faltantes => nil.
func Resolve(data map[string]any, path string) any {
	var cur any = data
	for _, seg := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil
		}
		cur, ok = m[seg]
		if !ok {
			return nil
		}
	}
	return cur
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func normalize(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case *string:
		if t == nil {
			return ""
		}
		return strings.TrimSpace(*t)
	default:
		return v
	}
}

func isEmpty(v any) bool {
	s, ok := v.(string)
	return ok && s == ""
}

func length(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

func asText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
