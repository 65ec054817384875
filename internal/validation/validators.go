package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout es el formato de fecha que usan los formularios.
const DateLayout = "2006-01-02"

// ParseDate acepta YYYY-MM-DD (medianoche UTC) o RFC3339.
func ParseDate(s string) (time.Time, error) {
	return ParseDateIn(s, time.UTC)
}

// ParseDateIn interpreta YYYY-MM-DD como medianoche en loc; RFC3339 trae su propia zona.
func ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Date valida que el valor sea una fecha parseable.
func Date() Validator {
	return Message(func(v any) string {
		s, ok := v.(string)
		if !ok {
			return "must be a date (YYYY-MM-DD)"
		}
		if _, err := ParseDate(s); err != nil {
			return "must be a date (YYYY-MM-DD)"
		}
		return ""
	})
}

// NotAfter valida una fecha que no sea posterior a now() (ej: fecha de nacimiento).
func NotAfter(now func() time.Time) Validator {
	return Message(func(v any) string {
		s, _ := v.(string)
		t, err := ParseDate(s)
		if err != nil {
			return "must be a date (YYYY-MM-DD)"
		}
		if t.After(now()) {
			return "date cannot be in the future"
		}
		return ""
	})
}

// Positive valida un número > 0. Acepta números JSON y strings numéricos (inputs de CLI).
func Positive() Validator {
	return Message(func(v any) string {
		n, ok := Number(v)
		if !ok {
			return "must be a number"
		}
		if n <= 0 {
			return "must be greater than 0"
		}
		return ""
	})
}

// OneOf valida contra un conjunto cerrado de valores.
func OneOf(allowed ...string) Validator {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return Message(func(v any) string {
		if _, ok := set[fmt.Sprint(v)]; !ok {
			return "must be one of: " + strings.Join(allowed, ", ")
		}
		return ""
	})
}

// Number convierte los tipos numéricos habituales a float64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ToForm convierte un struct (o cualquier valor JSON-serializable) al payload genérico
// que consume ValidateForm.
func ToForm(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("validation: marshal form: %w", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("validation: unmarshal form: %w", err)
	}
	return out, nil
}
