package validation

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateField_Required(t *testing.T) {
	assert.Equal(t, []string{MsgRequired}, ValidateField("", Rule{Required: true}))
	assert.Equal(t, []string{MsgRequired}, ValidateField("   ", Rule{Required: true}))
	assert.Equal(t, []string{MsgRequired}, ValidateField(nil, Rule{Required: true}))
	assert.Empty(t, ValidateField("x", Rule{Required: true}))
}

func TestValidateField_EmptyNotRequired_SkipsEverything(t *testing.T) {
	calls := 0
	rule := Rule{
		MinLength: 3,
		Pattern:   regexp.MustCompile(`^\d+$`),
		Validator: Predicate(func(any) bool { calls++; return false }),
	}
	assert.Empty(t, ValidateField("", rule))
	assert.Equal(t, 0, calls)
}

func TestValidateField_Lengths(t *testing.T) {
	errs := ValidateField("ab", Rule{MinLength: 3})
	require.Len(t, errs, 1)
	assert.Equal(t, "must be at least 3 characters", errs[0])

	assert.Empty(t, ValidateField("abc", Rule{MinLength: 3, MaxLength: 5}))
	assert.Equal(t, []string{"must be at most 5 characters"}, ValidateField("abcdef", Rule{MinLength: 3, MaxLength: 5}))

	// trim antes de medir
	assert.Empty(t, ValidateField("  abc  ", Rule{MaxLength: 3}))
	// runas, no bytes
	assert.Empty(t, ValidateField("ñandú", Rule{MaxLength: 5}))
}

func TestValidateField_AccumulatesInOrder(t *testing.T) {
	rule := Rule{
		Required:  true,
		MinLength: 5,
		Pattern:   regexp.MustCompile(`^\d+$`),
		Validator: Message(func(any) string { return "nope" }),
	}
	assert.Equal(t, []string{"must be at least 5 characters", MsgInvalid, "nope"}, ValidateField("ab", rule))
}

func TestValidateField_CustomValidator(t *testing.T) {
	assert.Equal(t, []string{MsgCustomFailed}, ValidateField("x", Rule{Validator: Predicate(func(any) bool { return false })}))
	assert.Empty(t, ValidateField("x", Rule{Validator: Predicate(func(any) bool { return true })}))
	assert.Equal(t, []string{"too cold"}, ValidateField("x", Rule{Validator: func(any) (bool, string) { return false, "too cold" }}))
}

func TestValidateField_NonStringPassThrough(t *testing.T) {
	var got any
	ValidateField(4.5, Rule{Validator: Predicate(func(v any) bool { got = v; return true })})
	assert.Equal(t, 4.5, got)

	assert.Empty(t, ValidateField(12.0, Rule{Pattern: regexp.MustCompile(`^\d+$`)}))
	assert.Equal(t, []string{"must be at least 2 characters"}, ValidateField([]any{"a"}, Rule{MinLength: 2}))
	// un número no tiene longitud: min/max no aplican
	assert.Empty(t, ValidateField(1.0, Rule{MinLength: 3}))
}

func TestValidateForm_DottedPaths(t *testing.T) {
	schema := Schema{
		"name":        {Required: true},
		"owner.phone": {Required: true, Pattern: regexp.MustCompile(`^\d+$`)},
	}

	errs := ValidateForm(map[string]any{
		"name":  "Milo",
		"owner": map[string]any{"phone": "123"},
	}, schema)
	require.Len(t, errs, 2)
	assert.Empty(t, errs["owner.phone"])
	assert.True(t, errs.Valid())

	errs = ValidateForm(map[string]any{}, schema)
	assert.Equal(t, []string{MsgRequired}, errs["owner.phone"])
	assert.Equal(t, []string{MsgRequired}, errs["name"])
	assert.False(t, errs.Valid())
	assert.ElementsMatch(t, []string{"name", "owner.phone"}, errs.Fields())

	// intermedio que no es objeto
	errs = ValidateForm(map[string]any{"owner": "Ana"}, schema)
	assert.Equal(t, []string{MsgRequired}, errs["owner.phone"])

	// absent sin required => válido
	errs = ValidateForm(map[string]any{}, Schema{"owner.address": {MaxLength: 10}})
	assert.True(t, errs.Valid())
}

func TestValidateForm_TypedNestedMap(t *testing.T) {
	data := map[string]any{"owner": map[string]string{"phone": "x1"}}
	errs := ValidateForm(data, Schema{"owner.phone": {Pattern: regexp.MustCompile(`^\d+$`)}})
	assert.Equal(t, []string{MsgInvalid}, errs["owner.phone"])
}

func TestToForm(t *testing.T) {
	type owner struct {
		Phone string `json:"phone"`
	}
	type form struct {
		Name  string `json:"name"`
		Owner owner  `json:"owner"`
	}
	m, err := ToForm(form{Name: "Milo", Owner: owner{Phone: "555"}})
	require.NoError(t, err)
	assert.Equal(t, "555", Resolve(m, "owner.phone"))
}

func TestCommonValidators(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

	assert.Empty(t, ValidateField("2024-01-01", Rule{Validator: Date()}))
	assert.NotEmpty(t, ValidateField("01/01/2024", Rule{Validator: Date()}))
	assert.Equal(t, []string{"date cannot be in the future"}, ValidateField("2025-01-01", Rule{Validator: NotAfter(now)}))

	assert.Empty(t, ValidateField(2.5, Rule{Validator: Positive()}))
	assert.Empty(t, ValidateField("2.5", Rule{Validator: Positive()}))
	assert.Equal(t, []string{"must be greater than 0"}, ValidateField(0.0, Rule{Validator: Positive()}))
	assert.Equal(t, []string{"must be a number"}, ValidateField("abc", Rule{Validator: Positive()}))

	assert.Empty(t, ValidateField("kg", Rule{Validator: OneOf("g", "kg")}))
	assert.Equal(t, []string{"must be one of: g, kg"}, ValidateField("lb", Rule{Validator: OneOf("g", "kg")}))
}

func TestParseDateIn(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)

	d, err := ParseDateIn("2024-03-01", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), d)
	assert.True(t, d.Equal(time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC)))

	ts, err := ParseDateIn("2024-03-01T15:00:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, 15, ts.Hour())

	utc, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, utc.Location())

	_, err = ParseDateIn("01/03/2024", loc)
	assert.Error(t, err)
}
