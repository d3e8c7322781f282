package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/auditline/auditline/internal/domain/schema"
)

func ptr[T any](v T) *T { return &v }

func TestField_EffectiveWeight(t *testing.T) {
	require.Equal(t, 1.0, schema.Field{}.EffectiveWeight())
	require.Equal(t, 2.5, schema.Field{Weight: ptr(2.5)}.EffectiveWeight())
	require.Equal(t, 0.0, schema.Field{Weight: ptr(0.0)}.EffectiveWeight())
}

func TestField_Scale(t *testing.T) {
	require.Equal(t, 10.0, schema.Field{Type: schema.FieldNumber}.Scale())
	require.Equal(t, 10.0, schema.Field{Type: schema.FieldRating}.Scale())
	require.Equal(t, 5.0, schema.Field{Type: schema.FieldNumber, MaxValue: ptr(5.0)}.Scale())
	require.Equal(t, 1.0, schema.Field{Type: schema.FieldCheckbox}.Scale())
	require.Equal(t, 1.0, schema.Field{Type: schema.FieldSelect, MaxValue: ptr(5.0)}.Scale())
	require.Equal(t, 1.0, schema.Field{Type: schema.FieldText}.Scale())
}

func TestField_Min(t *testing.T) {
	require.Equal(t, 0.0, schema.Field{}.Min())
	require.Equal(t, 5.0, schema.Field{MinValue: ptr(5.0)}.Min())
}

func TestSchema_FieldByID(t *testing.T) {
	sc := schema.Default("default")

	f, ok := sc.FieldByID("script_adherence")
	require.True(t, ok)
	require.True(t, f.Critical)

	_, ok = sc.FieldByID("nonexistent")
	require.False(t, ok)
}

func TestDefault_IsValid(t *testing.T) {
	sc := schema.Default("default")
	require.NoError(t, sc.Validate())
	require.Equal(t, "default", sc.ID)
	require.Equal(t, 70.0, sc.PassingScore)
	require.True(t, sc.IsActive)
}

func TestValidate_RejectsBadSchemas(t *testing.T) {
	cases := []struct {
		name string
		sc   schema.Schema
	}{
		{"missing id", schema.Schema{Name: "n", Fields: []schema.Field{{ID: "a", Type: schema.FieldText}}}},
		{"no fields", schema.Schema{ID: "s", Name: "n"}},
		{"unknown type", schema.Schema{ID: "s", Name: "n", Fields: []schema.Field{{ID: "a", Type: "slider"}}}},
		{"duplicate field", schema.Schema{ID: "s", Name: "n", Fields: []schema.Field{
			{ID: "a", Type: schema.FieldText},
			{ID: "a", Type: schema.FieldText},
		}}},
		{"negative weight", schema.Schema{ID: "s", Name: "n", Fields: []schema.Field{
			{ID: "a", Type: schema.FieldRating, Weight: ptr(-1.0)},
		}}},
		{"min above max", schema.Schema{ID: "s", Name: "n", Fields: []schema.Field{
			{ID: "a", Type: schema.FieldNumber, MinValue: ptr(9.0), MaxValue: ptr(5.0)},
		}}},
		{"passing score out of range", schema.Schema{ID: "s", Name: "n", PassingScore: 120, Fields: []schema.Field{
			{ID: "a", Type: schema.FieldText},
		}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.sc.Validate(), schema.ErrInvalidSchema)
		})
	}
}
