package product

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		ID:           "trj-crd",
		Name:         "Tarjeta de credito",
		Description:  "Tarjeta de consumo bajo la modalidad de credito",
		Logo:         "https://example.com/logo.png",
		DateRelease:  MustParseDate("2025-01-01"),
		DateRevision: MustParseDate("2026-01-01"),
	}
}

func TestValue(t *testing.T) {
	p := validProduct()

	v, ok := Value(p, FieldName)
	assert.True(t, ok)
	assert.Equal(t, "Tarjeta de credito", v)

	v, ok = Value(p, FieldDateRelease)
	assert.True(t, ok)
	assert.Equal(t, MustParseDate("2025-01-01"), v)

	_, ok = Value(Product{}, FieldDescription)
	assert.False(t, ok, "empty string is absent")

	_, ok = Value(Product{}, FieldDateRevision)
	assert.False(t, ok, "zero date is absent")

	_, ok = Value(p, "unknown")
	assert.False(t, ok)
}

func TestIsSortField(t *testing.T) {
	for _, f := range SortFields {
		assert.True(t, IsSortField(f), f)
	}
	assert.False(t, IsSortField("price"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(p *Product)
		wantFields []string
	}{
		{name: "valid", mutate: func(*Product) {}},
		{name: "missing id", mutate: func(p *Product) { p.ID = "" }, wantFields: []string{FieldID}},
		{name: "id bad chars", mutate: func(p *Product) { p.ID = "ab_c" }, wantFields: []string{FieldID}},
		{name: "padded id", mutate: func(p *Product) { p.ID = " abc " }, wantFields: []string{FieldID}},
		{name: "id too long", mutate: func(p *Product) { p.ID = "abcdefghijk" }, wantFields: []string{FieldID}},
		{name: "short name", mutate: func(p *Product) { p.Name = "abc" }, wantFields: []string{FieldName}},
		{
			name:       "long description",
			mutate:     func(p *Product) { p.Description = strings.Repeat("x", DescriptionMaxLen+1) },
			wantFields: []string{FieldDescription},
		},
		{name: "missing logo", mutate: func(p *Product) { p.Logo = "" }, wantFields: []string{FieldLogo}},
		{
			name:       "revision before release",
			mutate:     func(p *Product) { p.DateRevision = MustParseDate("2024-12-31") },
			wantFields: []string{FieldDateRevision},
		},
		{
			name: "several",
			mutate: func(p *Product) {
				p.Name = ""
				p.DateRelease = Date{}
				p.DateRevision = Date{}
			},
			wantFields: []string{FieldName, FieldDateRelease, FieldDateRevision},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)

			err := Validate(p)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidProduct)
			for _, field := range tt.wantFields {
				assert.Contains(t, err.Error(), field+":")
			}
			var fe *FieldError
			assert.True(t, errors.As(err, &fe))
		})
	}
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, IDs([]Product{{ID: "a"}, {ID: "b"}}))
	assert.Empty(t, IDs(nil))
}
