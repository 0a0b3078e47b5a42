package product

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "plain date", input: "2025-03-15", want: NewDate(2025, time.March, 15)},
		{name: "rfc3339", input: "2025-03-15T00:00:00.000Z", want: NewDate(2025, time.March, 15)},
		{name: "offset timestamp", input: "2025-03-15T22:00:00-05:00", want: NewDate(2025, time.March, 16)},
		{name: "empty", input: "  ", want: Date{}},
		{name: "garbage", input: "15/03/2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_JSON(t *testing.T) {
	p := Product{ID: "abc", DateRelease: MustParseDate("2025-01-01")}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date_release":"2025-01-01"`)
	assert.Contains(t, string(data), `"date_revision":null`)

	var decoded Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"abc","date_release":"2025-01-01T00:00:00.000Z","date_revision":null}`), &decoded))
	assert.Equal(t, "2025-01-01", decoded.DateRelease.String())
	assert.True(t, decoded.DateRevision.IsZero())

	err = json.Unmarshal([]byte(`{"date_release":12}`), &decoded)
	assert.Error(t, err)
}

func TestDate_YAML(t *testing.T) {
	input := []byte("id: abc\ndate_release: 2025-01-01\ndate_revision: \"2026-01-01\"\n")

	var p Product
	require.NoError(t, yaml.Unmarshal(input, &p))
	assert.Equal(t, "2025-01-01", p.DateRelease.String())
	assert.Equal(t, "2026-01-01", p.DateRevision.String())

	out, err := yaml.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), "2025-01-01")
}

func TestDate_AddYearsAndCompare(t *testing.T) {
	d := MustParseDate("2024-02-10")
	next := d.AddYears(1)

	assert.Equal(t, "2025-02-10", next.String())
	assert.Equal(t, -1, d.Compare(next))
	assert.True(t, d.Before(next))
	assert.True(t, Date{}.AddYears(1).IsZero())
}
