package listing

import (
	"testing"
	"time"
)

type row struct {
	ID    string
	Name  string
	Desc  string
	Score *int
	When  time.Time
}

func intPtr(v int) *int { return &v }

func getRow(r row, field string) (any, bool) {
	switch field {
	case "id":
		return r.ID, r.ID != ""
	case "name":
		return r.Name, r.Name != ""
	case "desc":
		return r.Desc, r.Desc != ""
	case "score":
		if r.Score == nil {
			return nil, false
		}
		return *r.Score, true
	case "when":
		return r.When, !r.When.IsZero()
	default:
		return nil, false
	}
}

func ids(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func makeRows(t *testing.T, n int) []row {
	t.Helper()
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{ID: string(rune('a' + i)), Score: intPtr(n - i)}
	}
	return rows
}
