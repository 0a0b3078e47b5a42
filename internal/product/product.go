package product

// Field names double as the JSON keys of the wire format.
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldLogo         = "logo"
	FieldDateRelease  = "date_release"
	FieldDateRevision = "date_revision"
)

// SearchFields are the fields matched by the list search box.
//
//nolint:gochecknoglobals // Read-only lookup table.
var SearchFields = []string{FieldName, FieldDescription}

// SortFields are the fields a product list can be ordered by, in column order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var SortFields = []string{
	FieldLogo,
	FieldName,
	FieldDescription,
	FieldDateRelease,
	FieldDateRevision,
	FieldID,
}

// Product is a financial product record.
type Product struct {
	ID           string `json:"id"            yaml:"id"`
	Name         string `json:"name"          yaml:"name"`
	Description  string `json:"description"   yaml:"description"`
	Logo         string `json:"logo"          yaml:"logo"`
	DateRelease  Date   `json:"date_release"  yaml:"date_release"`
	DateRevision Date   `json:"date_revision" yaml:"date_revision"`
}

// Value returns the named field of p and whether it holds a value.
// Empty strings, zero dates and unknown field names are reported as absent.
func Value(p Product, field string) (any, bool) {
	switch field {
	case FieldID:
		return p.ID, p.ID != ""
	case FieldName:
		return p.Name, p.Name != ""
	case FieldDescription:
		return p.Description, p.Description != ""
	case FieldLogo:
		return p.Logo, p.Logo != ""
	case FieldDateRelease:
		return p.DateRelease, !p.DateRelease.IsZero()
	case FieldDateRevision:
		return p.DateRevision, !p.DateRevision.IsZero()
	default:
		return nil, false
	}
}

// IsSortField reports whether field is one of SortFields.
func IsSortField(field string) bool {
	for _, f := range SortFields {
		if f == field {
			return true
		}
	}
	return false
}

// IDs returns the identifiers of items in order.
func IDs(items []Product) []string {
	ids := make([]string, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	return ids
}
