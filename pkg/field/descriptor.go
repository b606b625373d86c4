package field

// Type identifies the declared kind of a table column.
type Type string

const (
	TypeText             Type = "Text"
	TypeSingleText       Type = "SingleText"
	TypeEmail            Type = "Email"
	TypeURL              Type = "URL"
	TypePhone            Type = "Phone"
	TypeNumber           Type = "Number"
	TypeCurrency         Type = "Currency"
	TypePercent          Type = "Percent"
	TypeRating           Type = "Rating"
	TypeCheckbox         Type = "Checkbox"
	TypeDateTime         Type = "DateTime"
	TypeSingleSelect     Type = "SingleSelect"
	TypeMultiSelect      Type = "MultiSelect"
	TypeAutoNumber       Type = "AutoNumber"
	TypeFormula          Type = "Formula"
	TypeLookUp           Type = "LookUp"
	TypeCreatedTime      Type = "CreatedTime"
	TypeLastModifiedTime Type = "LastModifiedTime"
	TypeCreatedBy        Type = "CreatedBy"
	TypeLastModifiedBy   Type = "LastModifiedBy"
)

// DefaultRatingMax is used when a Rating descriptor does not set Property.Max.
const DefaultRatingMax = 5

// Descriptor describes a single column. It is owned by the caller and treated
// as read-only by validators.
type Descriptor struct {
	ID       string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string   `json:"name" yaml:"name"`
	Type     Type     `json:"type" yaml:"type"`
	Property Property `json:"property,omitzero" yaml:"property,omitempty"`
}

// Key returns the name used to address the field in error output.
// Falls back to the ID for descriptors without a display name.
func (d Descriptor) Key() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// Property holds type-specific configuration. Only the members relevant to the
// descriptor's Type are consulted.
type Property struct {
	Precision int            `json:"precision,omitempty" yaml:"precision,omitempty"`
	Symbol    string         `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Max       int            `json:"max,omitempty" yaml:"max,omitempty"`
	Options   []SelectOption `json:"options,omitempty" yaml:"options,omitempty"`
}

// SelectOption is one choice of a select field.
type SelectOption struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
}

// Extra carries auxiliary key/value pairs threaded into error construction,
// typically for message interpolation. It is never modified.
type Extra map[string]string
