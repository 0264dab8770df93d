package schema

// Kind names the declared type of a Field. The converter maps kinds to
// OpenAPI type/format pairs; custom kinds fall back through Field.Inherits
// before being reported as unmapped.
type Kind string

const (
	// KindRaw carries an arbitrary value and maps to no type at all.
	KindRaw Kind = "raw"

	KindString   Kind = "string"
	KindInteger  Kind = "integer"
	KindNumber   Kind = "number"
	KindDecimal  Kind = "decimal"
	KindBoolean  Kind = "boolean"
	KindUUID     Kind = "uuid"
	KindDateTime Kind = "datetime"
	KindDate     Kind = "date"
	KindTime     Kind = "time"
	KindDuration Kind = "duration"
	KindEmail    Kind = "email"
	KindURL      Kind = "url"

	// Container kinds. List and Enum carry an inner field, Map an optional
	// value field, Nested and Pluck a target definition.
	KindList   Kind = "list"
	KindMap    Kind = "map"
	KindNested Kind = "nested"
	KindPluck  Kind = "pluck"
	KindEnum   Kind = "enum"
)

// IsContainer reports whether fields of this kind wrap another field or a
// named definition.
func (k Kind) IsContainer() bool {
	switch k {
	case KindList, KindMap, KindNested, KindPluck, KindEnum:
		return true
	}
	return false
}
