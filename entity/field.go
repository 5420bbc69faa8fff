package entity

// Field describes a listing field discovered from the remote schema.
type Field struct {
	Name string
	Type string // json kind of the sampled value: string, number, bool, null, object, array
}

// FieldNames returns the names of fields in order.
func FieldNames(fields []Field) []string {
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name
	}
	return names
}
