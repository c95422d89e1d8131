package sqlpart

// Field is a column assignment of a partial update.
type Field struct {
	Name  string
	Value Value
}

// Fields is an ordered list of changed fields.
// The order defines placeholder numbers in a SET clause.
type Fields []Field

// Get returns the value of a named field.
func (fs Fields) Get(name string) (Value, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Names returns field names in order.
func (fs Fields) Names() []string {
	names := make([]string, len(fs))
	for n, f := range fs {
		names[n] = f.Name
	}
	return names
}

// Restrict returns an UnsupportedFieldError for the first field
// which is not in the allowed list.
func (fs Fields) Restrict(allowed ...string) error {
next:
	for _, f := range fs {
		for _, name := range allowed {
			if f.Name == name {
				continue next
			}
		}
		return &UnsupportedFieldError{Name: f.Name}
	}
	return nil
}

// Columns maps logical field names to column names.
// Names missing from the map are used as column names as is.
type Columns map[string]string

// Column returns a column name for a field.
func (c Columns) Column(name string) string {
	if col, ok := c[name]; ok && col != "" {
		return col
	}
	return name
}
