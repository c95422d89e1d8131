package sqlpart

import (
	"github.com/valyala/bytebufferpool"
)

/*
SetClause builds a SET clause of an UPDATE statement using the PostgreSQL dialect.

	set, err := sqlpart.SetClause(sqlpart.Fields{
		{Name: "firstName", Value: sqlpart.Text("Ann")},
		{Name: "email", Value: sqlpart.Text("ann@example.com")},
	}, sqlpart.Columns{"firstName": "first_name"})

produces

	"first_name"=$1, "email"=$2

with set.Args holding "Ann" and "ann@example.com".
*/
func SetClause(fields Fields, names Columns) (Clause, error) {
	return defaultDialect.SetClause(fields, names)
}

/*
SetClause builds a SET clause of an UPDATE statement.

Fields are numbered in the order they are listed. A field name is translated
to a column name with names, falling back to the field name itself. Column
names are always quoted, values are only passed as arguments.

SetClause returns ErrNoUpdatableFields if fields is empty
and a DuplicateFieldError if two fields refer to the same column.
*/
func (d *Dialect) SetClause(fields Fields, names Columns) (Clause, error) {
	if len(fields) == 0 {
		return Clause{}, ErrNoUpdatableFields
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	columns := make([]string, len(fields))
	args := make([]interface{}, len(fields))
	for n, f := range fields {
		col := names.Column(f.Name)
		for _, prev := range columns[:n] {
			if prev == col {
				return Clause{}, &DuplicateFieldError{Name: f.Name}
			}
		}
		columns[n] = col

		if n > 0 {
			buf.WriteString(", ")
		}
		writeIdent(buf, col)
		buf.WriteByte('=')
		buf.B = d.appendPlaceholder(buf.B, n+1)
		args[n] = f.Value.Arg()
	}

	return Clause{SQL: buf.String(), Args: args}, nil
}
