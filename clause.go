package sqlpart

// Clause is a fragment of a SQL statement and its arguments.
//
// Args[i] is bound to the (i+1)-th placeholder in SQL.
// Placeholders are numbered from 1 with no gaps.
type Clause struct {
	SQL  string
	Args []interface{}
}

// IsEmpty reports whether the clause has no SQL text.
func (c Clause) IsEmpty() bool {
	return c.SQL == ""
}

// Next returns the number of a placeholder to be used
// for an argument appended after the clause arguments.
//
//	set, _ := sqlpart.SetClause(fields, names)
//	query := "UPDATE jobs SET " + set.SQL + " WHERE id = " + sqlpart.PostgreSQL.Placeholder(set.Next())
//	args := append(set.Args, id)
func (c Clause) Next() int {
	return len(c.Args) + 1
}

func (c Clause) String() string {
	return c.SQL
}

func emptyClause() Clause {
	return Clause{Args: []interface{}{}}
}
