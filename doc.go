// Package sqlpart builds parameterized SQL fragments from sparse input.
/*

SQL Fragment Builder

sqlpart provides a way to:
- Turn an ordered set of changed fields into a SET clause for a partial update,
- Turn a sparse filter into a WHERE clause of AND-ed predicates,
- Number positional placeholders for PostgreSQL ($1, $2, etc) or SQLite (?1, ?2, etc).

Values never end up in SQL text. Every fragment comes back as a Clause: the SQL
text and a list of arguments to be passed to a database driver.

	fields := sqlpart.Fields{
		{Name: "firstName", Value: sqlpart.Text("Ann")},
		{Name: "isAdmin", Value: sqlpart.Bool(true)},
	}
	set, err := sqlpart.SetClause(fields, sqlpart.Columns{
		"firstName": "first_name",
		"isAdmin":   "is_admin",
	})
	// set.SQL  == `"first_name"=$1, "is_admin"=$2`
	// set.Args == []any{"Ann", true}

Builders keep no state between calls and are safe for concurrent use.
*/
package sqlpart
