package sqlpart

import (
	"fmt"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// Dialect defines how placeholders and case-insensitive matches are rendered.
//
// PostgreSQL is the default dialect used by package-level functions:
//
//	set, err := sqlpart.SetClause(fields, names)
//	// "first_name"=$1, "is_admin"=$2
//
// Use a dialect explicitly to target another engine:
//
//	set, err := sqlpart.SQLite.SetClause(fields, names)
//	// "first_name"=?1, "is_admin"=?2
//
// Dialect values are immutable and can be shared between goroutines.
type Dialect struct {
	name       string
	prefix     byte
	ilike      string
	likeEscape string
}

var (
	// PostgreSQL renders placeholders as $1, $2... and uses ILIKE.
	PostgreSQL = &Dialect{name: "postgres", prefix: '$', ilike: "ILIKE"}
	// SQLite renders placeholders as ?1, ?2... and uses LIKE,
	// which is case-insensitive for ASCII characters in SQLite.
	SQLite = &Dialect{name: "sqlite3", prefix: '?', ilike: "LIKE", likeEscape: ` ESCAPE '\'`}
)

var defaultDialect = PostgreSQL

// DialectFor returns a dialect for a database/sql driver name.
func DialectFor(driver string) (*Dialect, error) {
	switch driver {
	case "postgres", "pgx":
		return PostgreSQL, nil
	case "sqlite3", "sqlite":
		return SQLite, nil
	}
	return nil, fmt.Errorf("sqlpart: no dialect for driver %q", driver)
}

// Name returns the driver name the dialect is meant for.
func (d *Dialect) Name() string {
	return d.name
}

// Placeholder returns a placeholder for the n-th query argument (1-based).
func (d *Dialect) Placeholder(n int) string {
	return string(d.appendPlaceholder(nil, n))
}

func (d *Dialect) appendPlaceholder(b []byte, n int) []byte {
	b = append(b, d.prefix)
	return strconv.AppendInt(b, int64(n), 10)
}

/*
Rebind replaces ? placeholders in a SQL statement with numbered ones,
starting at argNo:

	sqlpart.PostgreSQL.Rebind("SELECT * FROM jobs WHERE id = ?", 1)
	// SELECT * FROM jobs WHERE id = $1

Use \? to keep a question mark, for instance a PostgreSQL jsonb operator.
*/
func (d *Dialect) Rebind(s string, argNo int) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	start := 0
	for pos := 0; pos < len(s); pos++ {
		switch s[pos] {
		case '\\':
			if pos < len(s)-1 && s[pos+1] == '?' {
				buf.WriteString(s[start:pos])
				buf.WriteByte('?')
				pos++
				start = pos + 1
			}
		case '?':
			buf.WriteString(s[start:pos])
			buf.B = d.appendPlaceholder(buf.B, argNo)
			argNo++
			start = pos + 1
		}
	}
	buf.WriteString(s[start:])
	return buf.String()
}

// writeIdent writes a double-quoted identifier.
func writeIdent(buf *bytebufferpool.ByteBuffer, name string) {
	buf.WriteByte('"')
	start := 0
	for i := 0; i < len(name); i++ {
		if name[i] == '"' {
			buf.WriteString(name[start : i+1])
			buf.WriteByte('"')
			start = i + 1
		}
	}
	buf.WriteString(name[start:])
	buf.WriteByte('"')
}

// QuoteIdent returns a double-quoted identifier
// with embedded double quotes doubled.
func QuoteIdent(name string) string {
	buf := bytebufferpool.Get()
	writeIdent(buf, name)
	s := buf.String()
	bytebufferpool.Put(buf)
	return s
}
