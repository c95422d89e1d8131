package sqlpart

import (
	"sort"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// Op defines a predicate a filter key turns into.
type Op uint8

const (
	// OpILike matches a column case-insensitively against the value as is:
	// column ILIKE $n.
	OpILike Op = iota + 1
	// OpContains matches a column case-insensitively against a substring.
	// The value is wrapped with % and LIKE wildcards in it are escaped.
	OpContains
	// OpGTE is a lower bound: column >= $n.
	OpGTE
	// OpLTE is an upper bound: column <= $n.
	OpLTE
	// OpPositive is a flag. If the value is true it adds column > 0.
	// It never takes an argument.
	OpPositive
)

// FilterField binds a filter key to a column and a predicate.
type FilterField struct {
	Key    string
	Column string
	Op     Op
	// Kind is the type of values accepted for the key.
	Kind Kind
}

// Match creates a case-insensitive match filter.
func Match(key, column string) FilterField {
	return FilterField{Key: key, Column: column, Op: OpILike, Kind: KindText}
}

// Contains creates a case-insensitive substring filter.
func Contains(key, column string) FilterField {
	return FilterField{Key: key, Column: column, Op: OpContains, Kind: KindText}
}

// AtLeast creates a lower bound filter.
func AtLeast(key, column string, kind Kind) FilterField {
	return FilterField{Key: key, Column: column, Op: OpGTE, Kind: kind}
}

// AtMost creates an upper bound filter.
func AtMost(key, column string, kind Kind) FilterField {
	return FilterField{Key: key, Column: column, Op: OpLTE, Kind: kind}
}

// Positive creates a flag filter matching rows with a positive column value.
func Positive(key, column string) FilterField {
	return FilterField{Key: key, Column: column, Op: OpPositive, Kind: KindBool}
}

/*
FilterSchema is the list of recognized filter keys.

The order of the list is the order predicates appear in a WHERE clause,
which also defines placeholder numbers:

	var jobFilters = sqlpart.FilterSchema{
		sqlpart.Match("title", "title"),
		sqlpart.AtLeast("minSalary", "salary", sqlpart.KindInt),
		sqlpart.Positive("hasEquity", "equity"),
	}
*/
type FilterSchema []FilterField

// Filter is a set of filter values by key.
// A missing key and a NULL value both mean "don't filter".
type Filter map[string]Value

// Field returns a schema entry by key.
func (s FilterSchema) Field(key string) (FilterField, bool) {
	for _, f := range s {
		if f.Key == key {
			return f, true
		}
	}
	return FilterField{}, false
}

// Keys returns recognized keys in order.
func (s FilterSchema) Keys() []string {
	keys := make([]string, len(s))
	for n, f := range s {
		keys[n] = f.Key
	}
	return keys
}

/*
Validate checks a filter against the schema.

It returns an UnsupportedFilterKeyError for a key outside of the schema and an
InvalidFilterValueError for a value of a wrong type. WhereClause doesn't
call Validate: callers enforcing strict filters do it themselves.
*/
func (s FilterSchema) Validate(filter Filter) error {
	keys := make([]string, 0, len(filter))
	for key := range filter {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		f, ok := s.Field(key)
		if !ok {
			return &UnsupportedFilterKeyError{Key: key}
		}
		v := filter[key]
		if v.IsNull() || v.Kind() == f.Kind {
			continue
		}
		if f.Kind == KindFloat && v.Kind() == KindInt {
			continue
		}
		return &InvalidFilterValueError{Key: key, Raw: v.String(), Want: f.Kind}
	}
	return nil
}

/*
ParseFilter converts raw string values, such as URL query parameters,
into a typed Filter. Unknown keys and malformed values are rejected:

	filter, err := jobFilters.ParseFilter(map[string]string{
		"title":     "engineer",
		"minSalary": "50000",
	})
*/
func (s FilterSchema) ParseFilter(params map[string]string) (Filter, error) {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	filter := make(Filter, len(params))
	for _, key := range keys {
		f, ok := s.Field(key)
		if !ok {
			return nil, &UnsupportedFilterKeyError{Key: key}
		}
		raw := params[key]
		v, err := ParseValue(raw, f.Kind)
		if err != nil {
			return nil, &InvalidFilterValueError{Key: key, Raw: raw, Want: f.Kind}
		}
		filter[key] = v
	}
	return filter, nil
}

// WhereClause builds a WHERE clause using the PostgreSQL dialect.
func WhereClause(schema FilterSchema, filter Filter) Clause {
	return defaultDialect.WhereClause(schema, filter)
}

/*
WhereClause builds a WHERE clause from a filter.

Schema keys are checked in schema order and every key present in the filter
adds a predicate. Predicates are joined with AND:

	WHERE title ILIKE $1 AND salary >= $2 AND equity > 0

Only predicates that take an argument consume a placeholder number.
An empty SQL string is returned if filter is nil or no predicate applies.
Keys unknown to the schema are ignored.
*/
func (d *Dialect) WhereClause(schema FilterSchema, filter Filter) Clause {
	if len(filter) == 0 {
		return emptyClause()
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	args := make([]interface{}, 0, len(filter))
	for _, f := range schema {
		v, ok := filter[f.Key]
		if !ok || v.IsNull() {
			continue
		}

		var (
			op     string
			arg    interface{}
			suffix string
		)
		switch f.Op {
		case OpILike:
			op, arg = d.ilike, v.Arg()
		case OpContains:
			s, _ := v.Text()
			op, arg, suffix = d.ilike, "%"+escapeLike(s)+"%", d.likeEscape
		case OpGTE:
			op, arg = ">=", v.Arg()
		case OpLTE:
			op, arg = "<=", v.Arg()
		case OpPositive:
			if b, _ := v.Bool(); !b {
				continue
			}
		default:
			continue
		}

		if len(buf.B) == 0 {
			buf.WriteString("WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		buf.WriteString(f.Column)
		if f.Op == OpPositive {
			buf.WriteString(" > 0")
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(op)
		buf.WriteByte(' ')
		args = append(args, arg)
		buf.B = d.appendPlaceholder(buf.B, len(args))
		buf.WriteString(suffix)
	}

	if len(buf.B) == 0 {
		return emptyClause()
	}
	return Clause{SQL: buf.String(), Args: args}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
