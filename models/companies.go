package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jobly/sqlpart"
)

// Company is an employer.
type Company struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int64  `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
	// Jobs is only filled by Get.
	Jobs []Job `json:"jobs,omitempty"`
}

func (c *Company) dest() []interface{} {
	return []interface{}{&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL}
}

// CompanyFilters lists company filter keys in predicate order.
// The name is matched as a case-insensitive substring.
var CompanyFilters = sqlpart.FilterSchema{
	sqlpart.Contains("name", "name"),
	sqlpart.AtLeast("minEmployees", "num_employees", sqlpart.KindInt),
	sqlpart.AtMost("maxEmployees", "num_employees", sqlpart.KindInt),
}

// CompanyFilter is a typed company filter. Nil fields are not filtered on.
type CompanyFilter struct {
	Name         *string
	MinEmployees *int64
	MaxEmployees *int64
}

// Filter converts f into a sqlpart.Filter. A nil CompanyFilter gives a nil Filter.
func (f *CompanyFilter) Filter() sqlpart.Filter {
	if f == nil {
		return nil
	}
	filter := make(sqlpart.Filter, 3)
	if f.Name != nil {
		filter["name"] = sqlpart.Text(*f.Name)
	}
	if f.MinEmployees != nil {
		filter["minEmployees"] = sqlpart.Int(*f.MinEmployees)
	}
	if f.MaxEmployees != nil {
		filter["maxEmployees"] = sqlpart.Int(*f.MaxEmployees)
	}
	return filter
}

// ParseCompanyFilter reads a company filter from query parameters.
func ParseCompanyFilter(params map[string]string) (sqlpart.Filter, error) {
	filter, err := CompanyFilters.ParseFilter(params)
	if err != nil {
		return nil, err
	}
	return filter, checkEmployeeRange(filter)
}

func checkEmployeeRange(filter sqlpart.Filter) error {
	lo, hasLo := filter["minEmployees"].Int()
	hi, hasHi := filter["maxEmployees"].Int()
	if hasLo && hasHi && lo > hi {
		return fmt.Errorf("%w: minEmployees %d is greater than maxEmployees %d", ErrInvalidRange, lo, hi)
	}
	return nil
}

var companyColumns = sqlpart.Columns{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// The handle is a primary key and can't be changed.
var companyUpdatable = []string{"name", "description", "numEmployees", "logoUrl"}

const companySelect = "SELECT handle, name, description, num_employees, logo_url FROM companies"

const companyReturning = "RETURNING handle, name, description, num_employees, logo_url"

// Companies accesses company records.
type Companies struct {
	s *Store
}

// Create adds a company. It returns ErrDuplicate if the handle is taken.
func (c *Companies) Create(ctx context.Context, data Company) (Company, error) {
	var handle string
	err := c.s.queryRow(ctx, c.s.bind("SELECT handle FROM companies WHERE handle = ?", 1),
		[]interface{}{data.Handle}, &handle)
	switch {
	case err == nil:
		return Company{}, fmt.Errorf("%w: company %s", ErrDuplicate, data.Handle)
	case !errors.Is(err, sql.ErrNoRows):
		return Company{}, fmt.Errorf("create company: %w", err)
	}

	var company Company
	q := c.s.bind(statement(
		"INSERT INTO companies (handle, name, description, num_employees, logo_url) VALUES (?, ?, ?, ?, ?)",
		companyReturning,
	), 1)
	args := []interface{}{data.Handle, data.Name, data.Description, data.NumEmployees, data.LogoURL}
	if err := c.s.queryRow(ctx, q, args, company.dest()...); err != nil {
		return Company{}, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

// FindAll returns companies matching filter ordered by name.
func (c *Companies) FindAll(ctx context.Context, filter sqlpart.Filter) ([]Company, error) {
	if err := CompanyFilters.Validate(filter); err != nil {
		return nil, err
	}
	if err := checkEmployeeRange(filter); err != nil {
		return nil, err
	}

	where := c.s.dialect.WhereClause(CompanyFilters, filter)
	companies := []Company{}
	err := c.s.query(ctx, statement(companySelect, where.SQL, "ORDER BY name"), where.Args,
		func(rows *sql.Rows) error {
			var company Company
			if err := rows.Scan(company.dest()...); err != nil {
				return err
			}
			companies = append(companies, company)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

// Get returns a company and its jobs.
func (c *Companies) Get(ctx context.Context, handle string) (Company, error) {
	var company Company
	q := c.s.bind(statement(companySelect, "WHERE handle = ?"), 1)
	err := c.s.queryRow(ctx, q, []interface{}{handle}, company.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return Company{}, notFound("company", handle)
	}
	if err != nil {
		return Company{}, fmt.Errorf("get company %s: %w", handle, err)
	}

	company.Jobs, err = c.s.Jobs().list(ctx,
		c.s.bind(statement(jobSelect, "WHERE company_handle = ? ORDER BY id"), 1),
		[]interface{}{handle})
	if err != nil {
		return Company{}, err
	}
	return company, nil
}

// Update changes some of the company fields and returns the updated company
// without jobs.
func (c *Companies) Update(ctx context.Context, handle string, fields sqlpart.Fields) (Company, error) {
	if err := fields.Restrict(companyUpdatable...); err != nil {
		return Company{}, err
	}
	set, err := c.s.dialect.SetClause(fields, companyColumns)
	if err != nil {
		return Company{}, err
	}

	var company Company
	q := statement(
		"UPDATE companies SET", set.SQL,
		"WHERE handle = "+c.s.dialect.Placeholder(set.Next()),
		companyReturning,
	)
	err = c.s.queryRow(ctx, q, append(set.Args, handle), company.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return Company{}, notFound("company", handle)
	}
	if err != nil {
		return Company{}, fmt.Errorf("update company %s: %w", handle, err)
	}
	return company, nil
}

// Remove deletes a company.
func (c *Companies) Remove(ctx context.Context, handle string) error {
	n, err := c.s.exec(ctx, c.s.bind("DELETE FROM companies WHERE handle = ?", 1), handle)
	if err != nil {
		return fmt.Errorf("remove company %s: %w", handle, err)
	}
	if n == 0 {
		return notFound("company", handle)
	}
	return nil
}
