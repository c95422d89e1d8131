package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jobly/sqlpart"
)

// Job is a job posting of a company.
type Job struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Salary        *int64  `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

// NewJob holds data of a job to be created.
type NewJob struct {
	Title         string
	Salary        *int64
	Equity        *string
	CompanyHandle string
}

// JobFilters lists job filter keys. Predicates follow this order:
//
//	WHERE title ILIKE $1 AND salary >= $2 AND equity > 0
//
// The title is matched as is, callers add % wildcards when they want them.
var JobFilters = sqlpart.FilterSchema{
	sqlpart.Match("title", "title"),
	sqlpart.AtLeast("minSalary", "salary", sqlpart.KindInt),
	sqlpart.Positive("hasEquity", "equity"),
}

// JobFilter is a typed job filter. Nil fields are not filtered on.
type JobFilter struct {
	Title     *string
	MinSalary *int64
	HasEquity *bool
}

// Filter converts f into a sqlpart.Filter. A nil JobFilter gives a nil Filter.
func (f *JobFilter) Filter() sqlpart.Filter {
	if f == nil {
		return nil
	}
	filter := make(sqlpart.Filter, 3)
	if f.Title != nil {
		filter["title"] = sqlpart.Text(*f.Title)
	}
	if f.MinSalary != nil {
		filter["minSalary"] = sqlpart.Int(*f.MinSalary)
	}
	if f.HasEquity != nil {
		filter["hasEquity"] = sqlpart.Bool(*f.HasEquity)
	}
	return filter
}

// ParseJobFilter reads a job filter from query parameters.
func ParseJobFilter(params map[string]string) (sqlpart.Filter, error) {
	return JobFilters.ParseFilter(params)
}

var jobColumns = sqlpart.Columns{
	"companyHandle": "company_handle",
}

// Job id and company handle can't be changed.
var jobUpdatable = []string{"title", "salary", "equity"}

const jobSelect = "SELECT id, title, salary, equity, company_handle FROM jobs"

const jobReturning = "RETURNING id, title, salary, equity, company_handle"

// Jobs accesses job records.
type Jobs struct {
	s *Store
}

// dest returns scan targets in jobSelect column order.
func (job *Job) dest() []interface{} {
	return []interface{}{&job.ID, &job.Title, &job.Salary, &job.Equity, &job.CompanyHandle}
}

// Create adds a job and returns it.
func (j *Jobs) Create(ctx context.Context, data NewJob) (Job, error) {
	var job Job
	q := j.s.bind(statement(
		"INSERT INTO jobs (title, salary, equity, company_handle) VALUES (?, ?, ?, ?)",
		jobReturning,
	), 1)
	args := []interface{}{data.Title, data.Salary, data.Equity, data.CompanyHandle}
	err := j.s.queryRow(ctx, q, args, job.dest()...)
	if err != nil {
		return Job{}, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// FindAll returns jobs matching filter ordered by id.
// A nil filter returns all jobs.
func (j *Jobs) FindAll(ctx context.Context, filter sqlpart.Filter) ([]Job, error) {
	if err := JobFilters.Validate(filter); err != nil {
		return nil, err
	}
	where := j.s.dialect.WhereClause(JobFilters, filter)
	return j.list(ctx, statement(jobSelect, where.SQL, "ORDER BY id"), where.Args)
}

func (j *Jobs) list(ctx context.Context, q string, args []interface{}) ([]Job, error) {
	jobs := []Job{}
	err := j.s.query(ctx, q, args, func(rows *sql.Rows) error {
		var job Job
		if err := rows.Scan(job.dest()...); err != nil {
			return err
		}
		jobs = append(jobs, job)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// Get returns a job by id.
func (j *Jobs) Get(ctx context.Context, id int64) (Job, error) {
	var job Job
	q := j.s.bind(statement(jobSelect, "WHERE id = ?"), 1)
	err := j.s.queryRow(ctx, q, []interface{}{id}, job.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return Job{}, notFound("job", id)
	}
	if err != nil {
		return Job{}, fmt.Errorf("get job %d: %w", id, err)
	}
	return job, nil
}

/*
Update changes some of the job fields and returns the updated job.

	job, err := store.Jobs().Update(ctx, id, sqlpart.Fields{
		{Name: "salary", Value: sqlpart.Int(50000)},
	})

Only title, salary and equity can be changed.
*/
func (j *Jobs) Update(ctx context.Context, id int64, fields sqlpart.Fields) (Job, error) {
	if err := fields.Restrict(jobUpdatable...); err != nil {
		return Job{}, err
	}
	set, err := j.s.dialect.SetClause(fields, jobColumns)
	if err != nil {
		return Job{}, err
	}

	var job Job
	q := statement(
		"UPDATE jobs SET", set.SQL,
		"WHERE id = "+j.s.dialect.Placeholder(set.Next()),
		jobReturning,
	)
	args := append(set.Args, id)
	err = j.s.queryRow(ctx, q, args, job.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return Job{}, notFound("job", id)
	}
	if err != nil {
		return Job{}, fmt.Errorf("update job %d: %w", id, err)
	}
	return job, nil
}

// Remove deletes a job.
func (j *Jobs) Remove(ctx context.Context, id int64) error {
	n, err := j.s.exec(ctx, j.s.bind("DELETE FROM jobs WHERE id = ?", 1), id)
	if err != nil {
		return fmt.Errorf("remove job %d: %w", id, err)
	}
	if n == 0 {
		return notFound("job", id)
	}
	return nil
}
