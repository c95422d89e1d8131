package models_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jobly/sqlpart"
	"github.com/jobly/sqlpart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var companyColumns = []string{"handle", "name", "description", "num_employees", "logo_url"}

func TestCompaniesFindAllSQL(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT handle, name, description, num_employees, logo_url FROM companies " +
		"WHERE name ILIKE $1 AND num_employees >= $2 AND num_employees <= $3 ORDER BY name").
		WithArgs("%net%", 10, 100).
		WillReturnRows(sqlmock.NewRows(companyColumns).
			AddRow("anet", "Anet", "Networks", int64(50), nil))

	companies, err := store.Companies().FindAll(context.Background(), (&models.CompanyFilter{
		Name:         ptr("net"),
		MinEmployees: ptr(int64(10)),
		MaxEmployees: ptr(int64(100)),
	}).Filter())
	require.NoError(t, err)
	assert.Equal(t, []models.Company{
		{Handle: "anet", Name: "Anet", Description: "Networks", NumEmployees: ptr(int64(50))},
	}, companies)
}

func TestCompaniesInvalidRange(t *testing.T) {
	store, _ := newMockStore(t)

	_, err := store.Companies().FindAll(context.Background(), sqlpart.Filter{
		"minEmployees": sqlpart.Int(10),
		"maxEmployees": sqlpart.Int(5),
	})
	assert.True(t, errors.Is(err, models.ErrInvalidRange))
	assert.True(t, models.IsClientError(err))

	_, err = models.ParseCompanyFilter(map[string]string{"minEmployees": "3", "maxEmployees": "2"})
	assert.True(t, errors.Is(err, models.ErrInvalidRange))

	filter, err := models.ParseCompanyFilter(map[string]string{"minEmployees": "2", "maxEmployees": "2"})
	require.NoError(t, err)
	assert.Len(t, filter, 2)
}

func TestCompaniesUpdateSQL(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`UPDATE companies SET "num_employees"=$1, "logo_url"=$2, "name"=$3 WHERE handle = $4 ` +
		"RETURNING handle, name, description, num_employees, logo_url").
		WithArgs(10, nil, "New", "c1").
		WillReturnRows(sqlmock.NewRows(companyColumns).
			AddRow("c1", "New", "Desc1", int64(10), nil))

	company, err := store.Companies().Update(context.Background(), "c1", sqlpart.Fields{
		{Name: "numEmployees", Value: sqlpart.Int(10)},
		{Name: "logoUrl", Value: sqlpart.Null()},
		{Name: "name", Value: sqlpart.Text("New")},
	})
	require.NoError(t, err)
	assert.Equal(t, "New", company.Name)
	assert.Nil(t, company.LogoURL)

	_, err = store.Companies().Update(context.Background(), "c1", sqlpart.Fields{
		{Name: "handle", Value: sqlpart.Text("c9")},
	})
	assert.True(t, errors.Is(err, sqlpart.ErrUnsupportedField))
}

func TestCompaniesSQLite(t *testing.T) {
	store := newSQLiteStore(t)
	companies := store.Companies()
	ctx := context.Background()

	found, err := companies.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, found, 3)

	found, err = companies.FindAll(ctx, sqlpart.Filter{
		"name":         sqlpart.Text("c"),
		"minEmployees": sqlpart.Int(2),
	})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "c2", found[0].Handle)
	assert.Equal(t, "c3", found[1].Handle)

	found, err = companies.FindAll(ctx, sqlpart.Filter{"maxEmployees": sqlpart.Int(1)})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "c1", found[0].Handle)

	c1, err := companies.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "C1", c1.Name)
	assert.Equal(t, ptr("http://c1.img"), c1.LogoURL)
	require.Len(t, c1.Jobs, 1)
	assert.Equal(t, "Test Job", c1.Jobs[0].Title)

	c3, err := companies.Get(ctx, "c3")
	require.NoError(t, err)
	assert.Empty(t, c3.Jobs)
	assert.Nil(t, c3.LogoURL)

	_, err = companies.Get(ctx, "nope")
	assert.True(t, models.IsNotFound(err))

	created, err := companies.Create(ctx, models.Company{
		Handle:       "new",
		Name:         "New",
		Description:  "New Description",
		NumEmployees: ptr(int64(1)),
		LogoURL:      ptr("http://new.img"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new", created.Handle)

	_, err = companies.Create(ctx, created)
	assert.True(t, errors.Is(err, models.ErrDuplicate))
	assert.True(t, models.IsClientError(err))

	updated, err := companies.Update(ctx, "new", sqlpart.Fields{
		{Name: "numEmployees", Value: sqlpart.Int(10)},
		{Name: "description", Value: sqlpart.Text("Updated")},
	})
	require.NoError(t, err)
	assert.Equal(t, ptr(int64(10)), updated.NumEmployees)
	assert.Equal(t, "Updated", updated.Description)

	require.NoError(t, companies.Remove(ctx, "new"))
	assert.True(t, models.IsNotFound(companies.Remove(ctx, "new")))
}
