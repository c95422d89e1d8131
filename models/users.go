package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jobly/sqlpart"
)

// User is an application user. Passwords are never read.
type User struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

func (u *User) dest() []interface{} {
	return []interface{}{&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin}
}

var userColumns = sqlpart.Columns{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

var userUpdatable = []string{"firstName", "lastName", "email", "isAdmin"}

const userSelect = "SELECT username, first_name, last_name, email, is_admin FROM users"

// Users accesses user records.
type Users struct {
	s *Store
}

// FindAll returns all users ordered by username.
func (u *Users) FindAll(ctx context.Context) ([]User, error) {
	users := []User{}
	err := u.s.query(ctx, statement(userSelect, "ORDER BY username"), nil, func(rows *sql.Rows) error {
		var user User
		if err := rows.Scan(user.dest()...); err != nil {
			return err
		}
		users = append(users, user)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns a user by username.
func (u *Users) Get(ctx context.Context, username string) (User, error) {
	var user User
	q := u.s.bind(statement(userSelect, "WHERE username = ?"), 1)
	err := u.s.queryRow(ctx, q, []interface{}{username}, user.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, notFound("user", username)
	}
	if err != nil {
		return User{}, fmt.Errorf("get user %s: %w", username, err)
	}
	return user, nil
}

// Update changes some of the user fields and returns the updated user.
func (u *Users) Update(ctx context.Context, username string, fields sqlpart.Fields) (User, error) {
	if err := fields.Restrict(userUpdatable...); err != nil {
		return User{}, err
	}
	set, err := u.s.dialect.SetClause(fields, userColumns)
	if err != nil {
		return User{}, err
	}

	var user User
	q := statement(
		"UPDATE users SET", set.SQL,
		"WHERE username = "+u.s.dialect.Placeholder(set.Next()),
		"RETURNING username, first_name, last_name, email, is_admin",
	)
	err = u.s.queryRow(ctx, q, append(set.Args, username), user.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, notFound("user", username)
	}
	if err != nil {
		return User{}, fmt.Errorf("update user %s: %w", username, err)
	}
	return user, nil
}

// Remove deletes a user.
func (u *Users) Remove(ctx context.Context, username string) error {
	n, err := u.s.exec(ctx, u.s.bind("DELETE FROM users WHERE username = ?", 1), username)
	if err != nil {
		return fmt.Errorf("remove user %s: %w", username, err)
	}
	if n == 0 {
		return notFound("user", username)
	}
	return nil
}
