package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestFallbackClientReadsReturnEmpty(t *testing.T) {
	ctx := context.Background()
	client := NewFallbackClient()

	if client.IsConfigured() {
		t.Fatal("IsConfigured() = true, want false")
	}

	rows, err := client.Querier().Query(ctx, `SELECT id FROM employees WHERE tenant_id = $1`, "t1")
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	defer rows.Close()
	if rows.Next() {
		t.Error("Query returned rows, want none")
	}
	if rows.Err() != nil {
		t.Errorf("rows.Err() = %v, want nil", rows.Err())
	}

	var id string
	err = client.Querier().QueryRow(ctx, `SELECT id FROM employees WHERE id = $1`, "e1").Scan(&id)
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("QueryRow scan error = %v, want pgx.ErrNoRows", err)
	}
}

func TestFallbackClientWritesFail(t *testing.T) {
	ctx := context.Background()
	client := NewFallbackClient()

	_, err := client.Querier().Exec(ctx, `DELETE FROM employees WHERE id = $1`, "e1")
	if !errors.Is(err, ErrBackendNotConfigured) {
		t.Errorf("Exec error = %v, want ErrBackendNotConfigured", err)
	}

	var id string
	err = client.Querier().QueryRow(ctx, `INSERT INTO employees (id) VALUES ($1) RETURNING id`, "e1").Scan(&id)
	if !errors.Is(err, ErrBackendNotConfigured) {
		t.Errorf("mutating QueryRow scan error = %v, want ErrBackendNotConfigured", err)
	}

	_, err = client.BeginTx(ctx)
	if !errors.Is(err, ErrBackendNotConfigured) {
		t.Errorf("BeginTx error = %v, want ErrBackendNotConfigured", err)
	}
}

func TestIsReadStatement(t *testing.T) {
	cases := []struct {
		sql  string
		want bool
	}{
		{"SELECT 1", true},
		{"  select id from employees", true},
		{"WITH recent AS (SELECT 1) SELECT * FROM recent", true},
		{"INSERT INTO employees (id) VALUES ($1)", false},
		{"UPDATE employees SET lifecycle = $1", false},
		{"DELETE FROM employees", false},
	}
	for _, c := range cases {
		if got := isReadStatement(c.sql); got != c.want {
			t.Errorf("isReadStatement(%q) = %v, want %v", c.sql, got, c.want)
		}
	}
}
