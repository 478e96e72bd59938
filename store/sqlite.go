// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/claim-desk/db"
	"github.com/danielhkuo/claim-desk/models"
)

// SQLite keeps claims in an in-memory SQLite database.
type SQLite struct {
	db *sql.DB
}

func NewSQLite() (*SQLite, error) {
	conn, err := db.OpenMemory()
	if err != nil {
		return nil, err
	}
	return &SQLite{db: conn}, nil
}

func (s *SQLite) Insert(ctx context.Context, c models.Claim) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO claim (id, policy_number, type, amount, description, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.PolicyNumber, c.Type, c.Amount, c.Description, string(c.Status), c.CreatedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

func (s *SQLite) List(ctx context.Context) ([]models.Claim, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, policy_number, type, amount, description, status, created_at
		FROM claim
		ORDER BY seq DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query claims: %w", err)
	}
	defer rows.Close()

	claims := []models.Claim{}
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claims: %w", err)
	}
	return claims, nil
}

func (s *SQLite) Get(ctx context.Context, id string) (models.Claim, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, policy_number, type, amount, description, status, created_at
		FROM claim
		WHERE id = ?
	`, id)
	c, err := scanClaim(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Claim{}, ErrNotFound
	}
	if err != nil {
		return models.Claim{}, fmt.Errorf("get claim %s: %w", id, err)
	}
	return c, nil
}

func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM claim").Scan(&n); err != nil {
		return 0, fmt.Errorf("count claims: %w", err)
	}
	return n, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClaim(sc scanner) (models.Claim, error) {
	var c models.Claim
	var status string
	err := sc.Scan(&c.ID, &c.PolicyNumber, &c.Type, &c.Amount, &c.Description, &status, &c.CreatedAt)
	c.Status = models.ClaimStatus(status)
	return c, err
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
