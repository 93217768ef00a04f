package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/claim"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanClaim reads a claim row from the scanner.
// Expected column order: id, company_name, period_start, period_end, amount,
// status, user_id, submitted_by, reviewed_by, submitted_at, reviewed_at,
// created_at, updated_at
func scanClaim(s scanner) (*claim.Claim, error) {
	var c claim.Claim

	var statusStr string

	if err := s.Scan(
		&c.ID, &c.CompanyName, &c.Period.Start, &c.Period.End, &c.Amount,
		&statusStr, &c.UserID, &c.SubmittedBy, &c.ReviewedBy,
		&c.SubmittedAt, &c.ReviewedAt, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = claim.Status(statusStr)

	return &c, nil
}

const selectClaimColumns = `
	c.id, c.company_name, c.period_start, c.period_end, c.amount,
	c.status, c.user_id, c.submitted_by, c.reviewed_by,
	c.submitted_at, c.reviewed_at, c.created_at, c.updated_at
`

func (s *Store) CreateClaim(ctx context.Context, c *claim.Claim) error {
	query := `
		INSERT INTO claims (company_name, period_start, period_end, amount, status, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.CompanyName,
		c.Period.Start,
		c.Period.End,
		c.Amount,
		c.Status,
		c.UserID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating claim: %w", err)
	}

	return nil
}

func (s *Store) GetClaim(ctx context.Context, id uuid.UUID) (*claim.Claim, error) {
	query := `SELECT ` + selectClaimColumns + ` FROM claims c WHERE c.id = $1`

	c, err := scanClaim(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, claim.ErrNotFound
		}

		return nil, fmt.Errorf("getting claim: %w", err)
	}

	if err := s.attachProjectIDs(ctx, []*claim.Claim{c}); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Store) ListClaims(ctx context.Context, filter claim.ListFilter) ([]*claim.Claim, error) {
	query := `SELECT ` + selectClaimColumns + ` FROM claims c`

	var args []any

	if filter.Status != nil {
		query += " WHERE c.status = $1"

		args = append(args, *filter.Status)
	}

	query += " ORDER BY c.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing claims: %w", err)
	}
	defer rows.Close()

	var claims []*claim.Claim

	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning claim: %w", err)
		}

		claims = append(claims, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating claim rows: %w", err)
	}

	if err := s.attachProjectIDs(ctx, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// attachProjectIDs populates ProjectIDs for the given claims in one query
// over the join table.
func (s *Store) attachProjectIDs(ctx context.Context, claims []*claim.Claim) error {
	if len(claims) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*claim.Claim, len(claims))
	args := make([]any, 0, len(claims))
	placeholders := make([]string, 0, len(claims))

	for i, c := range claims {
		byID[c.ID] = c

		args = append(args, c.ID)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}

	query := fmt.Sprintf(`
		SELECT claim_id, project_id
		FROM claim_projects
		WHERE claim_id IN (%s)
		ORDER BY linked_at ASC
	`, strings.Join(placeholders, ", "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("listing claim projects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var claimID, projectID uuid.UUID
		if err := rows.Scan(&claimID, &projectID); err != nil {
			return fmt.Errorf("scanning claim project: %w", err)
		}

		if c, ok := byID[claimID]; ok {
			c.ProjectIDs = append(c.ProjectIDs, projectID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating claim project rows: %w", err)
	}

	return nil
}

func (s *Store) UpdateClaim(ctx context.Context, c *claim.Claim) error {
	query := `
		UPDATE claims
		SET company_name = $1, period_start = $2, period_end = $3, amount = $4, status = $5,
		    submitted_by = $6, reviewed_by = $7, submitted_at = $8, reviewed_at = $9,
		    updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.CompanyName,
		c.Period.Start,
		c.Period.End,
		c.Amount,
		c.Status,
		c.SubmittedBy,
		c.ReviewedBy,
		c.SubmittedAt,
		c.ReviewedAt,
		c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return claim.ErrNotFound
		}

		return fmt.Errorf("updating claim: %w", err)
	}

	return nil
}

func (s *Store) DeleteClaim(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM claims WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting claim: %w", err)
	}

	return nil
}

// LinkProjects associates projects with a claim. Re-linking an already linked
// project is a no-op.
func (s *Store) LinkProjects(ctx context.Context, id uuid.UUID, projectIDs []uuid.UUID) error {
	query := `
		INSERT INTO claim_projects (claim_id, project_id, linked_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (claim_id, project_id) DO NOTHING
	`

	for _, projectID := range projectIDs {
		if _, err := s.db.ExecContext(ctx, query, id, projectID); err != nil {
			return fmt.Errorf("linking project %s: %w", projectID, err)
		}
	}

	return nil
}

func (s *Store) UnlinkProject(ctx context.Context, id, projectID uuid.UUID) error {
	query := `DELETE FROM claim_projects WHERE claim_id = $1 AND project_id = $2`

	if _, err := s.db.ExecContext(ctx, query, id, projectID); err != nil {
		return fmt.Errorf("unlinking project: %w", err)
	}

	return nil
}

func (s *Store) ListClaimsByProject(ctx context.Context, projectID uuid.UUID) ([]*claim.Claim, error) {
	query := `SELECT ` + selectClaimColumns + `
		FROM claims c
		JOIN claim_projects cp ON cp.claim_id = c.id
		WHERE cp.project_id = $1
		ORDER BY c.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing claims by project: %w", err)
	}
	defer rows.Close()

	var claims []*claim.Claim

	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning claim: %w", err)
		}

		claims = append(claims, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating claim rows: %w", err)
	}

	return claims, nil
}
