package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/candidate"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/database"
)

type candidateRepository struct {
	db *database.DB
}

func NewCandidateRepository(db *database.DB) candidate.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `id, name, avatar_url, applied_for, applied_date, email,
	   mobile, status, created_at, updated_at`

func scanCandidate(row pgx.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	err := row.Scan(
		&c.ID, &c.Name, &c.AvatarURL, &c.AppliedFor, &c.AppliedDate, &c.Email,
		&c.Mobile, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements candidate.CandidateRepository.
func (r *candidateRepository) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO candidates (name, avatar_url, applied_for, applied_date, email, mobile, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.Name, c.AvatarURL, c.AppliedFor, c.AppliedDate, c.Email, c.Mobile, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("failed to create candidate: %w", err)
	}

	return c, nil
}

// GetByID implements candidate.CandidateRepository.
func (r *candidateRepository) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCandidate(q.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrCandidateNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("failed to get candidate: %w", err)
	}

	return c, nil
}

// Update implements candidate.CandidateRepository.
func (r *candidateRepository) Update(ctx context.Context, c candidate.Candidate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE candidates
		SET name = $2, avatar_url = $3, applied_for = $4, applied_date = $5,
			email = $6, mobile = $7, status = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		c.ID, c.Name, c.AvatarURL, c.AppliedFor, c.AppliedDate, c.Email, c.Mobile, c.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	return nil
}

// Delete implements candidate.CandidateRepository.
func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	return nil
}

// List implements candidate.CandidateRepository.
func (r *candidateRepository) List(ctx context.Context, filter candidate.ListFilter) ([]candidate.Candidate, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(` AND (name ILIKE $%d OR email ILIKE $%d OR applied_for ILIKE $%d)`, len(args), len(args), len(args))
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	query := `SELECT ` + candidateColumns + ` FROM candidates` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var result []candidate.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan candidate: %w", err)
		}
		result = append(result, c)
	}

	return result, total, rows.Err()
}
