package postgres

import (
	"context"
	"errors"
	"fmt"

	"carbon-credit-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProjectRepo implements ports.ProjectRepository.
type ProjectRepo struct {
	pool Pool
}

// NewProjectRepo creates a new ProjectRepo.
func NewProjectRepo(pool Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

const projectColumns = `id, owner, status, evidence_ref, carbon_removed, issued_credits, fingerprint, audited_at, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	p := &domain.Project{}
	err := row.Scan(
		&p.ID, &p.Owner, &p.Status, &p.EvidenceRef, &p.CarbonRemoved,
		&p.IssuedCredits, &p.Fingerprint, &p.AuditedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new project and returns the assigned id.
// The unique index on fingerprint makes duplicate submissions fail here even
// when two submissions race past the existence check.
func (r *ProjectRepo) Create(ctx context.Context, tx pgx.Tx, project *domain.Project) (int64, error) {
	query := `INSERT INTO projects (owner, status, evidence_ref, carbon_removed, issued_credits, fingerprint, audited_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query,
		project.Owner, project.Status, project.EvidenceRef, project.CarbonRemoved,
		project.IssuedCredits, project.Fingerprint, project.AuditedAt,
		project.CreatedAt, project.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert project: %w", err)
	}
	return id, nil
}

// GetByID fetches a project by id (non-locking read).
func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate fetches a project by id with pessimistic locking.
// This MUST be called within a transaction.
func (r *ProjectRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 FOR UPDATE`

	p, err := scanProject(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project for update: %w", err)
	}
	return p, nil
}

// Update persists status, evidence, issuance and audit fields.
func (r *ProjectRepo) Update(ctx context.Context, tx pgx.Tx, project *domain.Project) error {
	query := `UPDATE projects
		SET status = $2, evidence_ref = $3, issued_credits = $4, audited_at = $5, updated_at = $6
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		project.ID, project.Status, project.EvidenceRef,
		project.IssuedCredits, project.AuditedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update project: id %d not found", project.ID)
	}
	return nil
}

// FingerprintExists reports whether a verification fingerprint is already
// registered, regardless of the owning project's state.
func (r *ProjectRepo) FingerprintExists(ctx context.Context, fingerprint string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM projects WHERE fingerprint = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, fingerprint).Scan(&exists); err != nil {
		return false, fmt.Errorf("check fingerprint: %w", err)
	}
	return exists, nil
}

// ListByOwner returns all projects submitted by an account, newest first.
func (r *ProjectRepo) ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE owner = $1 ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("list projects by owner: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p := domain.Project{}
		if err := rows.Scan(
			&p.ID, &p.Owner, &p.Status, &p.EvidenceRef, &p.CarbonRemoved,
			&p.IssuedCredits, &p.Fingerprint, &p.AuditedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}
