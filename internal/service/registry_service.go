package service

import (
	"context"
	"fmt"
	"time"

	"carbon-credit-exchange/internal/core/domain"
	"carbon-credit-exchange/internal/core/ports"
	"carbon-credit-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RegistryServiceImpl implements ports.RegistryService: submission de-dup,
// the Pending/Audited/Rejected state machine, and risk-adjusted issuance.
type RegistryServiceImpl struct {
	projectRepo    ports.ProjectRepository
	ledger         ports.CreditLedger
	authz          ports.AuthorizationPolicy
	fingerprintSvc ports.FingerprintService
	publisher      ports.EventPublisher
	transactor     ports.DBTransactor
	mintPercentage int64
	log            zerolog.Logger

	now func() time.Time
}

// NewRegistryService creates a new RegistryServiceImpl. mintPercentage is the
// issuance policy fixed for the service lifetime; values outside 0-100 are
// rejected so the policy stays auditable.
func NewRegistryService(
	projectRepo ports.ProjectRepository,
	ledger ports.CreditLedger,
	authz ports.AuthorizationPolicy,
	fingerprintSvc ports.FingerprintService,
	publisher ports.EventPublisher,
	transactor ports.DBTransactor,
	mintPercentage int64,
	log zerolog.Logger,
) (*RegistryServiceImpl, error) {
	if mintPercentage < 0 || mintPercentage > 100 {
		return nil, fmt.Errorf("mint percentage must be between 0 and 100, got %d", mintPercentage)
	}
	return &RegistryServiceImpl{
		projectRepo:    projectRepo,
		ledger:         ledger,
		authz:          authz,
		fingerprintSvc: fingerprintSvc,
		publisher:      publisher,
		transactor:     transactor,
		mintPercentage: mintPercentage,
		log:            log,
		now:            time.Now,
	}, nil
}

// MintPercentage returns the fixed issuance policy.
func (s *RegistryServiceImpl) MintPercentage() int64 {
	return s.mintPercentage
}

// SubmitProject registers a new offset project in Pending state.
// The fingerprint of the external verification identifier is registered
// permanently; a second submission with the same identifier fails even if
// every other field differs.
func (s *RegistryServiceImpl) SubmitProject(ctx context.Context, caller uuid.UUID, req ports.SubmitProjectRequest) (*domain.Project, error) {
	if err := s.authz.Require(ctx, caller, domain.RoleProjectOwner); err != nil {
		return nil, err
	}
	if req.CarbonRemoved < 0 {
		return nil, apperror.Validation("carbon removed must be non-negative")
	}
	if req.ExternalVerificationID == "" {
		return nil, apperror.Validation("external verification id is required")
	}

	fingerprint := s.fingerprintSvc.Fingerprint(req.ExternalVerificationID)

	exists, err := s.projectRepo.FingerprintExists(ctx, fingerprint)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check fingerprint: %w", err))
	}
	if exists {
		return nil, apperror.ErrDuplicateProject()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := s.now().UTC()
	project := &domain.Project{
		Owner:         caller,
		Status:        domain.ProjectStatusPending,
		EvidenceRef:   req.EvidenceRef,
		CarbonRemoved: req.CarbonRemoved,
		IssuedCredits: 0,
		Fingerprint:   fingerprint,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The unique index on fingerprint is the race-proof backstop for the
	// existence check above.
	id, err := s.projectRepo.Create(ctx, dbTx, project)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create project: %w", err))
	}
	project.ID = id

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewEvent(domain.EventProjectSubmitted, domain.ProjectEventData{
		ProjectID: project.ID,
		Owner:     project.Owner,
		Status:    project.Status,
	}))

	s.log.Info().
		Int64("project_id", project.ID).
		Str("owner", caller.String()).
		Int64("carbon_removed", req.CarbonRemoved).
		Msg("project submitted")

	return project, nil
}

// EditProject replaces the evidence reference and forces the project back to
// Pending. Only the owner may edit, and only while the project is Pending or
// Rejected. Issued credits from a prior acceptance are retained until the
// next acceptance overwrites them.
func (s *RegistryServiceImpl) EditProject(ctx context.Context, caller uuid.UUID, projectID int64, newEvidenceRef string) (*domain.Project, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	project, err := s.projectRepo.GetByIDForUpdate(ctx, dbTx, projectID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock project: %w", err))
	}
	if project == nil {
		return nil, apperror.ErrProjectNotFound()
	}
	if project.Owner != caller {
		return nil, apperror.ErrUnauthorized(string(domain.RoleProjectOwner))
	}
	if !project.IsEditable() {
		return nil, apperror.ErrInvalidState()
	}

	project.EvidenceRef = newEvidenceRef
	project.Status = domain.ProjectStatusPending
	project.UpdatedAt = s.now().UTC()

	if err := s.projectRepo.Update(ctx, dbTx, project); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update project: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewEvent(domain.EventProjectEdited, domain.ProjectEventData{
		ProjectID:     project.ID,
		Owner:         project.Owner,
		Status:        project.Status,
		IssuedCredits: project.IssuedCredits,
	}))

	return project, nil
}

// AcceptProject moves a project to Audited and recomputes the risk-adjusted
// issuance from the current carbonRemoved. Re-accepting overwrites, it never
// accumulates. The ledger mints only the delta above current supply, capped
// at the recomputed issuance.
func (s *RegistryServiceImpl) AcceptProject(ctx context.Context, caller uuid.UUID, projectID int64) (*domain.Project, error) {
	if err := s.authz.Require(ctx, caller, domain.RoleAuditor); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	project, err := s.projectRepo.GetByIDForUpdate(ctx, dbTx, projectID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock project: %w", err))
	}
	if project == nil {
		return nil, apperror.ErrProjectNotFound()
	}

	issued, err := domain.ComputeIssuance(project.CarbonRemoved, s.mintPercentage)
	if err != nil {
		return nil, apperror.ErrArithmeticOverflow()
	}

	now := s.now().UTC()
	project.Status = domain.ProjectStatusAudited
	project.IssuedCredits = issued
	project.AuditedAt = now.Unix()
	project.UpdatedAt = now

	if err := s.projectRepo.Update(ctx, dbTx, project); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update project: %w", err))
	}

	supply, err := s.ledger.SupplyOf(ctx, dbTx, project.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("query supply: %w", err))
	}
	if issued > supply {
		if err := s.ledger.Mint(ctx, dbTx, project.Owner, project.ID, issued-supply, issued); err != nil {
			return nil, apperror.ErrTransferFailed(fmt.Errorf("mint issuance: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewEvent(domain.EventProjectAccepted, domain.ProjectEventData{
		ProjectID:     project.ID,
		Owner:         project.Owner,
		Status:        project.Status,
		IssuedCredits: project.IssuedCredits,
	}))

	s.log.Info().
		Int64("project_id", project.ID).
		Int64("issued_credits", issued).
		Str("auditor", caller.String()).
		Msg("project accepted")

	return project, nil
}

// RejectProject moves a project to Rejected. Issued credits are not altered.
func (s *RegistryServiceImpl) RejectProject(ctx context.Context, caller uuid.UUID, projectID int64) (*domain.Project, error) {
	if err := s.authz.Require(ctx, caller, domain.RoleAuditor); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	project, err := s.projectRepo.GetByIDForUpdate(ctx, dbTx, projectID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock project: %w", err))
	}
	if project == nil {
		return nil, apperror.ErrProjectNotFound()
	}

	now := s.now().UTC()
	project.Status = domain.ProjectStatusRejected
	project.AuditedAt = now.Unix()
	project.UpdatedAt = now

	if err := s.projectRepo.Update(ctx, dbTx, project); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update project: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewEvent(domain.EventProjectRejected, domain.ProjectEventData{
		ProjectID:     project.ID,
		Owner:         project.Owner,
		Status:        project.Status,
		IssuedCredits: project.IssuedCredits,
	}))

	return project, nil
}

// GetProject returns the full project record.
func (s *RegistryServiceImpl) GetProject(ctx context.Context, projectID int64) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get project: %w", err))
	}
	if project == nil {
		return nil, apperror.ErrProjectNotFound()
	}
	return project, nil
}

// ProjectExists reports whether a project id is registered.
func (s *RegistryServiceImpl) ProjectExists(ctx context.Context, projectID int64) (bool, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get project: %w", err))
	}
	return project != nil, nil
}

// IsAudited reports whether a project is currently Audited.
func (s *RegistryServiceImpl) IsAudited(ctx context.Context, projectID int64) (bool, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get project: %w", err))
	}
	return project != nil && project.IsAudited(), nil
}

// IssuedCreditsOf returns the last computed issuance, 0 for unknown projects.
func (s *RegistryServiceImpl) IssuedCreditsOf(ctx context.Context, projectID int64) (int64, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get project: %w", err))
	}
	if project == nil {
		return 0, nil
	}
	return project.IssuedCredits, nil
}

// ListByOwner returns all projects submitted by an account.
func (s *RegistryServiceImpl) ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list projects: %w", err))
	}
	return projects, nil
}

// publish delivers a notification best-effort; observers are not part of the
// committed state change.
func (s *RegistryServiceImpl) publish(ctx context.Context, event domain.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("event", string(event.Type)).Msg("failed to publish notification")
	}
}
