package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the certification state of an offset project.
type ProjectStatus string

const (
	ProjectStatusPending  ProjectStatus = "PENDING"
	ProjectStatusAudited  ProjectStatus = "AUDITED"
	ProjectStatusRejected ProjectStatus = "REJECTED"
)

// Project is a registered offset initiative. Fingerprint is the permanent
// global de-duplication key derived from the external verification identifier;
// it is never removed, even for rejected projects.
type Project struct {
	ID            int64         `json:"id"`
	Owner         uuid.UUID     `json:"owner"`
	Status        ProjectStatus `json:"status"`
	EvidenceRef   string        `json:"evidence_ref"` // opaque off-chain content pointer
	CarbonRemoved int64         `json:"carbon_removed"`
	IssuedCredits int64         `json:"issued_credits"`
	Fingerprint   string        `json:"fingerprint"`
	AuditedAt     int64         `json:"audited_at"` // unix seconds of last audit transition, 0 if never audited
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// IsEditable returns true if the owner may replace the evidence reference.
// Audited projects are locked; a new submission is required instead.
func (p *Project) IsEditable() bool {
	return p.Status == ProjectStatusPending || p.Status == ProjectStatusRejected
}

// IsAudited returns true once an auditor has accepted the project.
func (p *Project) IsAudited() bool {
	return p.Status == ProjectStatusAudited
}

// ComputeIssuance returns floor(carbonRemoved * mintPercentage / 100), the
// risk-adjusted credit issuance for an accepted project. The intermediate
// product is taken in 128-bit space so large removals cannot wrap.
func ComputeIssuance(carbonRemoved, mintPercentage int64) (int64, error) {
	return mulDivFloor(carbonRemoved, mintPercentage, 100)
}
