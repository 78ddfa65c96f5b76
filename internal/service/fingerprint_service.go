package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SHA256FingerprintService implements ports.FingerprintService.
// The fingerprint is the hex SHA-256 digest of the trimmed external
// verification identifier, giving a fixed-width, collision-resistant
// de-duplication key regardless of identifier shape.
type SHA256FingerprintService struct{}

// NewSHA256FingerprintService creates a new fingerprint service.
func NewSHA256FingerprintService() *SHA256FingerprintService {
	return &SHA256FingerprintService{}
}

// Fingerprint derives the de-duplication key for a verification identifier.
func (s *SHA256FingerprintService) Fingerprint(externalVerificationID string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(externalVerificationID)))
	return hex.EncodeToString(sum[:])
}
