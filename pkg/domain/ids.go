// Package domain holds the typed identifiers shared across features.
//
// Salesmen and credits are owned by this service and use UUID identity.
// Licenses and users are owned by remote services; their identifiers are
// opaque strings we never generate, only carry.
package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "salescredit/pkg/domain-errors"
)

type (
	// SalesmanID identifies a salesman record in the local ledger.
	SalesmanID uuid.UUID

	// CreditID identifies a credit record in the local ledger.
	CreditID uuid.UUID

	// LicenseID is the remote License service's identifier for a license.
	LicenseID string

	// UserID is the remote User service's identifier for a user account.
	UserID string
)

func (id SalesmanID) String() string { return uuid.UUID(id).String() }
func (id CreditID) String() string   { return uuid.UUID(id).String() }
func (id LicenseID) String() string  { return string(id) }
func (id UserID) String() string     { return string(id) }

func (id SalesmanID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id CreditID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }

// NewSalesmanID returns a fresh random salesman identifier.
func NewSalesmanID() SalesmanID { return SalesmanID(uuid.New()) }

// NewCreditID returns a fresh random credit identifier.
func NewCreditID() CreditID { return CreditID(uuid.New()) }

// ParseSalesmanID validates and parses a salesman ID from its string form.
// Rejects empty strings and the nil UUID at trust boundaries.
func ParseSalesmanID(s string) (SalesmanID, error) {
	u, err := parseUUID(s, "salesman id")
	return SalesmanID(u), err
}

// ParseCreditID validates and parses a credit ID from its string form.
func ParseCreditID(s string) (CreditID, error) {
	u, err := parseUUID(s, "credit id")
	return CreditID(u), err
}

// ParseLicenseID validates a remote license identifier. The remote service
// owns the format; we only require it to be non-empty.
func ParseLicenseID(s string) (LicenseID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "license id is required")
	}
	return LicenseID(s), nil
}

// ParseUserID validates a remote user identifier.
func ParseUserID(s string) (UserID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "user id is required")
	}
	return UserID(s), nil
}

func parseUUID(s, what string) (uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, what+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "invalid "+what)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, what+" must not be nil")
	}
	return u, nil
}
