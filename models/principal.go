package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the organisational role of a user.
type Role string

const (
	RoleAdmin             Role = "ADMIN"
	RoleSupervisor        Role = "SUPERVISOR"
	RoleLegalOfficer      Role = "LEGAL_OFFICER"
	RoleAgreementReviewer Role = "AGREEMENT_REVIEWER"
	RoleAgreementApprover Role = "AGREEMENT_APPROVER"
)

// MinimumSigningApprover is the lowest approver level allowed to sign.
const MinimumSigningApprover = 2

// Principal is the identity on whose behalf an operation runs.
type Principal struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	Role          Role   `json:"role"`
	ApproverLevel int    `json:"approverLevel"`
}

// IsZero reports whether no identity was resolved.
func (p Principal) IsZero() bool {
	return p.ID == 0
}

// HasRole reports whether the principal holds any of roles.
func (p Principal) HasRole(roles ...Role) bool {
	return slices.Contains(roles, p.Role)
}

// CanSign reports whether the principal's approver level allows digital
// signing of agreements.
func (p Principal) CanSign() bool {
	return p.ApproverLevel >= MinimumSigningApprover
}

// PrincipalClaims are the JWT claims carrying a principal.
// The subject holds the user id.
type PrincipalClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	FullName      string `json:"name"`
	Role          Role   `json:"role"`
	ApproverLevel int    `json:"approver_level"`
}
