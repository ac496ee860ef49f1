package valueobjects

import (
	"janus/internal/shared/apperrors"
)

// MemberRole is the closed set of roles a member holds in an organisation.
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "OWNER"
	MemberRoleAdmin  MemberRole = "ADMIN"
	MemberRoleMember MemberRole = "MEMBER"
)

func ParseMemberRole(raw string) (MemberRole, error) {
	switch MemberRole(raw) {
	case MemberRoleOwner, MemberRoleAdmin, MemberRoleMember:
		return MemberRole(raw), nil
	}
	return "", apperrors.Validation("member_role", "unknown member role: "+raw)
}
