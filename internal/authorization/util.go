// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/studio-service/internal/types"
)

const (
	OWNER_RELATION   = "owner"
	MANAGER_RELATION = "manager"
	MEMBER_RELATION  = "member"

	CAN_INVITE_PERMISSION = "can_invite"

	USER_TYPE   = "user"
	TENANT_TYPE = "tenant"
)

func UserTuple(userId string) string {
	return USER_TYPE + ":" + userId
}

func TenantTuple(tenantId string) string {
	return TENANT_TYPE + ":" + tenantId
}

// RoleRelation maps a user role to its tenant relation.
func RoleRelation(role string) (string, bool) {
	switch role {
	case types.RoleOwner:
		return OWNER_RELATION, true
	case types.RoleManager:
		return MANAGER_RELATION, true
	case types.RoleMember:
		return MEMBER_RELATION, true
	default:
		return "", false
	}
}
