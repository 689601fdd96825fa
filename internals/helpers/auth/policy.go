package helperAuth

import (
	"github.com/google/uuid"

	"ggem_backend/internals/constants"
)

// IsAdminEquivalent diz se o papel pode executar mutações administrativas.
// Papel desconhecido conta como não-admin.
func IsAdminEquivalent(role string) bool {
	switch role {
	case constants.RoleAdmin, constants.RoleEncarregado:
		return true
	default:
		return false
	}
}

// IsOwner permite que um instrutor atue sobre recursos dele mesmo
// (ex.: as próprias aulas coletivas) quando não é admin.
func IsOwner(currentUserID, resourceOwnerUserID uuid.UUID) bool {
	if currentUserID == uuid.Nil || resourceOwnerUserID == uuid.Nil {
		return false
	}
	return currentUserID == resourceOwnerUserID
}
