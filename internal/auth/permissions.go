package auth

import (
	"context"

	"campushire_backend/internal/models"
	"campushire_backend/pkg/contextkeys"
)

// Capability - закрытый набор проверок, которые делает guard/сервис
type Capability int

const (
	AnyAuthenticated Capability = iota
	JobholderOnly
	AdminOnly
)

func (c Capability) String() string {
	switch c {
	case AnyAuthenticated:
		return "any-authenticated"
	case JobholderOnly:
		return "jobholder-only"
	case AdminOnly:
		return "admin-only"
	}
	return "unknown"
}

// Allows проверяет, разрешена ли возможность для личности
func (c Capability) Allows(id *Identity) bool {
	if id == nil || !id.Role.Valid() {
		return false
	}
	switch c {
	case AnyAuthenticated:
		return true
	case JobholderOnly:
		return id.Role == models.UserRoleJobholder
	case AdminOnly:
		return id.Role == models.UserRoleAdmin
	}
	return false
}

// IsOwner - владелец записи определяется по posted_by
func IsOwner(id *Identity, ownerID string) bool {
	return id != nil && id.UserID != "" && id.UserID == ownerID
}

// CanMutate - изменять запись может только владелец.
// allowAdmin разрешает админу (используется для удаления вакансий).
func CanMutate(id *Identity, ownerID string, allowAdmin bool) bool {
	if IsOwner(id, ownerID) {
		return true
	}
	return allowAdmin && AdminOnly.Allows(id)
}

// WithIdentity кладет личность в context запроса
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextkeys.IdentityContextKey, id)
}

// IdentityFromContext достает личность, если guard ее положил
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(contextkeys.IdentityContextKey).(*Identity)
	return id, ok && id != nil
}
