package port

import (
	"context"

	"github.com/striming/videos-ms-go/internal/uuid"
)

// Principal identifies an authenticated caller.
type Principal struct {
	UserID string
	Roles  []string
}

// HasRole reports whether the principal carries the given role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AccessGuard validates caller credentials. Authorize additionally checks
// read access to one asset; it must never reveal whether the asset exists.
type AccessGuard interface {
	Authenticate(ctx context.Context, credential string) (Principal, error)
	Authorize(ctx context.Context, credential string, assetID uuid.UUID) (Principal, error)
}
