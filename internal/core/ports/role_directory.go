package ports

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
)

// RoleDirectory resolves the role of a customer identity and records role
// grants. Identities configured as owners always resolve to account.Owner
// regardless of any grant, and the owner set itself cannot be changed at
// runtime.
type RoleDirectory interface {
	// RoleOf returns the effective role for the identity. Unknown
	// identities are plain customers, never an error.
	RoleOf(ctx context.Context, customerID kernel.UUID) (account.Role, error)

	// SetRole grants the identity a role. Granting account.Owner is
	// rejected; ownership comes only from configuration.
	SetRole(ctx context.Context, customerID kernel.UUID, role account.Role) error
}
