package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

// InMemoryRoleDirectory resolves customer roles from runtime grants plus a
// fixed owner set taken from configuration. Owners outrank every grant:
// whatever role an owner identity was granted, lookup answers account.Owner.
type InMemoryRoleDirectory struct {
	mu     sync.RWMutex
	owners map[kernel.UUID]struct{}
	grants map[kernel.UUID]account.Role
}

// NewInMemoryRoleDirectory creates a directory with the given owner
// identities. The owner set is fixed for the process lifetime.
func NewInMemoryRoleDirectory(ownerIDs []kernel.UUID) *InMemoryRoleDirectory {
	owners := make(map[kernel.UUID]struct{}, len(ownerIDs))
	for _, ownerID := range ownerIDs {
		owners[ownerID] = struct{}{}
	}

	return &InMemoryRoleDirectory{
		owners: owners,
		grants: make(map[kernel.UUID]account.Role),
	}
}

// RoleOf returns the effective role for the identity. Unknown identities
// are plain customers.
func (d *InMemoryRoleDirectory) RoleOf(
	ctx context.Context,
	customerID kernel.UUID,
) (account.Role, error) {
	if err := customerID.Validate(); err != nil {
		return account.Customer, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if _, isOwner := d.owners[customerID]; isOwner {
		return account.Owner, nil
	}

	if role, found := d.grants[customerID]; found {
		return role, nil
	}

	return account.Customer, nil
}

// SetRole grants the identity a role. Granting account.Owner is rejected;
// ownership comes only from configuration.
func (d *InMemoryRoleDirectory) SetRole(
	ctx context.Context,
	customerID kernel.UUID,
	role account.Role,
) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}
	if role == account.Owner {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			errors.New("owner role comes from configuration and cannot be granted"),
		)
	}

	d.mu.Lock()
	d.grants[customerID] = role
	d.mu.Unlock()

	return nil
}
