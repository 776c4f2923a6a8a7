package service

import (
	"errors"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

// saveError maps a failed write. Repositories report unique index violations
// as domain.ErrConflict; everything else is a provider failure.
func saveError(err error, conflictMsg, providerMsg string) error {
	if errors.Is(err, domain.ErrConflict) {
		return domain.Conflict(conflictMsg)
	}
	return domain.ProviderError(providerMsg, err)
}
