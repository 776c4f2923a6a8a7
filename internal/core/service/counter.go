package service

import (
	"context"
	"fmt"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

// CounterAllocator mints human-readable sequential IDs (EXP-001, USR-002, ...).
// Values come from an atomic increment in the store, so they are never reused,
// even after the records that consumed them are deleted.
type CounterAllocator struct {
	repo ports.CounterRepository
}

func NewCounterAllocator(repo ports.CounterRepository) *CounterAllocator {
	return &CounterAllocator{repo: repo}
}

// Next advances the named counter and formats the new value as prefix-NNN,
// zero-padded to width digits.
func (a *CounterAllocator) Next(ctx context.Context, name, prefix string, width int) (string, error) {
	n, err := a.repo.Increment(ctx, name)
	if err != nil {
		return "", domain.ProviderError("Error al generar el identificador.", fmt.Errorf("increment counter %q: %w", name, err))
	}
	return domain.SequenceID(prefix, n, width), nil
}
