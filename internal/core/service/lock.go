package service

import (
	"context"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

// Lock keys, one per uniqueness domain.
const (
	lockClients   = "clients"
	lockCaseFiles = "case_files"
	lockOthers    = "other_documents"
	lockUsers     = "users"
)

// NoopLocker is used when no distributed lock backend is configured.
type NoopLocker struct{}

func (NoopLocker) Lock(context.Context, string) (func(), error) { return func() {}, nil }

func acquire(ctx context.Context, l ports.Locker, key string) (func(), error) {
	if l == nil {
		return func() {}, nil
	}
	unlock, err := l.Lock(ctx, key)
	if err != nil {
		return nil, domain.ProviderError("No se pudo completar la operación, inténtalo de nuevo.", err)
	}
	return unlock, nil
}
