package stores

import (
	"context"

	"github.com/granaboard/client-go/pkg/api"
	"github.com/granaboard/client-go/pkg/records"
	"github.com/rs/zerolog/log"
)

// InstallmentsStore synchronizes the installment purchase collection.
// Installments are created and expanded by the backend, so this store is
// read-only.
type InstallmentsStore struct {
	api    *api.Client
	notify Notifier
	col    collection[records.InstallmentExpense]
}

// NewInstallmentsStore returns a store synchronizing against client.
func NewInstallmentsStore(client *api.Client, notify Notifier) *InstallmentsStore {
	return &InstallmentsStore{api: client, notify: notify}
}

// Snapshot returns the current state of the collection.
func (s *InstallmentsStore) Snapshot() Snapshot[records.InstallmentExpense] {
	return s.col.snapshot()
}

// Fetch replaces the snapshot with all installment purchases.
func (s *InstallmentsStore) Fetch(ctx context.Context) error {
	token := s.col.begin()

	var items []records.InstallmentExpense
	err := s.api.Get(ctx, "/installments/", nil, &items)
	if err != nil {
		log.Error().Err(err).Msg("fetching installments")
		if s.col.complete(token, nil, 0, ErrLoadInstallments) {
			s.notify.Error(ErrLoadInstallments.Error())
		}
		return ErrLoadInstallments
	}

	s.col.complete(token, items, len(items), nil)
	return nil
}
