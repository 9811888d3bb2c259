package stores

import (
	"context"
	"fmt"

	"github.com/granaboard/client-go/pkg/api"
	"github.com/granaboard/client-go/pkg/records"
)

// InvestmentsStore synchronizes the investment month-card collection.
type InvestmentsStore struct {
	cardStore[records.InvestmentCard]
}

// NewInvestmentsStore returns a store synchronizing against client.
func NewInvestmentsStore(client *api.Client, notify Notifier) *InvestmentsStore {
	return &InvestmentsStore{
		cardStore: cardStore[records.InvestmentCard]{
			api:       client,
			notify:    notify,
			cardsPath: "/investment-cards/",
			loadErr:   ErrLoadInvestments,
		},
	}
}

// AddItem registers a buy or sell operation on the card and resyncs.
func (s *InvestmentsStore) AddItem(ctx context.Context, cardID uint64, editable records.InvestmentItemEditable) error {
	if err := editable.Validate(); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	var created records.InvestmentItem
	if err := s.api.Post(ctx, "/investment-items/", editable.Request(cardID), &created); err != nil {
		s.notify.Error("could not add the investment")
		return err
	}

	s.notify.Success("investment added")
	return s.resync(ctx)
}

// UpdateItem changes an operation and resyncs.
func (s *InvestmentsStore) UpdateItem(ctx context.Context, itemID uint64, editable records.InvestmentItemEditable) error {
	if err := editable.Validate(); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	var updated records.InvestmentItem
	if err := s.api.Patch(ctx, fmt.Sprintf("/investment-items/%d/", itemID), editable.UpdateRequest(), &updated); err != nil {
		s.notify.Error("could not update the investment")
		return err
	}

	s.notify.Success("investment updated")
	return s.resync(ctx)
}

// DeleteItem removes an operation and resyncs.
func (s *InvestmentsStore) DeleteItem(ctx context.Context, itemID uint64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/investment-items/%d/", itemID)); err != nil {
		s.notify.Error("could not delete the investment")
		return err
	}

	s.notify.Success("investment deleted")
	return s.resync(ctx)
}
