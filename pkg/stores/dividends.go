package stores

import (
	"context"
	"fmt"

	"github.com/granaboard/client-go/pkg/api"
	"github.com/granaboard/client-go/pkg/records"
)

// DividendsStore synchronizes the dividend month-card collection.
type DividendsStore struct {
	cardStore[records.DividendCard]
}

// NewDividendsStore returns a store synchronizing against client.
func NewDividendsStore(client *api.Client, notify Notifier) *DividendsStore {
	return &DividendsStore{
		cardStore: cardStore[records.DividendCard]{
			api:       client,
			notify:    notify,
			cardsPath: "/dividend-cards/",
			loadErr:   ErrLoadDividends,
		},
	}
}

// AddItem registers a dividend payment on the card and resyncs.
func (s *DividendsStore) AddItem(ctx context.Context, cardID uint64, editable records.DividendItemEditable) error {
	if err := editable.Validate(); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	var created records.DividendItem
	if err := s.api.Post(ctx, "/dividend-items/", editable.Request(cardID), &created); err != nil {
		s.notify.Error("could not add the dividend")
		return err
	}

	s.notify.Success("dividend added")
	return s.resync(ctx)
}

// UpdateItem changes a dividend payment and resyncs.
func (s *DividendsStore) UpdateItem(ctx context.Context, itemID uint64, editable records.DividendItemEditable) error {
	if err := editable.Validate(); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	var updated records.DividendItem
	if err := s.api.Patch(ctx, fmt.Sprintf("/dividend-items/%d/", itemID), editable.UpdateRequest(), &updated); err != nil {
		s.notify.Error("could not update the dividend")
		return err
	}

	s.notify.Success("dividend updated")
	return s.resync(ctx)
}

// DeleteItem removes a dividend payment and resyncs.
func (s *DividendsStore) DeleteItem(ctx context.Context, itemID uint64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/dividend-items/%d/", itemID)); err != nil {
		s.notify.Error("could not delete the dividend")
		return err
	}

	s.notify.Success("dividend deleted")
	return s.resync(ctx)
}
