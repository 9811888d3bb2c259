package stores

import (
	"context"
	"errors"

	"github.com/granaboard/client-go/pkg/api"
	"github.com/granaboard/client-go/pkg/records"
	"github.com/rs/zerolog/log"
)

// CategoriesStore synchronizes the category collection.
type CategoriesStore struct {
	api    *api.Client
	notify Notifier
	col    collection[records.Category]
}

// NewCategoriesStore returns a store synchronizing against client.
func NewCategoriesStore(client *api.Client, notify Notifier) *CategoriesStore {
	return &CategoriesStore{api: client, notify: notify}
}

// Snapshot returns the current state of the collection.
func (s *CategoriesStore) Snapshot() Snapshot[records.Category] {
	return s.col.snapshot()
}

// Fetch replaces the snapshot with all categories.
func (s *CategoriesStore) Fetch(ctx context.Context) error {
	token := s.col.begin()

	var items []records.Category
	err := s.api.Get(ctx, "/categories/", nil, &items)
	if err != nil {
		log.Error().Err(err).Msg("fetching categories")
		if s.col.complete(token, nil, 0, ErrLoadCategories) {
			s.notify.Error(ErrLoadCategories.Error())
		}
		return ErrLoadCategories
	}

	s.col.complete(token, items, len(items), nil)
	return nil
}

// Add creates a new category and resyncs. When the server rejects the name,
// its field-level message is surfaced to the user.
func (s *CategoriesStore) Add(ctx context.Context, editable records.CategoryEditable) error {
	if err := editable.Validate(); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	var created records.Category
	if err := s.api.Post(ctx, "/categories/", editable, &created); err != nil {
		message := "could not create the category"

		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			if fieldMessage := apiErr.FieldMessage("name"); fieldMessage != "" {
				message = fieldMessage
			}
		}

		s.notify.Error(message)
		return err
	}

	s.notify.Success("category created")
	return s.Fetch(ctx)
}
