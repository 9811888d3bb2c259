package stores

import (
	"context"
	"errors"
	"fmt"

	"github.com/granaboard/client-go/pkg/api"
	"github.com/granaboard/client-go/pkg/records"
	"github.com/rs/zerolog/log"
)

// AssetsStore synchronizes the asset collection.
type AssetsStore struct {
	api    *api.Client
	notify Notifier
	col    collection[records.Asset]
}

// NewAssetsStore returns a store synchronizing against client.
func NewAssetsStore(client *api.Client, notify Notifier) *AssetsStore {
	return &AssetsStore{api: client, notify: notify}
}

// Snapshot returns the current state of the collection.
func (s *AssetsStore) Snapshot() Snapshot[records.Asset] {
	return s.col.snapshot()
}

// Fetch replaces the snapshot with all assets.
func (s *AssetsStore) Fetch(ctx context.Context) error {
	token := s.col.begin()

	var items []records.Asset
	err := s.api.Get(ctx, "/assets/", nil, &items)
	if err != nil {
		log.Error().Err(err).Msg("fetching assets")
		if s.col.complete(token, nil, 0, ErrLoadAssets) {
			s.notify.Error(ErrLoadAssets.Error())
		}
		return ErrLoadAssets
	}

	s.col.complete(token, items, len(items), nil)
	return nil
}

// Add registers a new asset and resyncs. The code is normalized to upper
// case before the call; duplicate codes are rejected by the server and its
// field message is surfaced.
func (s *AssetsStore) Add(ctx context.Context, editable records.AssetEditable) error {
	editable = editable.Normalized()
	if err := editable.Validate(); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	var created records.Asset
	if err := s.api.Post(ctx, "/assets/", editable, &created); err != nil {
		s.notify.Error(s.assetErrorMessage(err, "could not register the asset, check whether it already exists"))
		return err
	}

	s.notify.Success("asset registered")
	return s.Fetch(ctx)
}

// Update changes an asset and resyncs.
func (s *AssetsStore) Update(ctx context.Context, id uint64, editable records.AssetEditable) error {
	editable = editable.Normalized()
	if err := editable.Validate(); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	var updated records.Asset
	if err := s.api.Patch(ctx, fmt.Sprintf("/assets/%d/", id), editable, &updated); err != nil {
		s.notify.Error(s.assetErrorMessage(err, "could not save the changes, check for duplicated information"))
		return err
	}

	s.notify.Success("asset updated")
	return s.Fetch(ctx)
}

// Delete removes an asset and resyncs.
func (s *AssetsStore) Delete(ctx context.Context, id uint64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/assets/%d/", id)); err != nil {
		s.notify.Error("could not delete the asset")
		return err
	}

	s.notify.Success("asset deleted")
	return s.Fetch(ctx)
}

func (s *AssetsStore) assetErrorMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if fieldMessage := apiErr.FieldMessage("code"); fieldMessage != "" {
			return fieldMessage
		}
	}

	return fallback
}
