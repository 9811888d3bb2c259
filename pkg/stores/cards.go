package stores

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/granaboard/client-go/internal/types"
	"github.com/granaboard/client-go/pkg/api"
	"github.com/granaboard/client-go/pkg/records"
	"github.com/rs/zerolog/log"
)

// monthCarded is implemented by the month-card records.
type monthCarded interface {
	Key() types.Month
}

// CardFilters narrow a month-card fetch. Zero fields are left out of the
// query, requesting all cards.
type CardFilters struct {
	Year  int
	Month int
}

func (f CardFilters) values(page int) url.Values {
	values := url.Values{}
	if f.Year != 0 {
		values.Set("year", strconv.Itoa(f.Year))
	}
	if f.Month != 0 {
		values.Set("month", strconv.Itoa(f.Month))
	}
	values.Set("page", strconv.Itoa(page))

	return values
}

// cardStore is the month-card specialization of the collection store: the
// top-level collection is a paginated set of (month, year) keyed cards,
// each holding a nested list of line items.
type cardStore[C monthCarded] struct {
	api    *api.Client
	notify Notifier
	col    collection[C]

	cardsPath string
	loadErr   error

	mu      sync.Mutex
	filters CardFilters
	page    int
}

// Snapshot returns the current state of the card collection. Count carries
// the total number of cards across all pages.
func (s *cardStore[C]) Snapshot() Snapshot[C] {
	return s.col.snapshot()
}

// Fetch replaces the snapshot with the requested page of cards. Filters and
// page are remembered and reused by the resync after every mutation.
func (s *cardStore[C]) Fetch(ctx context.Context, filters CardFilters, page int) error {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	s.filters = filters
	s.page = page
	s.mu.Unlock()

	token := s.col.begin()

	var result api.Page[C]
	err := s.api.Get(ctx, s.cardsPath, filters.values(page), &result)
	if err != nil {
		log.Error().Err(err).Str("path", s.cardsPath).Msg("fetching month cards")
		if s.col.complete(token, nil, 0, s.loadErr) {
			s.notify.Error(s.loadErr.Error())
		}
		return s.loadErr
	}

	s.col.complete(token, result.Results, result.Count, nil)
	return nil
}

// AddMonthCard opens a new month card. The currently loaded cards are
// scanned for a (month, year) match first: a duplicate is rejected without
// any API call. The check is advisory, the server enforces the same
// uniqueness authoritatively.
func (s *cardStore[C]) AddMonthCard(ctx context.Context, editable records.MonthCardEditable) error {
	if err := editable.Validate(); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	key := editable.Key()
	for _, card := range s.col.snapshot().Items {
		if card.Key().Equal(key) {
			s.notify.Error(ErrMonthAlreadyRegistered.Error())
			return ErrMonthAlreadyRegistered
		}
	}

	var created C
	if err := s.api.Post(ctx, s.cardsPath, editable, &created); err != nil {
		message := "could not create the month card"

		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			message = apiErr.Detail
		}

		s.notify.Error(message)
		return err
	}

	s.notify.Success("month card created")
	return s.resync(ctx)
}

// DeleteCard removes a month card and resyncs. The contained line items
// are deleted by the server.
func (s *cardStore[C]) DeleteCard(ctx context.Context, id uint64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("%s%d/", s.cardsPath, id)); err != nil {
		s.notify.Error("could not delete the month card")
		return err
	}

	s.notify.Success("month card deleted")
	return s.resync(ctx)
}

func (s *cardStore[C]) resync(ctx context.Context) error {
	s.mu.Lock()
	filters, page := s.filters, s.page
	s.mu.Unlock()

	if page < 1 {
		page = 1
	}

	return s.Fetch(ctx, filters, page)
}
