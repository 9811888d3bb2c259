package stores

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/granaboard/client-go/internal/types"
	"github.com/granaboard/client-go/pkg/api"
	"github.com/granaboard/client-go/pkg/records"
	"github.com/rs/zerolog/log"
)

// ExpenseFilters narrow the expense list fetch. The zero value requests the
// current calendar month.
type ExpenseFilters struct {
	Month  types.Month
	Search string
}

func (f ExpenseFilters) values(now time.Time) url.Values {
	month := f.Month
	if month.IsZero() {
		month = types.MonthOf(now)
	}

	values := url.Values{}
	values.Set("due_date__year", strconv.Itoa(month.Year()))
	values.Set("due_date__month", strconv.Itoa(int(month.Month())))
	if f.Search != "" {
		values.Set("search", f.Search)
	}

	return values
}

// ExpensesStore synchronizes the expense collection.
type ExpensesStore struct {
	api    *api.Client
	notify Notifier
	col    collection[records.Expense]

	mu      sync.Mutex
	filters ExpenseFilters

	now func() time.Time
}

// NewExpensesStore returns a store synchronizing against client.
func NewExpensesStore(client *api.Client, notify Notifier) *ExpensesStore {
	return &ExpensesStore{
		api:    client,
		notify: notify,
		now:    time.Now,
	}
}

// Snapshot returns the current state of the collection.
func (s *ExpensesStore) Snapshot() Snapshot[records.Expense] {
	return s.col.snapshot()
}

// Fetch replaces the snapshot with the expenses matching the filters. The
// filters are remembered and reused by the resync after every mutation.
func (s *ExpensesStore) Fetch(ctx context.Context, filters ExpenseFilters) error {
	s.mu.Lock()
	s.filters = filters
	s.mu.Unlock()

	token := s.col.begin()

	var items []records.Expense
	err := s.api.Get(ctx, "/expenses/", filters.values(s.now()), &items)
	if err != nil {
		log.Error().Err(err).Msg("fetching expenses")
		if s.col.complete(token, nil, 0, ErrLoadExpenses) {
			s.notify.Error(ErrLoadExpenses.Error())
		}
		return ErrLoadExpenses
	}

	s.col.complete(token, items, len(items), nil)
	return nil
}

// Add registers a new expense and resyncs. The error is returned to the
// caller so a form can stay open with its fields populated for retry.
func (s *ExpensesStore) Add(ctx context.Context, editable records.ExpenseEditable) error {
	if err := editable.Validate(); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	var created records.Expense
	if err := s.api.Post(ctx, "/expenses/", editable.Request(), &created); err != nil {
		s.notify.Error("could not register the expense")
		return err
	}

	s.notify.Success("expense registered")
	return s.resync(ctx)
}

// Update partially updates an expense and resyncs.
func (s *ExpensesStore) Update(ctx context.Context, id uint64, editable records.ExpenseEditable) error {
	if err := editable.Validate(); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	var updated records.Expense
	if err := s.api.Patch(ctx, fmt.Sprintf("/expenses/%d/", id), editable.Request(), &updated); err != nil {
		s.notify.Error("could not update the expense")
		return err
	}

	s.notify.Success("expense updated")
	return s.resync(ctx)
}

// MarkAsPaid marks an expense as paid with today as the payment date,
// then resyncs.
func (s *ExpensesStore) MarkAsPaid(ctx context.Context, id uint64) error {
	today := types.DateOf(s.now())
	payload := struct {
		Paid        bool       `json:"paid"`
		PaymentDate types.Date `json:"payment_date"`
	}{Paid: true, PaymentDate: today}

	var updated records.Expense
	if err := s.api.Patch(ctx, fmt.Sprintf("/expenses/%d/", id), payload, &updated); err != nil {
		s.notify.Error("could not mark the expense as paid")
		return err
	}

	s.notify.Success("expense marked as paid")
	return s.resync(ctx)
}

// Delete removes an expense and resyncs.
func (s *ExpensesStore) Delete(ctx context.Context, id uint64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/expenses/%d/", id)); err != nil {
		s.notify.Error("could not delete the expense")
		return err
	}

	s.notify.Success("expense deleted")
	return s.resync(ctx)
}

func (s *ExpensesStore) resync(ctx context.Context) error {
	s.mu.Lock()
	filters := s.filters
	s.mu.Unlock()

	return s.Fetch(ctx, filters)
}
