// Package dashboard wires the granaboard client together. An App is the
// composition root: it owns one instance of every store, built from a
// single API client at application start and injected into the
// presentation layer. There is no package-level store state.
package dashboard

import (
	"context"

	"github.com/granaboard/client-go/pkg/api"
	"github.com/granaboard/client-go/pkg/stores"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// App holds the stores of the dashboard. It is created once at application
// boot and lives for the whole session.
type App struct {
	Expenses     *stores.ExpensesStore
	Categories   *stores.CategoriesStore
	Installments *stores.InstallmentsStore
	Assets       *stores.AssetsStore
	Dividends    *stores.DividendsStore
	Investments  *stores.InvestmentsStore
}

// Option configures an App.
type Option func(*settings)

type settings struct {
	notify stores.Notifier
}

// WithNotifier sets the notifier that receives the stores' ephemeral
// messages, usually the presentation layer's toast host.
func WithNotifier(n stores.Notifier) Option {
	return func(s *settings) {
		s.notify = n
	}
}

// New returns an App with all stores bound to client.
func New(client *api.Client, options ...Option) *App {
	s := settings{notify: stores.NewLogNotifier(log.Logger)}
	for _, option := range options {
		option(&s)
	}

	return &App{
		Expenses:     stores.NewExpensesStore(client, s.notify),
		Categories:   stores.NewCategoriesStore(client, s.notify),
		Installments: stores.NewInstallmentsStore(client, s.notify),
		Assets:       stores.NewAssetsStore(client, s.notify),
		Dividends:    stores.NewDividendsStore(client, s.notify),
		Investments:  stores.NewInvestmentsStore(client, s.notify),
	}
}

// LoadAll warms every store concurrently with its default filters and
// returns the first error encountered.
func (a *App) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return a.Expenses.Fetch(ctx, stores.ExpenseFilters{}) })
	g.Go(func() error { return a.Categories.Fetch(ctx) })
	g.Go(func() error { return a.Installments.Fetch(ctx) })
	g.Go(func() error { return a.Assets.Fetch(ctx) })
	g.Go(func() error { return a.Dividends.Fetch(ctx, stores.CardFilters{}, 1) })
	g.Go(func() error { return a.Investments.Fetch(ctx, stores.CardFilters{}, 1) })

	return g.Wait()
}
