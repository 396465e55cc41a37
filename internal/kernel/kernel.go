// Package kernel is the storefront's composition root. It opens the record
// store once, builds repositories and services on top of it, and wires event
// listeners. The CLI and the HTTP server both run against a *Kernel.
package kernel

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/clock"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/recordstore"
	"github.com/shashiranjanraj/storefront/pkg/workerpool"
)

// Options controls what New wires. Zero values fall back to defaults.
type Options struct {
	Store recordstore.Store
	Clock clock.Clock

	// Publisher receives order.created and user.registered events when set.
	// Deliveries run on a small worker pool, off the service call.
	Publisher Forwarder
}

// Forwarder hands events to something outside the process. *event.Publisher
// implements it.
type Forwarder interface {
	Forward(event string) event.Handler
	Close() error
}

// publishBacklog bounds how many undelivered events may queue up before new
// ones are dropped.
const publishBacklog = 64

type Kernel struct {
	Store  recordstore.Store
	Events *event.Dispatcher

	Products *repositories.ProductRepository
	Users    *repositories.UserRepository

	Catalog *services.CatalogService
	Auth    *services.AuthService
	Cart    *services.CartService
	Orders  *services.OrderService

	closers []func() error
}

// New builds a kernel over opts.Store and seeds the catalog if it is empty.
func New(opts Options) (*Kernel, error) {
	if opts.Store == nil {
		return nil, errors.New("kernel: no record store")
	}
	store := metrics.InstrumentStore(opts.Store)

	k := &Kernel{Store: store, Events: event.NewDispatcher()}
	k.closers = append(k.closers, store.Close)

	k.Products = repositories.NewProductRepository(store)
	k.Users = repositories.NewUserRepository(store)
	k.Catalog = services.NewCatalogService(k.Products)

	if seeded, err := k.Catalog.Seed(); err != nil {
		return nil, fmt.Errorf("kernel: seed catalog: %w", err)
	} else if seeded {
		logger.Info("catalog seeded")
	}

	k.Auth = services.NewAuthService(k.Users, k.Events)

	cart, err := services.NewCartService(repositories.NewCartRepository(store, k.Products))
	if err != nil {
		return nil, fmt.Errorf("kernel: load cart: %w", err)
	}
	k.Cart = cart

	k.Orders = services.NewOrderService(
		repositories.NewOrderRepository(store, k.Products), k.Cart, k.Auth, opts.Clock, k.Events)

	k.Events.Listen(services.EventOrderCreated, func(p any) {
		if o, ok := p.(models.Order); ok {
			metrics.RecordOrder(o.Total)
		}
	})
	if opts.Publisher != nil {
		pool := workerpool.New(2, publishBacklog)
		for _, name := range []string{services.EventOrderCreated, services.EventUserRegistered} {
			k.Events.Listen(name, queued(pool, name, opts.Publisher.Forward(name)))
		}
		// Drain queued deliveries before the connection goes away.
		k.closers = append(k.closers, pool.Close, opts.Publisher.Close)
	}

	return k, nil
}

// queued defers h onto pool. A full backlog drops the event with a warning.
func queued(pool *workerpool.Pool, name string, h event.Handler) event.Handler {
	return func(payload any) {
		if err := pool.Submit(func() { h(payload) }); err != nil {
			logger.Warn("event not forwarded", "event", name, "error", err)
		}
	}
}

// Boot loads configuration, opens the configured store and optional
// integrations (Mongo log sink, AMQP publisher) and returns a ready kernel.
func Boot() (*Kernel, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	var extra []func() error
	if uri := config.LogMongoURI(); uri != "" {
		closeLogs, err := logger.AttachMongo(uri, config.LogMongoDB(), config.LogMongoCollection())
		if err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		} else {
			extra = append(extra, func() error { closeLogs(); return nil })
		}
	}

	store, err := recordstore.Open()
	if err != nil {
		return nil, err
	}

	opts := Options{Store: store}
	if url := config.AMQPURL(); url != "" {
		pub, err := event.DialPublisher(url, config.AMQPOrderQueue())
		if err != nil {
			logger.Warn("order queue unavailable, events stay local", "error", err)
		} else {
			opts.Publisher = pub
		}
	}

	k, err := New(opts)
	if err != nil {
		store.Close()
		if opts.Publisher != nil {
			opts.Publisher.Close()
		}
		return nil, err
	}
	k.closers = append(k.closers, extra...)
	return k, nil
}

// Close releases the store and integrations in the order they were opened.
func (k *Kernel) Close() error {
	var errs []error
	for _, c := range k.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
