package main

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"hosting/internal/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// startupOrder records lifecycle events in the order they happen.
type startupOrder struct {
	mu     sync.Mutex
	events []string
}

func (o *startupOrder) add(event string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *startupOrder) snapshot() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.events...)
}

type fakeStore struct{}

type fakeDelivery struct {
	order  *startupOrder
	served chan struct{}
}

func (d *fakeDelivery) Serve(context.Context) error {
	d.order.add("serve")
	close(d.served)

	return nil
}

func TestStartServer_ServesAfterStoreHooks(t *testing.T) {
	order := &startupOrder{}
	served := make(chan struct{})

	app := fxtest.New(t,
		fx.Supply(order),
		fx.Provide(
			context.Background,
			func() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) },
			func(lc fx.Lifecycle, order *startupOrder) *fakeStore {
				lc.Append(fx.Hook{OnStart: func(context.Context) error {
					order.add("store ready")

					return nil
				}})

				return &fakeStore{}
			},
			fx.Annotate(
				func(_ *fakeStore, order *startupOrder) delivery.Delivery {
					return &fakeDelivery{order: order, served: served}
				},
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	)

	assert.Empty(t, order.snapshot(), "nothing runs before the lifecycle starts")

	app.RequireStart()
	defer app.RequireStop()

	select {
	case <-served:
	case <-time.After(time.Second):
		require.FailNow(t, "delivery was never served")
	}
	assert.Equal(t, []string{"store ready", "serve"}, order.snapshot())
}

func TestStartServer_FailedServeShutsDown(t *testing.T) {
	app := fxtest.New(t,
		fx.Provide(
			context.Background,
			func() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) },
			fx.Annotate(
				func() delivery.Delivery { return failingDelivery{} },
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	)

	app.RequireStart()
	defer app.RequireStop()

	select {
	case sig := <-app.Wait():
		assert.Equal(t, 1, sig.ExitCode)
	case <-time.After(time.Second):
		require.FailNow(t, "application was not shut down")
	}
}

type failingDelivery struct{}

func (failingDelivery) Serve(context.Context) error {
	return assert.AnError
}
