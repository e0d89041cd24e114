package app

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/davess/kview/internal/kube"
	"github.com/davess/kview/internal/state"
)

const (
	defaultPollInterval = 5 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store
// at a fixed cadence, backing off while the backend is unreachable. It
// returns immediately.
func StartPoller(ctx context.Context, store *state.Store, client kube.Fetcher, interval time.Duration, logger *log.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			if err := refresh(ctx, store, client); err != nil {
				failures++
				logger.Error("poll failed", "err", err, "consecutive", failures)
			} else {
				failures = 0
			}

			wait := calculateBackoff(failures, interval)
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}
		}
	}()
}

// refresh fetches all resource lists and replaces the snapshot. On any
// fetch error the snapshot keeps its previous data.
func refresh(ctx context.Context, store *state.Store, client kube.Fetcher) error {
	workloads, err := client.FetchWorkloads(ctx)
	if err != nil {
		store.Update(nil, nil, nil, err)
		return err
	}
	events, err := client.FetchEvents(ctx, "")
	if err != nil {
		store.Update(nil, nil, nil, err)
		return err
	}
	namespaces, err := client.FetchNamespaces(ctx)
	if err != nil {
		store.Update(nil, nil, nil, err)
		return err
	}
	store.Update(workloads, events, namespaces, nil)
	return nil
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
