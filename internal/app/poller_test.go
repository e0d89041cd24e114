package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/davess/kview/internal/kube"
	"github.com/davess/kview/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	base := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second},
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, base)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, base, got, tt.want)
			}
		})
	}
}

// fakeFetcher implements kube.Fetcher for refresh tests.
type fakeFetcher struct {
	workloads []kube.Workload
	events    []kube.Event
	nss       []string
	err       error
}

func (f *fakeFetcher) FetchWorkloads(context.Context) ([]kube.Workload, error) {
	return f.workloads, f.err
}

func (f *fakeFetcher) FetchEvents(context.Context, string) ([]kube.Event, error) {
	return f.events, f.err
}

func (f *fakeFetcher) FetchNamespaces(context.Context) ([]string, error) {
	return f.nss, f.err
}

func TestRefresh_PopulatesStore(t *testing.T) {
	store := &state.Store{}
	fetcher := &fakeFetcher{
		workloads: []kube.Workload{{Name: "api"}},
		events:    []kube.Event{{Reason: "Created"}},
		nss:       []string{"prod"},
	}

	if err := refresh(context.Background(), store, fetcher); err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}

	snap := store.Snapshot()
	if len(snap.Workloads) != 1 || len(snap.Events) != 1 || len(snap.Namespaces) != 1 {
		t.Fatalf("snapshot = %d/%d/%d items, want 1/1/1", len(snap.Workloads), len(snap.Events), len(snap.Namespaces))
	}
}

func TestRefresh_ErrorRecordedAndDataKept(t *testing.T) {
	store := &state.Store{}
	ok := &fakeFetcher{workloads: []kube.Workload{{Name: "api"}}}
	if err := refresh(context.Background(), store, ok); err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}

	broken := &fakeFetcher{err: errors.New("backend down")}
	if err := refresh(context.Background(), store, broken); err == nil {
		t.Fatalf("refresh succeeded against a broken fetcher")
	}

	snap := store.Snapshot()
	if len(snap.Workloads) != 1 {
		t.Fatalf("previous workloads lost on error: %#v", snap.Workloads)
	}
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want recorded error")
	}
}
