package state

import (
	"errors"
	"testing"
	"time"

	"github.com/davess/kview/internal/kube"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	workloads := []kube.Workload{{Name: "api"}, {Name: "worker"}}
	events := []kube.Event{{Reason: "BackOff"}}

	before := time.Now()
	s.Update(workloads, events, []string{"prod"}, nil)

	snap := s.Snapshot()
	if len(snap.Workloads) != 2 || snap.Workloads[0].Name != "api" {
		t.Fatalf("snapshot workloads = %#v, want 2 items", snap.Workloads)
	}
	if len(snap.Events) != 1 || len(snap.Namespaces) != 1 {
		t.Fatalf("snapshot events/namespaces = %d/%d, want 1/1", len(snap.Events), len(snap.Namespaces))
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Workloads[0].Name = "mutated"
	snap2 := s.Snapshot()
	if snap2.Workloads[0].Name != "api" {
		t.Fatalf("Snapshot should clone workloads; got %q want %q", snap2.Workloads[0].Name, "api")
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update([]kube.Workload{{Name: "api"}}, nil, nil, nil)

	s.Update(nil, nil, nil, errors.New("boom"))
	snap := s.Snapshot()
	if len(snap.Workloads) != 1 || snap.Workloads[0].Name != "api" {
		t.Fatalf("workloads changed on error: %#v", snap.Workloads)
	}
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want recorded error")
	}
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
}

func TestSnapshot_IsOfflineAfterRepeatedFailures(t *testing.T) {
	var s Store

	s.Update(nil, nil, nil, errors.New("down"))
	if s.Snapshot().IsOffline() {
		t.Fatalf("offline after a single failure")
	}
	s.Update(nil, nil, nil, errors.New("still down"))
	if !s.Snapshot().IsOffline() {
		t.Fatalf("not offline after two consecutive failures")
	}

	s.Update(nil, nil, nil, nil)
	if s.Snapshot().IsOffline() {
		t.Fatalf("still offline after a successful poll")
	}
}
