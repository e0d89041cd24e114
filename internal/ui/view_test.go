package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/davess/kview/internal/state"
)

func testModel(t *testing.T, snap state.Snapshot) Model {
	t.Helper()
	m := New(Options{})
	m.width = 120
	m.height = 30
	m.snapshot = snap
	m.recompute()
	return m
}

func TestViewHeaderShowsLastError(t *testing.T) {
	m := testModel(t, state.Snapshot{
		LastError:           errors.New("connection refused"),
		ConsecutiveFailures: 1,
	})

	header := m.viewHeader()
	if !strings.Contains(header, "connection refused") {
		t.Fatalf("header should surface the poll error, got %q", header)
	}
}

func TestViewHeaderShowsOffline(t *testing.T) {
	m := testModel(t, state.Snapshot{
		LastError:           errors.New("connection refused"),
		ConsecutiveFailures: 2,
	})

	header := m.viewHeader()
	if !strings.Contains(header, "offline") {
		t.Fatalf("header should flag offline after repeated failures, got %q", header)
	}
}

func TestViewRendersBothScreens(t *testing.T) {
	m := testModel(t, workloadSnapshot(3))

	out := m.View()
	if !strings.Contains(out, "app-000") {
		t.Fatalf("workloads view should list rows, got %q", out)
	}

	m.currentView = ViewEvents
	m.snapshot = eventSnapshot(3)
	m.recompute()
	out = m.View()
	if !strings.Contains(out, "Scheduled") {
		t.Fatalf("events view should list rows, got %q", out)
	}
}
