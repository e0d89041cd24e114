package kube

import (
	"strconv"
	"time"
)

// Workload describes one workload-style resource row (deployment,
// daemonset, statefulset) as returned by /api/v1/workloads.
type Workload struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
	Kind      string `json:"kind"`
	Status    string `json:"status"`
	Ready     int    `json:"ready"`
	Desired   int    `json:"desired"`
	Restarts  int    `json:"restarts"`
	Node      string `json:"node"`
	CreatedAt string `json:"createdAt"`
}

// Key identifies the workload across refreshes.
func (w Workload) Key() string {
	return w.Namespace + "/" + w.Kind + "/" + w.Name
}

// ReadyRatio returns ready/desired in [0,1]. Zero desired replicas count
// as fully ready so scaled-down workloads sort with the healthy ones.
func (w Workload) ReadyRatio() float64 {
	if w.Desired <= 0 {
		return 1
	}
	r := float64(w.Ready) / float64(w.Desired)
	if r > 1 {
		r = 1
	}
	return r
}

// ReadyLabel renders the ready column as "ready/desired".
func (w Workload) ReadyLabel() string {
	return strconv.Itoa(w.Ready) + "/" + strconv.Itoa(w.Desired)
}

// ParsedCreatedAt returns the creation time, or zero when unparseable.
func (w Workload) ParsedCreatedAt() time.Time {
	return parseTime(w.CreatedAt)
}

// Event describes one cluster event row from /api/v1/events.
type Event struct {
	Namespace string `json:"namespace"`
	Type      string `json:"type"`
	Reason    string `json:"reason"`
	Object    string `json:"object"`
	Message   string `json:"message"`
	Count     int    `json:"count"`
	LastSeen  string `json:"lastSeen"`
}

// Key identifies the event across refreshes. Events have no UID in the
// list payload; namespace+object+reason+lastSeen is stable enough to keep
// selection from jumping on refresh.
func (e Event) Key() string {
	return e.Namespace + "/" + e.Object + "/" + e.Reason + "@" + e.LastSeen
}

// ParsedLastSeen returns the last-seen time, or zero when unparseable.
func (e Event) ParsedLastSeen() time.Time {
	return parseTime(e.LastSeen)
}

// WorkloadListResponse mirrors /api/v1/workloads.
type WorkloadListResponse struct {
	Items []Workload `json:"items"`
}

// EventListResponse mirrors /api/v1/events.
type EventListResponse struct {
	Items []Event `json:"items"`
}

// NamespaceListResponse mirrors /api/v1/namespaces.
type NamespaceListResponse struct {
	Items []string `json:"items"`
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
