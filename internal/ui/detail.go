package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/davess/kview/internal/kube"
)

// openDetail fills the detail viewport from the selected row and
// switches to detail mode. No selection is a no-op.
func (m *Model) openDetail() {
	var content string
	switch m.currentView {
	case ViewWorkloads:
		w := m.workloads.selectedRow()
		if w == nil {
			return
		}
		content = m.workloadDetail(*w)
	default:
		e := m.events.selectedRow()
		if e == nil {
			return
		}
		content = m.eventDetail(*e)
	}
	m.detail.SetContent(content)
	m.detail.GotoTop()
	m.mode = modeDetail
}

func (m *Model) workloadDetail(w kube.Workload) string {
	var b strings.Builder
	title := m.styles.AccentText.Render(w.Kind + "/" + w.Name)
	b.WriteString(title + "\n\n")
	writeField(&b, m, "Namespace", w.Namespace)
	writeField(&b, m, "Kind", w.Kind)
	writeField(&b, m, "Status", w.Status)
	writeField(&b, m, "Ready", w.ReadyLabel())
	writeField(&b, m, "Restarts", fmt.Sprintf("%d", w.Restarts))
	writeField(&b, m, "Node", w.Node)
	if created := w.ParsedCreatedAt(); !created.IsZero() {
		writeField(&b, m, "Created", created.Local().Format(time.RFC1123))
		writeField(&b, m, "Age", formatAge(time.Now(), created))
	}
	return b.String()
}

func (m *Model) eventDetail(e kube.Event) string {
	var b strings.Builder
	title := m.styles.AccentText.Render(e.Reason)
	b.WriteString(title + "\n\n")
	writeField(&b, m, "Object", e.Object)
	writeField(&b, m, "Namespace", e.Namespace)
	writeField(&b, m, "Type", e.Type)
	writeField(&b, m, "Count", fmt.Sprintf("%d", e.Count))
	if seen := e.ParsedLastSeen(); !seen.IsZero() {
		writeField(&b, m, "Last seen", seen.Local().Format(time.RFC1123))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("Message") + "\n")
	b.WriteString(m.styles.Text.Render(e.Message) + "\n")
	return b.String()
}

func writeField(b *strings.Builder, m *Model, label, value string) {
	if value == "" {
		value = "-"
	}
	b.WriteString(m.styles.MutedText.Render(pad(label, 12)))
	b.WriteString(m.styles.Text.Render(value))
	b.WriteString("\n")
}
