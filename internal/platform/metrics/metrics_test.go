package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ehr/patientdesk/internal/platform/bounded"
)

func TestOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, OutcomeOK},
		{bounded.NewFull("appointment queue"), OutcomeFull},
		{bounded.NewEmpty("visit history"), OutcomeEmpty},
		{errors.New("boom"), OutcomeError},
	}
	for _, tc := range cases {
		if got := Outcome(tc.err); got != tc.want {
			t.Errorf("Outcome(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestMetrics_ObserveAndSize(t *testing.T) {
	m := New()
	m.Observe("appointment", "schedule", nil)
	m.Observe("appointment", "schedule", nil)
	m.Observe("appointment", "schedule", bounded.NewFull("appointment queue"))
	m.SetSize("appointment", 2)

	if got := testutil.ToFloat64(m.operations.WithLabelValues("appointment", "schedule", OutcomeOK)); got != 2 {
		t.Errorf("ok count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("appointment", "schedule", OutcomeFull)); got != 1 {
		t.Errorf("full count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.size.WithLabelValues("appointment")); got != 2 {
		t.Errorf("size = %v, want 2", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.Observe("visit", "push", nil)
	m.SetSize("visit", 1)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.Observe("emergency", "insert", nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := m.Handler()(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "patientdesk_operations_total") {
		t.Error("expected exposition to contain patientdesk_operations_total")
	}
}
