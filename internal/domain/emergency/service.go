package emergency

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ehr/patientdesk/internal/platform/logging"
	"github.com/ehr/patientdesk/internal/platform/metrics"
)

const component = "emergency"

// Status summarizes the heap for display. Next is nil when no case waits.
type Status struct {
	Waiting  int   `json:"waiting"`
	Capacity int   `json:"capacity"`
	Next     *Case `json:"next,omitempty"`
}

type Service struct {
	mu      sync.Mutex
	heap    *Heap
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

func NewService(logger zerolog.Logger) *Service {
	return &Service{
		heap:   NewHeap(),
		logger: logger.With().Str("component", component).Logger(),
	}
}

// SetMetrics attaches an optional metrics sink to the service.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

func (s *Service) Admit(ctx context.Context, patientID, severity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.heap.Insert(patientID, severity)
	s.record(ctx, "insert", Case{Severity: severity, PatientID: patientID}, err)
	return err
}

// TreatNext removes the most urgent case.
func (s *Service) TreatNext(ctx context.Context) (Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.heap.ExtractMin()
	s.record(ctx, "extract_min", c, err)
	return c, err
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{Waiting: s.heap.Len(), Capacity: s.heap.Capacity()}
	if next, ok := s.heap.Peek(); ok {
		st.Next = &next
	}
	return st
}

// record must be called with s.mu held.
func (s *Service) record(ctx context.Context, op string, c Case, err error) {
	s.metrics.Observe(component, op, err)
	s.metrics.SetSize(component, s.heap.Len())

	log := logging.FromContext(ctx, &s.logger)
	if err != nil {
		log.Warn().Err(err).Str("operation", op).Msg("emergency rejected")
		return
	}
	log.Info().
		Str("operation", op).
		Int("patient_id", c.PatientID).
		Int("severity", c.Severity).
		Int("waiting", s.heap.Len()).
		Msg("emergency heap updated")
}
