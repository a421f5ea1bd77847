package appointment

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ehr/patientdesk/internal/platform/logging"
	"github.com/ehr/patientdesk/internal/platform/metrics"
)

const component = "appointment"

// Status summarizes the queue for display.
type Status struct {
	Pending   int `json:"pending"`
	Remaining int `json:"remaining"`
	Capacity  int `json:"capacity"`
}

type Service struct {
	mu      sync.Mutex
	queue   *Queue
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

func NewService(logger zerolog.Logger) *Service {
	return &Service{
		queue:  NewQueue(),
		logger: logger.With().Str("component", component).Logger(),
	}
}

// SetMetrics attaches an optional metrics sink to the service.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

func (s *Service) Schedule(ctx context.Context, patientID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.queue.Schedule(patientID)
	s.record(ctx, "schedule", patientID, err)
	return err
}

func (s *Service) ProcessNext(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.queue.ProcessNext()
	s.record(ctx, "process", id, err)
	return id, err
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Pending:   s.queue.Pending(),
		Remaining: s.queue.Remaining(),
		Capacity:  s.queue.Capacity(),
	}
}

// record must be called with s.mu held.
func (s *Service) record(ctx context.Context, op string, patientID int, err error) {
	s.metrics.Observe(component, op, err)
	s.metrics.SetSize(component, s.queue.Pending())

	log := logging.FromContext(ctx, &s.logger)
	if err != nil {
		log.Warn().Err(err).Str("operation", op).Msg("appointment rejected")
		return
	}
	log.Debug().
		Str("operation", op).
		Int("patient_id", patientID).
		Int("pending", s.queue.Pending()).
		Msg("appointment queue updated")
}
