package visit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ehr/patientdesk/internal/platform/logging"
	"github.com/ehr/patientdesk/internal/platform/metrics"
)

const component = "visit"

type Service struct {
	mu      sync.Mutex
	history *History
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

func NewService(logger zerolog.Logger) *Service {
	return &Service{
		history: NewHistory(),
		logger:  logger.With().Str("component", component).Logger(),
	}
}

// SetMetrics attaches an optional metrics sink to the service.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// Record notes that the doctor visited patientID.
func (s *Service) Record(ctx context.Context, patientID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.history.Push(patientID)
	s.observe(ctx, "push", patientID, err)
	return err
}

// Last removes and returns the most recently visited patient.
func (s *Service) Last(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.history.Pop()
	s.observe(ctx, "pop", id, err)
	return id, err
}

func (s *Service) Depth() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Len(), s.history.Capacity()
}

func (s *Service) observe(ctx context.Context, op string, patientID int, err error) {
	s.metrics.Observe(component, op, err)
	s.metrics.SetSize(component, s.history.Len())

	log := logging.FromContext(ctx, &s.logger)
	if err != nil {
		log.Warn().Err(err).Str("operation", op).Msg("visit history rejected")
		return
	}
	log.Debug().Str("operation", op).Int("patient_id", patientID).Msg("visit history updated")
}
