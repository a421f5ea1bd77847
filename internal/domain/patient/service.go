package patient

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ehr/patientdesk/internal/platform/logging"
	"github.com/ehr/patientdesk/internal/platform/metrics"
)

const component = "patient"

type Service struct {
	mu      sync.Mutex
	reg     *Registry
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

func NewService(logger zerolog.Logger) *Service {
	return &Service{
		reg:    NewRegistry(),
		logger: logger.With().Str("component", component).Logger(),
	}
}

// SetMetrics attaches an optional metrics sink to the service.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

func (s *Service) Register(ctx context.Context, id int, name string, age int, disease string) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.reg.Register(id, name, age, disease)
	s.metrics.Observe(component, "register", nil)
	s.metrics.SetSize(component, s.reg.Len())
	logging.FromContext(ctx, &s.logger).Debug().
		Int("patient_id", rec.ID).
		Int("registered", s.reg.Len()).
		Msg("patient registered")
	return rec
}

func (s *Service) ListAll(_ context.Context) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.ListAll()
}

func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Len()
}
