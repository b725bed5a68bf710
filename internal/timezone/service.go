package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Service resolves coordinates to IANA timezone names. It backs the
// location.timezone field of tool results when the upstream response does
// not carry one.
type Service interface {
	Resolve(latitude, longitude float64) (string, error)
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// Singleton because tzf.Finder loads timezone polygon data into memory.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// Resolve returns the IANA timezone name (e.g. "Asia/Jakarta") for the given
// coordinates.
func (s *service) Resolve(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for lat=%f, lon=%f", latitude, longitude)
	}
	return name, nil
}
