package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/fulldump/arrayinit/arrayinit"
	"github.com/fulldump/arrayinit/calibrate"
)

type Config struct {
	Threshold int
	MaxLength int // 0 means no limit
}

type Service struct {
	config *Config
	mutex  sync.RWMutex
	policy arrayinit.Policy
}

func NewService(config *Config) *Service { // todo: return error?
	return &Service{
		config: config,
		policy: arrayinit.Policy{Threshold: config.Threshold},
	}
}

type Allocation struct {
	Length    int                   `json:"length"`
	Defined   int                   `json:"defined"`
	Strategy  string                `json:"strategy"`
	Threshold int                   `json:"threshold"`
	Items     *arrayinit.Array[any] `json:"items,omitempty"`
}

func (s *Service) GetThreshold() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.policy.Threshold
}

func (s *Service) SetThreshold(threshold int) error {
	if threshold < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidThreshold, threshold)
	}

	s.mutex.Lock()
	s.policy.Threshold = threshold
	s.mutex.Unlock()

	return nil
}

func (s *Service) Allocate(length int) (*Allocation, error) {

	if s.config.MaxLength > 0 && length > s.config.MaxLength {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrLengthTooLarge, length, s.config.MaxLength)
	}

	s.mutex.RLock()
	policy := s.policy
	s.mutex.RUnlock()

	a, err := arrayinit.Alloc[any](policy, length)
	if err != nil {
		return nil, err
	}

	return &Allocation{
		Length:    a.Len(),
		Defined:   a.Defined(),
		Strategy:  policy.StrategyFor(length).String(),
		Threshold: policy.Threshold,
		Items:     a,
	}, nil
}

func (s *Service) Calibrate(ctx context.Context, c calibrate.Config, apply bool) (*calibrate.Report, error) {

	if s.config.MaxLength > 0 {
		for _, l := range c.Lengths {
			if l > s.config.MaxLength {
				return nil, fmt.Errorf("%w: %d exceeds %d", ErrLengthTooLarge, l, s.config.MaxLength)
			}
		}
	}

	report, err := calibrate.Run(ctx, c)
	if err != nil {
		return nil, err
	}

	if apply {
		s.mutex.Lock()
		s.policy.Threshold = report.Threshold
		s.mutex.Unlock()
	}

	return report, nil
}
