package testimplementations

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrRegistrationRejected = errors.New("registration rejected")

// TestMetricsRegisterer records registered collectors. If Reject is set, every registration fails.
type TestMetricsRegisterer struct {
	Reject     bool
	Collectors []prometheus.Collector
}

var _ prometheus.Registerer = &TestMetricsRegisterer{}

func (tm *TestMetricsRegisterer) Register(collector prometheus.Collector) error {
	if tm.Reject {
		return ErrRegistrationRejected
	}
	tm.Collectors = append(tm.Collectors, collector)
	return nil
}

func (tm *TestMetricsRegisterer) MustRegister(collectors ...prometheus.Collector) {
	for _, c := range collectors {
		if err := tm.Register(c); err != nil {
			panic(err)
		}
	}
}

func (tm *TestMetricsRegisterer) Unregister(collector prometheus.Collector) bool {
	for i, c := range tm.Collectors {
		if c == collector {
			tm.Collectors = append(tm.Collectors[:i], tm.Collectors[i+1:]...)
			return true
		}
	}
	return false
}
