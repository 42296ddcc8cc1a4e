package ec

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	decodeFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecgfp",
		Name:      "point_decode_failures_total",
		Help:      "Number of rejected point encodings, by curve and reason.",
	}, []string{"curve", "reason"})

	scalarMults = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecgfp",
		Name:      "scalar_multiplications_total",
		Help:      "Number of scalar multiplications, by curve.",
	}, []string{"curve"})
)

// RegisterMetrics registers the package's collectors with reg. Registering with the same registerer twice is not
// an error.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{decodeFailures, scalarMults} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
