package material

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Metric selects the color distance used to find the nearest entry.
type Metric string

const (
	MetricCIEDE2000 Metric = "ciede2000"
	MetricLab       Metric = "lab"
	MetricRGB       Metric = "rgb"
)

// DefaultMetric is used when no metric is configured.
const DefaultMetric = MetricCIEDE2000

// Metrics lists the supported metrics.
var Metrics = []Metric{MetricCIEDE2000, MetricLab, MetricRGB}

// ParseMetric resolves a metric name. The empty string selects DefaultMetric.
func ParseMetric(name string) (Metric, error) {
	if name == "" {
		return DefaultMetric, nil
	}
	for _, m := range Metrics {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q (use ciede2000, lab or rgb)", name)
}

func (m Metric) distance(a, b colorful.Color) float64 {
	switch m {
	case MetricLab:
		return a.DistanceLab(b)
	case MetricRGB:
		return a.DistanceRgb(b)
	default:
		return a.DistanceCIEDE2000(b)
	}
}
