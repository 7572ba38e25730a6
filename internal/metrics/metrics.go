package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what a parser reads. It satisfies parser.Observer.
type Metrics struct {
	lines       prometheus.Counter
	expressions prometheus.Counter
	errors      *prometheus.CounterVec
}

// New creates the reader metrics and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		lines: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sexpr_lines_total",
				Help: "Lines of text pulled from token sources",
			},
		),
		expressions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sexpr_expressions_total",
				Help: "Expressions read successfully",
			},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sexpr_read_errors_total",
				Help: "Failed reads, partitioned by kind i.e. unexpected_token, unexpected_eof, malformed_dotted_pair",
			}, []string{"kind"},
		),
	}

	for _, c := range []prometheus.Collector{m.lines, m.expressions, m.errors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// LinesRead counts n more lines pulled from a source.
func (m *Metrics) LinesRead(n int) {
	m.lines.Add(float64(n))
}

// ExpressionRead counts one complete expression.
func (m *Metrics) ExpressionRead() {
	m.expressions.Inc()
}

// ReadFailed counts one failed read under the given error kind.
func (m *Metrics) ReadFailed(kind string) {
	m.errors.WithLabelValues(kind).Inc()
}
