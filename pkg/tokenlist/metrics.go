package tokenlist

import (
	"strconv"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts accepted and rejected token list entries.
type Metrics struct {
	loaded   *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		loaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dexsdk",
				Subsystem: "tokenlist",
				Name:      "tokens_loaded_total",
				Help:      "Number of tokens accepted from token lists.",
			},
			[]string{"chain"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dexsdk",
				Subsystem: "tokenlist",
				Name:      "tokens_rejected_total",
				Help:      "Number of token list entries rejected during validation.",
			},
			[]string{"reason"},
		),
	}
	reg.MustRegister(m.loaded)
	reg.MustRegister(m.rejected)
	return m
}

func (m *Metrics) tokenLoaded(chainID constants.ChainID) {
	if m == nil {
		return
	}
	m.loaded.WithLabelValues(strconv.FormatInt(int64(chainID), 10)).Inc()
}

func (m *Metrics) tokenRejected(reason Reason) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(string(reason)).Inc()
}
