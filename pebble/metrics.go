// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "ledger_store"

	levelLabel = "level"
	levelZero  = "l0"
	levelOther = "other"
)

// metrics tracks how invocation batches reach disk.
type metrics struct {
	stallStart time.Time
	stall      metric.Averager
	read       metric.Averager

	commits       prometheus.Counter
	committedOps  prometheus.Counter
	failedCommits prometheus.Counter
	compactions   *prometheus.CounterVec
	compacting    prometheus.Gauge
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	stall, err := metric.NewAverager(
		metricsNamespace+"_write_stall",
		"time invocation commits spent blocked on a write stall",
		r,
	)
	if err != nil {
		return nil, nil, err
	}
	read, err := metric.NewAverager(
		metricsNamespace+"_read",
		"time spent reading a contract record",
		r,
	)
	if err != nil {
		return nil, nil, err
	}
	m := &metrics{
		stall: stall,
		read:  read,
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "commits",
			Help:      "number of committed invocation batches",
		}),
		committedOps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "committed_ops",
			Help:      "number of record writes and deletes in committed batches",
		}),
		failedCommits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "failed_commits",
			Help:      "number of invocation batches pebble refused",
		}),
		compactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "compactions",
			Help:      "number of compactions started, by input level",
		}, []string{levelLabel}),
		compacting: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "compacting",
			Help:      "number of compactions in progress",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.commits),
		r.Register(m.committedOps),
		r.Register(m.failedCommits),
		r.Register(m.compactions),
		r.Register(m.compacting),
	)
	return r, m, errs.Err
}

// observeCommit records the outcome of writing a batch of [ops] records.
func (m *metrics) observeCommit(ops int, err error) {
	if err != nil {
		m.failedCommits.Inc()
		return
	}
	m.commits.Inc()
	m.committedOps.Add(float64(ops))
}

func (d *Database) onCompactionBegin(info pebble.CompactionInfo) {
	d.metrics.compacting.Inc()
	level := levelOther
	if len(info.Input) > 0 && info.Input[0].Level == 0 {
		level = levelZero
	}
	d.metrics.compactions.WithLabelValues(level).Inc()
}

func (d *Database) onCompactionEnd(pebble.CompactionInfo) {
	d.metrics.compacting.Dec()
}

func (d *Database) onWriteStallBegin(pebble.WriteStallBeginInfo) {
	d.metrics.stallStart = time.Now()
}

func (d *Database) onWriteStallEnd() {
	d.metrics.stall.Observe(float64(time.Since(d.metrics.stallStart)))
}
