// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"context"

	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	ametrics "github.com/ava-labs/avalanchego/api/metrics"

	"github.com/ava-labs/convertervm/converter"
	"github.com/ava-labs/convertervm/event"
	"github.com/ava-labs/convertervm/host"
	"github.com/ava-labs/convertervm/token"
)

var _ event.Subscription[host.Log] = (*Subscriber)(nil)

type metrics struct {
	conversions      prometheus.Counter
	priceUpdates     prometheus.Counter
	connectorUpdates prometheus.Counter
	registryUpdates  prometheus.Counter
	settingUpdates   prometheus.Counter
	withdrawals      prometheus.Counter
	ownerUpdates     prometheus.Counter

	transfers    prometheus.Counter
	issuances    prometheus.Counter
	destructions prometheus.Counter
	unknown      prometheus.Counter
}

// Subscriber counts the events committed by a ledger.
type Subscriber struct {
	m *metrics
}

// New registers the event counters with [gatherer] under [namespace].
func New(gatherer ametrics.MultiGatherer, namespace string) (*Subscriber, error) {
	m := &metrics{
		conversions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "converter",
			Name:      "conversions",
			Help:      "number of conversions",
		}),
		priceUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "converter",
			Name:      "price_updates",
			Help:      "number of connector price data updates",
		}),
		connectorUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "converter",
			Name:      "connector_updates",
			Help:      "number of connector additions and changes",
		}),
		registryUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "converter",
			Name:      "registry_updates",
			Help:      "number of registry switches",
		}),
		settingUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "converter",
			Name:      "setting_updates",
			Help:      "number of fee, conversion and registry update toggles",
		}),
		withdrawals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "converter",
			Name:      "withdrawals",
			Help:      "number of token withdrawals",
		}),
		ownerUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "converter",
			Name:      "owner_updates",
			Help:      "number of owner, manager and token ownership changes",
		}),
		transfers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "token",
			Name:      "transfers",
			Help:      "number of token transfers",
		}),
		issuances: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "token",
			Name:      "issuances",
			Help:      "number of token issuances",
		}),
		destructions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "token",
			Name:      "destructions",
			Help:      "number of token destructions",
		}),
		unknown: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "host",
			Name:      "other_events",
			Help:      "number of events without a dedicated counter",
		}),
	}
	r := prometheus.NewRegistry()
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.conversions),
		r.Register(m.priceUpdates),
		r.Register(m.connectorUpdates),
		r.Register(m.registryUpdates),
		r.Register(m.settingUpdates),
		r.Register(m.withdrawals),
		r.Register(m.ownerUpdates),

		r.Register(m.transfers),
		r.Register(m.issuances),
		r.Register(m.destructions),
		r.Register(m.unknown),
		gatherer.Register(namespace, r),
	)
	if errs.Errored() {
		return nil, errs.Err
	}
	return &Subscriber{m: m}, nil
}

func (s *Subscriber) Accept(_ context.Context, l host.Log) error {
	switch l.Event.(type) {
	case *converter.Conversion:
		s.m.conversions.Inc()
	case *converter.PriceDataUpdate:
		s.m.priceUpdates.Inc()
	case *converter.ConnectorUpdate:
		s.m.connectorUpdates.Inc()
	case *converter.RegistryUpdate:
		s.m.registryUpdates.Inc()
	case *converter.ConversionsEnable, *converter.ConversionFeeUpdate, *converter.RegistryUpdateEnable:
		s.m.settingUpdates.Inc()
	case *converter.TokensWithdrawal:
		s.m.withdrawals.Inc()
	case *converter.OwnerUpdate, *converter.ManagerUpdate, *converter.TokenOwnershipUpdate, *token.OwnerUpdate:
		s.m.ownerUpdates.Inc()
	case *token.Transfer:
		s.m.transfers.Inc()
	case *token.Issuance:
		s.m.issuances.Inc()
	case *token.Destruction:
		s.m.destructions.Inc()
	default:
		s.m.unknown.Inc()
	}
	return nil
}

func (*Subscriber) Close() error {
	return nil
}
