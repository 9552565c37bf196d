// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ametrics "github.com/ava-labs/avalanchego/api/metrics"

	"github.com/ava-labs/convertervm/config"
	"github.com/ava-labs/convertervm/event"
	"github.com/ava-labs/convertervm/host"
	"github.com/ava-labs/convertervm/metrics"
	"github.com/ava-labs/convertervm/state"
	"github.com/ava-labs/convertervm/storage"
)

const databaseNamespace = "db"

type database interface {
	state.Database
	Close() error
}

type runCmd struct {
	c    *cli
	plan *Plan
}

func newRunCmd(c *cli) *cobra.Command {
	r := &runCmd{c: c}
	return &cobra.Command{
		Use:   "run [path]",
		Short: "Run a converter plan, read from stdin when path is -",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.Init(args, cmd.InOrStdin()); err != nil {
				return err
			}
			if err := verifyPlan(r.plan); err != nil {
				return err
			}
			return r.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (r *runCmd) Init(args []string, stdin io.Reader) (err error) {
	var planBytes []byte
	if args[0] == "-" {
		planBytes, err = io.ReadAll(stdin)
	} else {
		planBytes, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}
	r.plan, err = unmarshalPlan(planBytes)
	return err
}

func (r *runCmd) Run(ctx context.Context, out io.Writer) error {
	cfg, log := r.c.cfg, r.c.log
	gatherer := ametrics.NewPrefixGatherer()
	db, err := openDatabase(cfg, gatherer)
	if err != nil {
		return err
	}

	subs := []event.Subscription[host.Log]{newLogSubscription(log)}
	if cfg.MetricsEnabled {
		m, err := metrics.New(gatherer, cfg.MetricsNamespace)
		if err != nil {
			return errors.Join(err, db.Close())
		}
		subs = append(subs, m)
	}
	ledger := host.New(log, db, subs...)

	log.Info("running plan",
		zap.String("name", r.plan.Name),
		zap.Int("steps", len(r.plan.Steps)),
	)
	err = newRunner(ledger, out).run(ctx, r.plan)
	if cfg.MetricsEnabled {
		logCounters(log, gatherer)
	}
	return errors.Join(err, ledger.Close(), db.Close())
}

// openDatabase opens the configured pebble database, or an in-memory one
// when no path is set.
func openDatabase(cfg *config.Config, gatherer ametrics.MultiGatherer) (database, error) {
	if len(cfg.DatabasePath) == 0 {
		return memdb.New(), nil
	}
	return storage.OpenDatabase(cfg.Pebble, cfg.DatabasePath, databaseNamespace, gatherer)
}

func newLogSubscription(log logging.Logger) event.Subscription[host.Log] {
	return event.SubscriptionFunc[host.Log]{
		AcceptF: func(_ context.Context, l host.Log) error {
			log.Debug("event committed",
				zap.Stringer("contract", l.Contract),
				zap.String("name", l.Name),
			)
			return nil
		},
	}
}

func logCounters(log logging.Logger, gatherer ametrics.MultiGatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		log.Warn("failed to gather metrics", zap.Error(err))
		return
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			log.Info("counter",
				zap.String("name", family.GetName()),
				zap.Float64("value", m.GetCounter().GetValue()),
			)
		}
	}
}

// errStep wraps the failure of step [i].
func errStep(i int, err error) error {
	return fmt.Errorf("%w %d: %w", ErrStepFailed, i, err)
}
