// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package harness compares a trie-under-test against the triepath oracle.
// Each round builds a random command stream, runs it through the
// trie-under-test over the line protocol, recomputes the canonical
// serialization of the surviving key/value set from scratch and diffs the
// two, line by line. Structural equivalence is per-line equality.
package harness

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/iotexproject/trie-oracle/pkg/log"
	"github.com/iotexproject/trie-oracle/trie/triepath"
)

var _roundMtc = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "trie_oracle_rounds",
		Help: "Trie oracle structural test rounds",
	},
	[]string{"status"},
)

func init() {
	prometheus.MustRegister(_roundMtc)
}

// Report is the outcome of one structural test round
type Report struct {
	Round      int
	Commands   int
	Keys       int
	Mismatches []Mismatch
}

// OK returns true if the trie-under-test agreed with the oracle
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Harness drives structural test rounds against one trie-under-test
type Harness struct {
	cfg Config
	gen *Generator
	sut SystemUnderTest
}

// New creates a harness from the config. The seed must already be resolved
// to a non-zero value so the run is reproducible from its log.
func New(cfg Config, sut SystemUnderTest) (*Harness, error) {
	if sut == nil {
		return nil, errors.New("no system under test")
	}
	if cfg.KeyCount <= 0 {
		return nil, errors.Errorf("invalid key count %d", cfg.KeyCount)
	}
	if cfg.ChurnCount < 0 {
		return nil, errors.Errorf("invalid churn count %d", cfg.ChurnCount)
	}
	gen, err := NewGenerator(cfg.Alphabet, cfg.MinKeyLen, cfg.MaxKeyLen, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return &Harness{cfg: cfg, gen: gen, sut: sut}, nil
}

// RunRound runs one structural test round and reports the diff outcome.
// Process or protocol failures of the trie-under-test surface as errors,
// not as mismatches.
func (h *Harness) RunRound(ctx context.Context, round int) (*Report, error) {
	cmds, err := h.commands()
	if err != nil {
		_roundMtc.WithLabelValues("error").Inc()
		return nil, err
	}

	// the oracle's own bookkeeping of the surviving set
	state := NewState()
	for _, c := range cmds {
		if err := state.Apply(c); err != nil {
			_roundMtc.WithLabelValues("error").Inc()
			return nil, err
		}
	}
	want, err := triepath.Paths(state.Entries())
	if err != nil {
		_roundMtc.WithLabelValues("error").Inc()
		return nil, err
	}

	got, err := h.sut.Run(ctx, cmds)
	if err != nil {
		_roundMtc.WithLabelValues("error").Inc()
		return nil, errors.Wrapf(err, "round %d", round)
	}

	report := &Report{
		Round:      round,
		Commands:   len(cmds),
		Keys:       state.Size(),
		Mismatches: Compare(want, got),
	}
	if report.OK() {
		_roundMtc.WithLabelValues("ok").Inc()
	} else {
		_roundMtc.WithLabelValues("mismatch").Inc()
		log.Logger("harness").Warn("structural mismatch",
			zap.Int("round", round),
			zap.Int("mismatches", len(report.Mismatches)))
	}

	return report, nil
}

// commands builds one random command stream: adds of the kept and churned
// keys in random order, followed by removes of the churned keys in random
// order, so every remove follows its add
func (h *Harness) commands() ([]Command, error) {
	keys, err := h.gen.DistinctKeys(h.cfg.KeyCount + h.cfg.ChurnCount)
	if err != nil {
		return nil, err
	}

	adds := make([]Command, 0, len(keys))
	for i, key := range keys {
		adds = append(adds, Command{Action: ActionAdd, Value: uint64(i), Key: key})
	}
	removes := make([]Command, 0, h.cfg.ChurnCount)
	for i := h.cfg.KeyCount; i < len(keys); i++ {
		removes = append(removes, Command{Action: ActionRemove, Value: uint64(i), Key: keys[i]})
	}
	h.gen.Shuffle(adds)
	h.gen.Shuffle(removes)

	return append(adds, removes...), nil
}
