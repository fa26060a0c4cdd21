// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package cmd is the command line of the structural tester. It runs random
// command streams against a trie-under-test, either the in-process patricia
// trie or an external binary speaking the line protocol, and diffs the
// resulting path serialization against the oracle's.
package cmd

import (
	"context"
	"os"
	"time"

	"github.com/schollz/progressbar/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iotexproject/trie-oracle/harness"
	"github.com/iotexproject/trie-oracle/pkg/log"
	"github.com/iotexproject/trie-oracle/trie/patricia"
)

var (
	_configPath string
	_binary     string
	_rounds     int
	_keyCount   int
	_churnCount int
	_seed       int64
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "structtester [flags]",
	Short: "structtester checks a trie implementation for structural equivalence with the reference serialization",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return run(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flag := rootCmd.Flags()
	flag.StringVar(&_configPath, "config-path", "", "path of the structural tester config file")
	flag.StringVar(&_binary, "binary", "", "trie-under-test binary, in-process trie when empty")
	flag.IntVar(&_rounds, "rounds", harness.Default.Rounds, "number of test rounds")
	flag.IntVar(&_keyCount, "key-count", harness.Default.KeyCount, "number of keys kept in the trie per round")
	flag.IntVar(&_churnCount, "churn-count", harness.Default.ChurnCount, "number of keys added and removed again per round")
	flag.Int64Var(&_seed, "seed", 0, "random seed, 0 draws a fresh one")
}

func run(cmd *cobra.Command) error {
	cfg, err := harness.NewConfig(_configPath)
	if err != nil {
		return err
	}
	// flags given on the command line win over the config file
	if cmd.Flags().Changed("binary") {
		cfg.SUT.Binary = _binary
	}
	if cmd.Flags().Changed("rounds") {
		cfg.Rounds = _rounds
	}
	if cmd.Flags().Changed("key-count") {
		cfg.KeyCount = _keyCount
	}
	if cmd.Flags().Changed("churn-count") {
		cfg.ChurnCount = _churnCount
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = _seed
	}
	if err := log.InitLoggers(cfg.Log, cfg.SubLogs); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	// the seed is always logged so a failing run can be replayed
	log.L().Info("structural test starting",
		zap.Int64("seed", cfg.Seed),
		zap.Int("rounds", cfg.Rounds),
		zap.String("binary", cfg.SUT.Binary))

	var sut harness.SystemUnderTest
	if cfg.SUT.Binary != "" {
		sut = &harness.BinarySUT{Bin: cfg.SUT.Binary, Args: cfg.SUT.Args}
	} else {
		sut = &harness.TrieSUT{NewTrie: patricia.New}
	}
	h, err := harness.New(cfg, sut)
	if err != nil {
		return err
	}

	ctx := context.Background()
	bar := progressbar.New(cfg.Rounds)
	failed := 0
	for round := 0; round < cfg.Rounds; round++ {
		report, err := h.RunRound(ctx, round)
		if err != nil {
			return err
		}
		if !report.OK() {
			failed++
			for _, m := range report.Mismatches {
				log.L().Error("structural mismatch",
					zap.Int("round", round),
					zap.String("diff", m.String()))
			}
		}
		if err := bar.Add(1); err != nil {
			log.L().Warn("progress bar glitch", zap.Error(err))
		}
	}

	if failed > 0 {
		log.L().Error("trie under test is not structurally equivalent",
			zap.Int("failedRounds", failed),
			zap.Int("rounds", cfg.Rounds),
			zap.Int64("seed", cfg.Seed))
		os.Exit(1)
	}
	log.L().Info("trie under test is structurally equivalent",
		zap.Int("rounds", cfg.Rounds))
	return nil
}
