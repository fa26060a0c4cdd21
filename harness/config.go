// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package harness

import (
	"os"

	"github.com/pkg/errors"
	uconfig "go.uber.org/config"

	"github.com/iotexproject/trie-oracle/pkg/log"
)

// Default is the default config
var Default = Config{
	Rounds:     10,
	KeyCount:   10,
	ChurnCount: 5,
	MinKeyLen:  0,
	MaxKeyLen:  255,
	Alphabet:   DefaultAlphabet,
}

type (
	// SUT selects the trie-under-test. An empty binary path selects the
	// in-process patricia implementation.
	SUT struct {
		Binary string   `yaml:"binary"`
		Args   []string `yaml:"args"`
	}
	// Config is the root config of the structural tester
	Config struct {
		Log        log.GlobalConfig            `yaml:"log"`
		SubLogs    map[string]log.GlobalConfig `yaml:"subLogs"`
		Rounds     int                         `yaml:"rounds"`
		KeyCount   int                         `yaml:"keyCount"`
		ChurnCount int                         `yaml:"churnCount"`
		MinKeyLen  int                         `yaml:"minKeyLen"`
		MaxKeyLen  int                         `yaml:"maxKeyLen"`
		Alphabet   string                      `yaml:"alphabet"`
		Seed       int64                       `yaml:"seed"` // 0 draws a fresh seed
		SUT        SUT                         `yaml:"sut"`
	}
)

// NewConfig creates a config from defaults, overwritten by the YAML file at
// path when one is given
func NewConfig(path string) (Config, error) {
	opts := make([]uconfig.YAMLOption, 0)
	opts = append(opts, uconfig.Static(Default))
	opts = append(opts, uconfig.Expand(os.LookupEnv))
	if path != "" {
		opts = append(opts, uconfig.File(path))
	}

	yaml, err := uconfig.NewYAML(opts...)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to init config")
	}

	var cfg Config
	if err := yaml.Get(uconfig.Root).Populate(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal YAML config to struct")
	}

	return cfg, nil
}
