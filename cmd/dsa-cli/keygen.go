// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/getamis/fips-dsa/crypto/dsa"
)

// KeygenConfig is the YAML shape for `dsa-cli keygen --config`.
type KeygenConfig struct {
	Size      int         `yaml:"size"`
	QSize     int         `yaml:"qsize,omitempty"`
	Standard  string      `yaml:"standard,omitempty"`
	Seed      string      `yaml:"seed,omitempty"` // hex
	Prove     interface{} `yaml:"prove,omitempty"`
	Verbosity int         `yaml:"verbosity,omitempty"`
}

// KeygenResult is the YAML shape printed to stdout.
type KeygenResult struct {
	P       string `yaml:"p"`
	Q       string `yaml:"q"`
	G       string `yaml:"g"`
	Pub     string `yaml:"pubKey"`
	Priv    string `yaml:"privKey"`
	Counter int    `yaml:"counter"`
	H       string `yaml:"h"`
	Seed    string `yaml:"seed"`
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate DSA domain parameters and a key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readKeygenConfig(viper.GetString("config"))
		if err != nil {
			return err
		}

		prove, err := dsa.ParseProve(cfg.Prove)
		if err != nil {
			log.Warn("Invalid prove setting", "err", err)
			return err
		}

		var seed []byte
		if cfg.Seed != "" {
			seed, err = hex.DecodeString(cfg.Seed)
			if err != nil {
				return fmt.Errorf("dsa-cli: invalid seed hex: %w", err)
			}
		}

		e := dsa.New(cfg.Standard)
		key, witness, err := e.Keygen(dsa.KeygenOptions{
			Size:      cfg.Size,
			QSize:     cfg.QSize,
			Seed:      seed,
			Prove:     prove,
			Verbosity: cfg.Verbosity,
			Progress: func(phase string, iteration int) bool {
				log.Debug("keygen progress", "phase", phase, "iteration", iteration)
				return false
			},
		})
		if err != nil {
			log.Warn("Keygen failed", "err", err)
			return err
		}

		result := KeygenResult{
			P:       bigToHex(key.P),
			Q:       bigToHex(key.Q),
			G:       bigToHex(key.G),
			Pub:     bigToHex(key.Pub),
			Priv:    bigToHex(key.Priv),
			Counter: witness.Counter,
			H:       bigToHex(witness.H),
			Seed:    hex.EncodeToString(witness.Seed),
		}

		fmt.Println()
		raw, _ := yaml.Marshal(result)
		fmt.Println(string(raw))
		return nil
	},
}

func readKeygenConfig(path string) (*KeygenConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("dsa-cli: --config is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &KeygenConfig{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
