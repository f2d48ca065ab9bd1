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

// VerifyConfig is the YAML shape for `dsa-cli verify --config`.
type VerifyConfig struct {
	Standard string `yaml:"standard,omitempty"`
	P        string `yaml:"p"`
	Q        string `yaml:"q"`
	G        string `yaml:"g"`
	PubKey   string `yaml:"pubKey"`
	Message  string `yaml:"message,omitempty"`
	Digest   string `yaml:"digest,omitempty"`
	R        string `yaml:"r"`
	S        string `yaml:"s"`
}

// VerifyResult is the YAML shape printed to stdout.
type VerifyResult struct {
	Valid bool `yaml:"valid"`
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a DSA signature against a message or digest",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readVerifyConfig(viper.GetString("config"))
		if err != nil {
			return err
		}

		key, err := keyFromConfig(cfg.Standard, cfg.P, cfg.Q, cfg.G, cfg.PubKey, "")
		if err != nil {
			log.Warn("Invalid key material", "err", err)
			return err
		}

		r, err := hexToBig(cfg.R)
		if err != nil {
			return err
		}
		s, err := hexToBig(cfg.S)
		if err != nil {
			return err
		}
		sig := &dsa.Signature{R: r, S: s}

		opts, err := verifyOptionsFromConfig(cfg.Message, cfg.Digest)
		if err != nil {
			log.Warn("Invalid message/digest", "err", err)
			return err
		}

		e := dsa.New(cfg.Standard)
		valid, err := e.Verify(key, sig, opts)
		if err != nil {
			log.Crit("Verify failed", "err", err)
			return err
		}

		fmt.Println()
		raw, _ := yaml.Marshal(VerifyResult{Valid: valid})
		fmt.Println(string(raw))
		return nil
	},
}

func verifyOptionsFromConfig(message, digestHex string) (dsa.VerifyOptions, error) {
	if message != "" && digestHex != "" {
		return dsa.VerifyOptions{}, fmt.Errorf("dsa-cli: exactly one of message/digest is required")
	}
	if digestHex != "" {
		digest, err := hex.DecodeString(digestHex)
		if err != nil {
			return dsa.VerifyOptions{}, fmt.Errorf("dsa-cli: invalid digest hex: %w", err)
		}
		return dsa.VerifyOptions{Digest: digest}, nil
	}
	if message == "" {
		return dsa.VerifyOptions{}, fmt.Errorf("dsa-cli: exactly one of message/digest is required")
	}
	return dsa.VerifyOptions{Message: []byte(message)}, nil
}

func readVerifyConfig(path string) (*VerifyConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("dsa-cli: --config is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &VerifyConfig{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
