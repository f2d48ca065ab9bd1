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
	"math/big"
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/getamis/fips-dsa/crypto/dsa"
)

// SignConfig is the YAML shape for `dsa-cli sign --config`.
type SignConfig struct {
	Standard string `yaml:"standard,omitempty"`
	P        string `yaml:"p"`
	Q        string `yaml:"q"`
	G        string `yaml:"g"`
	PrivKey  string `yaml:"privKey"`
	Message  string `yaml:"message,omitempty"`
	Digest   string `yaml:"digest,omitempty"` // hex
}

// SignResult is the YAML shape printed to stdout.
type SignResult struct {
	R string `yaml:"r"`
	S string `yaml:"s"`
}

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a message or digest with a DSA private key",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readSignConfig(viper.GetString("config"))
		if err != nil {
			return err
		}

		key, err := keyFromConfig(cfg.Standard, cfg.P, cfg.Q, cfg.G, "", cfg.PrivKey)
		if err != nil {
			log.Warn("Invalid key material", "err", err)
			return err
		}

		opts, err := signOptionsFromConfig(cfg.Message, cfg.Digest)
		if err != nil {
			log.Warn("Invalid message/digest", "err", err)
			return err
		}

		e := dsa.New(cfg.Standard)
		sig, err := e.Sign(key, opts)
		if err != nil {
			log.Crit("Sign failed", "err", err)
			return err
		}

		fmt.Println()
		raw, _ := yaml.Marshal(SignResult{R: bigToHex(sig.R), S: bigToHex(sig.S)})
		fmt.Println(string(raw))
		return nil
	},
}

func keyFromConfig(standard, p, q, g, pub, priv string) (*dsa.Key, error) {
	pBig, err := hexToBig(p)
	if err != nil {
		return nil, err
	}
	qBig, err := hexToBig(q)
	if err != nil {
		return nil, err
	}
	gBig, err := hexToBig(g)
	if err != nil {
		return nil, err
	}

	var privBig *big.Int
	if priv != "" {
		privBig, err = hexToBig(priv)
		if err != nil {
			return nil, err
		}
	}

	var pubBig *big.Int
	if pub != "" {
		pubBig, err = hexToBig(pub)
		if err != nil {
			return nil, err
		}
	}

	if privBig != nil {
		return dsa.NewPrivateKey(pBig, qBig, gBig, pubBig, privBig), nil
	}
	return dsa.NewPublicKey(pBig, qBig, gBig, pubBig), nil
}

func signOptionsFromConfig(message, digestHex string) (dsa.SignOptions, error) {
	if message != "" && digestHex != "" {
		return dsa.SignOptions{}, fmt.Errorf("dsa-cli: exactly one of message/digest is required")
	}
	if digestHex != "" {
		digest, err := hex.DecodeString(digestHex)
		if err != nil {
			return dsa.SignOptions{}, fmt.Errorf("dsa-cli: invalid digest hex: %w", err)
		}
		return dsa.SignOptions{Digest: digest}, nil
	}
	if message == "" {
		return dsa.SignOptions{}, fmt.Errorf("dsa-cli: exactly one of message/digest is required")
	}
	return dsa.SignOptions{Message: []byte(message)}, nil
}

func readSignConfig(path string) (*SignConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("dsa-cli: --config is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &SignConfig{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
