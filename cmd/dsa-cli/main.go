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

// Command dsa-cli is the out-of-scope external collaborator demo
// (§1/§6): a thin cobra/viper wrapper that drives the dsa engine from
// a YAML config file, mirroring example/cggmp/main.go's command tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cmd = &cobra.Command{
	Use:   "dsa-cli",
	Short: "Generate FIPS 186-2/186-4 DSA keys, sign and verify messages",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
}

func init() {
	cmd.PersistentFlags().String("config", "", "config file path")

	cmd.AddCommand(keygenCmd)
	cmd.AddCommand(signCmd)
	cmd.AddCommand(verifyCmd)
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
