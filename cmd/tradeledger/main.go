/*
 * Copyright © 2026 Kaleido, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
 * the License. You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
 * an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"
	"os"

	"github.com/alexmedkex/forkly-sub001/pkg/bootstrap"
	"github.com/spf13/cobra"
)

var exit = os.Exit

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "tradeledger",
		Short:         "Trade finance node for letters of credit on an EVM ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var configFile string
	run := &cobra.Command{
		Use:   "run",
		Short: "Run the node until it receives a stop signal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rc := runNode(configFile); rc != bootstrap.RC_OK {
				return fmt.Errorf("node exited with rc=%d", rc)
			}
			return nil
		},
	}
	run.Flags().StringVarP(&configFile, "config", "c", "tradeledger.yaml", "YAML configuration file")
	root.AddCommand(run)
	return root
}

var runNode = bootstrap.Run

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exit(1)
	}
}
