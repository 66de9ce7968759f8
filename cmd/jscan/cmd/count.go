/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minio/jscan"
	"github.com/minio/jscan/automaton"
)

var countCmd = &cobra.Command{
	Use:   "count <query> <file|->",
	Short: "count matches of a JSONPath query in a JSON document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		query, path := args[0], args[1]

		auto, err := automaton.Compile(query)
		if err != nil {
			return err
		}
		contents, err := readInput(path)
		if err != nil {
			return err
		}

		logRunInfo(query)
		n, err := jscan.Count(contents, auto, options()...)
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
