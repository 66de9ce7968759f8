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

// Package cmd implements the jscan CLI, following the flat
// rootCmd/AddCommand-per-file shape of
// _examples/vippsas-sqlcode/cli/cmd.
package cmd

import (
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/minio/jscan"
)

var (
	rootCmd = &cobra.Command{
		Use:          "jscan",
		Short:        "jscan",
		SilenceUsage: true,
		Long:         `jscan streams a JSONPath query over a JSON document without building an in-memory tree.`,
	}

	noHeadSkip     bool
	noTailSkip     bool
	noUniqueLabels bool
	verbose        bool

	log = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&noHeadSkip, "no-head-skip", false, "disable the head-skip optimization")
	rootCmd.PersistentFlags().BoolVar(&noTailSkip, "no-tail-skip", false, "disable the tail-skip optimization")
	rootCmd.PersistentFlags().BoolVar(&noUniqueLabels, "no-unique-labels", false, "disable the unitary-state fast exit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log classifier backend and optimization state to stderr")
	return rootCmd.Execute()
}

func options() []jscan.Option {
	return []jscan.Option{
		jscan.WithHeadSkip(!noHeadSkip),
		jscan.WithTailSkip(!noTailSkip),
		jscan.WithUniqueLabels(!noUniqueLabels),
	}
}

func logRunInfo(query string) {
	if !verbose {
		return
	}
	log.WithFields(logrus.Fields{
		"query":        query,
		"simd":         jscan.SupportedSIMD(),
		"headSkip":     !noHeadSkip,
		"tailSkip":     !noTailSkip,
		"uniqueLabels": !noUniqueLabels,
	}).Info("jscan: starting run")
}

// readInput reads path, or stdin when path is "-", transparently
// gunzipping when the name ends in .gz.
func readInput(path string) ([]byte, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f

		if len(path) > 3 && path[len(path)-3:] == ".gz" {
			gz, err := gzip.NewReader(f)
			if err != nil {
				return nil, err
			}
			defer gz.Close()
			r = gz
		}
	}
	return io.ReadAll(r)
}
