// Copyright 2025 Distributions Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ikselven/distributions/pkg/distributions"
	"github.com/ikselven/distributions/pkg/random"
)

var momentsCmd = &cobra.Command{
	Use:          "moments",
	Short:        "Print the closed-form moments of the selected distribution.",
	RunE:         runMoments,
	SilenceUsage: true,
}

func runMoments(_ *cobra.Command, _ []string) error {
	if err := validateParams(); err != nil {
		return err
	}

	d, err := distributions.NewContinuous(distribution, mu, sigma, random.NewSeeded(resolveSeed()))
	if err != nil {
		return err
	}

	return writeMomentsTable(os.Stdout, distribution, d)
}

func writeMomentsTable(out io.Writer, name string, d distributions.Continuous[float64]) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)

	lo, hi := d.Support()
	fmt.Fprintf(w, "distribution\t%s\n", name)
	fmt.Fprintf(w, "parameters\t%v\n", d.Params())
	fmt.Fprintf(w, "support\t(%v, %v)\n", lo, hi)
	fmt.Fprintf(w, "mean\t%0.8g\n", d.Mean())
	fmt.Fprintf(w, "median\t%0.8g\n", d.Median())
	fmt.Fprintf(w, "mode\t%0.8g\n", d.Mode())
	fmt.Fprintf(w, "variance\t%0.8g\n", d.Variance())
	fmt.Fprintf(w, "stddev\t%0.8g\n", d.StdDev())
	fmt.Fprintf(w, "skewness\t%0.8g\n", d.Skewness())
	fmt.Fprintf(w, "ex kurtosis\t%0.8g\n", d.ExKurtosis())
	fmt.Fprintf(w, "entropy\t%0.8g\n", d.Entropy())

	return w.Flush()
}
