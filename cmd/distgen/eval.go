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
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ikselven/distributions/pkg/distributions"
	"github.com/ikselven/distributions/pkg/random"
)

var evalQuantiles bool

var evalCmd = &cobra.Command{
	Use:          "eval x [x...]",
	Short:        "Evaluate density and cumulative functions at the given points.",
	Args:         cobra.MinimumNArgs(1),
	RunE:         runEval,
	SilenceUsage: true,
}

func init() {
	evalCmd.Flags().BoolVarP(&evalQuantiles, "quantiles", "q", false,
		"Treat the arguments as probabilities and print quantiles instead")
}

func runEval(_ *cobra.Command, args []string) error {
	if err := validateParams(); err != nil {
		return err
	}

	d, err := distributions.NewContinuous(distribution, mu, sigma, random.NewSeeded(resolveSeed()))
	if err != nil {
		return err
	}

	points := make([]float64, 0, len(args))
	for _, arg := range args {
		v, parseErr := strconv.ParseFloat(arg, 64)
		if parseErr != nil {
			return errors.Wrapf(parseErr, "not a number: %q", arg)
		}
		points = append(points, v)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	if evalQuantiles {
		err = writeQuantileTable(w, d, points)
	} else {
		err = writeEvalTable(w, d, points)
	}
	if err != nil {
		return err
	}

	return w.Flush()
}

func writeEvalTable(w io.Writer, d distributions.Continuous[float64], points []float64) error {
	if _, err := fmt.Fprintln(w, "x\tpdf\tlog pdf\tcdf\tccdf"); err != nil {
		return err
	}

	for _, x := range points {
		_, err := fmt.Fprintf(w, "%v\t%0.8g\t%0.8g\t%0.8g\t%0.8g\n",
			x, d.Prob(x), d.LogProb(x), d.CDF(x), d.Survival(x))
		if err != nil {
			return err
		}
	}

	return nil
}

func writeQuantileTable(w io.Writer, d distributions.Continuous[float64], probs []float64) error {
	if _, err := fmt.Fprintln(w, "p\tquantile"); err != nil {
		return err
	}

	for _, p := range probs {
		q, err := d.Quantile(p)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "%v\t%0.8g\n", p, q); err != nil {
			return err
		}
	}

	return nil
}
