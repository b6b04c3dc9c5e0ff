/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/goinpaint/InputParameters"
	"github.com/notargets/goinpaint/inpaint"
	"github.com/notargets/goinpaint/readfiles"
	"github.com/notargets/goinpaint/utils"
)

type FillRun struct {
	Input, Output string
	Method        inpaint.Method
	CycleDims     []int
	Criterion     string
	Value         float64
	Parallel      int
	Verbose       bool
	Profile       bool
}

// FillCmd represents the fill command
var FillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Inpaint the missing cells of a grid file",
	Long: `
Reads a grid of comma and/or whitespace separated values, fills the cells selected by the
criterion and writes the completed grid.

goinpaint fill -i grid.txt -o filled.txt -m 3 --cycle 1 -c value -v -999`,
	PreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if err = viper.BindPFlag("method", cmd.Flags().Lookup("method")); err != nil {
			return
		}
		return viper.BindPFlag("parallel", cmd.Flags().Lookup("parallel"))
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var fr *FillRun
		if fr, err = newFillRun(cmd); err != nil {
			return
		}
		if fr.Profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		return fr.Run()
	},
}

func init() {
	rootCmd.AddCommand(FillCmd)
	FillCmd.Flags().StringP("input", "i", "", "grid file to read")
	FillCmd.Flags().StringP("output", "o", "", "grid file to write, standard output when empty")
	FillCmd.Flags().IntP("method", "m", int(inpaint.DefaultMethod),
		"stencil: 0,1 = Laplacian, 3 = biharmonic, 6 = nine point Laplacian")
	FillCmd.Flags().IntSlice("cycle", nil, "0-based axes that wrap around: 0 = rows, 1 = columns")
	FillCmd.Flags().StringP("criterion", "c", "nan", "missing cells: nan, missing, value, lt, le, gt, ge")
	FillCmd.Flags().Float64P("value", "v", math.NaN(), "value compared against by the criterion")
	FillCmd.Flags().IntP("parallel", "p", 0, "assembly workers, number of CPUs when 0")
	FillCmd.Flags().StringP("inputParametersFile", "I", "", "YAML job file with Input, Output, Method, CycleDims, Criterion, Value, Parallel")
	FillCmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
}

// newFillRun collects the flags and the optional job file. Explicitly set flags win over the
// job file; method and parallel otherwise come from the viper configuration.
func newFillRun(cmd *cobra.Command) (fr *FillRun, err error) {
	var (
		flags   = cmd.Flags()
		jobFile string
		data    []byte
	)
	fr = &FillRun{
		Method:   inpaint.Method(viper.GetInt("method")),
		Parallel: viper.GetInt("parallel"),
		Verbose:  viper.GetBool("verbose"),
	}
	fr.Input, _ = flags.GetString("input")
	fr.Output, _ = flags.GetString("output")
	fr.CycleDims, _ = flags.GetIntSlice("cycle")
	fr.Criterion, _ = flags.GetString("criterion")
	fr.Value, _ = flags.GetFloat64("value")
	fr.Profile, _ = flags.GetBool("profile")
	if jobFile, _ = flags.GetString("inputParametersFile"); len(jobFile) == 0 {
		return
	}
	if data, err = os.ReadFile(jobFile); err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	ip := &InputParameters.InputParametersInpaint{}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", jobFile, err)
	}
	if fr.Verbose {
		ip.Print()
	}
	fr.ApplyJob(ip, flags.Changed)
	return
}

// ApplyJob copies job file settings into fr for every flag that was not set explicitly.
func (fr *FillRun) ApplyJob(ip *InputParameters.InputParametersInpaint, changed func(name string) bool) {
	if !changed("input") && len(ip.Input) != 0 {
		fr.Input = ip.Input
	}
	if !changed("output") && len(ip.Output) != 0 {
		fr.Output = ip.Output
	}
	if !changed("method") && ip.Method != nil {
		fr.Method = inpaint.Method(*ip.Method)
	}
	if !changed("cycle") && ip.CycleDims != nil {
		fr.CycleDims = ip.CycleDims
	}
	if !changed("criterion") && len(ip.Criterion) != 0 {
		fr.Criterion = ip.Criterion
	}
	if !changed("value") && ip.Value != nil {
		fr.Value = *ip.Value
	}
	if !changed("parallel") && ip.Parallel != 0 {
		fr.Parallel = ip.Parallel
	}
}

func (fr *FillRun) Run() (err error) {
	var (
		A, R inpaint.Grid[float64]
		c    inpaint.Criterion[float64]
	)
	if len(fr.Input) == 0 {
		return fmt.Errorf("must supply a grid file (-i, --input)")
	}
	if A, err = readfiles.ReadGrid(fr.Input, fr.Verbose); err != nil {
		return
	}
	if c, err = NewCriterion(fr.Criterion, fr.Value); err != nil {
		return
	}
	opts := &inpaint.Options{
		Method:    fr.Method,
		CycleDims: fr.CycleDims,
		Parallel:  fr.Parallel,
		Verbose:   fr.Verbose,
	}
	if R, err = inpaint.Inpaint(A, c, opts); err != nil {
		return fmt.Errorf("filling %s: %w", fr.Input, err)
	}
	if len(fr.Output) == 0 || fr.Output == "-" {
		return readfiles.WriteGrid(os.Stdout, R)
	}
	return readfiles.WriteGridFile(fr.Output, R)
}

// NewCriterion maps a criterion label and comparison value to a missingness criterion.
func NewCriterion(label string, value float64) (c inpaint.Criterion[float64], err error) {
	var op utils.EvalOp
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "nan", "":
		return inpaint.Sentinel(math.NaN()), nil
	case "missing", "absent":
		return inpaint.Absent[float64](), nil
	}
	if op, err = utils.NewEvalOp(label); err != nil {
		err = fmt.Errorf("criterion: %w", err)
		return
	}
	switch {
	case op == utils.Equal:
		return inpaint.Sentinel(value), nil
	case math.IsNaN(value):
		err = fmt.Errorf("criterion %s needs a comparison value (-v, --value)", op)
		return
	}
	return inpaint.Predicate(func(x float64) bool { return op.Compare(x, value) }), nil
}
