package cmd

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/goinpaint/InputParameters"
	"github.com/notargets/goinpaint/inpaint"
	"github.com/notargets/goinpaint/readfiles"
)

func TestNewCriterion(t *testing.T) {
	A := inpaint.NewVector([]float64{math.NaN(), -999, 1, 5})
	eval := func(label string, value float64) []bool {
		c, err := NewCriterion(label, value)
		require.NoError(t, err)
		mask, err := inpaint.Evaluate(A, c)
		require.NoError(t, err)
		return mask
	}
	assert.Equal(t, []bool{true, false, false, false}, eval("nan", 0))
	assert.Equal(t, []bool{false, true, false, false}, eval("value", -999))
	assert.Equal(t, []bool{true, false, false, false}, eval("eq", math.NaN()))
	assert.Equal(t, []bool{false, true, false, false}, eval("lt", 0))
	assert.Equal(t, []bool{false, false, true, true}, eval("ge", 1))
	assert.Equal(t, []bool{false, false, false, true}, eval(">", 1))

	c, err := NewCriterion("missing", 0)
	require.NoError(t, err)
	assert.Equal(t, inpaint.ByAbsence, c.Kind)

	_, err = NewCriterion("lt", math.NaN())
	assert.Error(t, err)
	_, err = NewCriterion("between", 1)
	assert.Error(t, err)
}

func TestApplyJob(t *testing.T) {
	var (
		method = 3
		value  = -1.
		ip     = &InputParameters.InputParametersInpaint{
			Input: "job.txt", Output: "out.txt", Method: &method,
			CycleDims: []int{0}, Criterion: "value", Value: &value, Parallel: 2,
		}
	)
	fr := &FillRun{Input: "flag.txt", Method: inpaint.DefaultMethod, Criterion: "nan"}
	fr.ApplyJob(ip, func(name string) bool { return name == "input" })
	assert.Equal(t, "flag.txt", fr.Input)
	assert.Equal(t, "out.txt", fr.Output)
	assert.Equal(t, inpaint.MethodBiharmonic, fr.Method)
	assert.Equal(t, []int{0}, fr.CycleDims)
	assert.Equal(t, "value", fr.Criterion)
	assert.Equal(t, -1., fr.Value)
	assert.Equal(t, 2, fr.Parallel)
}

func TestFillRun(t *testing.T) {
	var (
		dir    = t.TempDir()
		input  = filepath.Join(dir, "grid.txt")
		output = filepath.Join(dir, "filled.txt")
	)
	require.NoError(t, os.WriteFile(input, []byte(`
# (i+1)*(j+1) with a hole
1, 2, 3, 4
2, -999, -999, 8
3, 6, 9, 12
4, 8, 12, 16
`), 0644))
	fr := &FillRun{Input: input, Output: output, Method: inpaint.MethodLaplacian,
		Criterion: "value", Value: -999, Parallel: 2}
	require.NoError(t, fr.Run())
	R, err := readfiles.ReadGrid(output, false)
	require.NoError(t, err)
	assert.InDelta(t, 4., R.At(1, 1), 1.e-9)
	assert.InDelta(t, 6., R.At(1, 2), 1.e-9)
	assert.Equal(t, 16., R.At(3, 3))

	fr.Method = 2
	assert.Error(t, fr.Run())
	fr.Input = ""
	assert.Error(t, fr.Run())
}

func TestStencilCmd(t *testing.T) {
	var buf bytes.Buffer
	StencilCmd.SetOut(&buf)
	t.Cleanup(func() { _ = viper.ReadConfig(bytes.NewBufferString("")) })

	// Without the flag the configured method applies
	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(bytes.NewBufferString("method: 6\n")))
	require.NoError(t, StencilCmd.PreRunE(StencilCmd, nil))
	require.NoError(t, StencilCmd.RunE(StencilCmd, nil))
	assert.Contains(t, buf.String(), "Method 6, 2D")

	buf.Reset()
	require.NoError(t, StencilCmd.Flags().Set("method", "3"))
	require.NoError(t, StencilCmd.Flags().Set("dims", "1"))
	require.NoError(t, StencilCmd.RunE(StencilCmd, nil))
	assert.Contains(t, buf.String(), "Method 3, 1D")
}
