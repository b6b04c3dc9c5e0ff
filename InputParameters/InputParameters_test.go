package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	fileInput := []byte(`
Title: Multiplication table
Input: table.txt
Output: filled.txt
Method: 3
CycleDims: [1]
Criterion: lt # Fill everything below Value
Value: -900
Parallel: 4
`)
	var input InputParametersInpaint
	require.NoError(t, input.Parse(fileInput))
	assert.Equal(t, "Multiplication table", input.Title)
	assert.Equal(t, "table.txt", input.Input)
	require.NotNil(t, input.Method)
	assert.Equal(t, 3, *input.Method)
	assert.Equal(t, []int{1}, input.CycleDims)
	assert.Equal(t, "lt", input.Criterion)
	require.NotNil(t, input.Value)
	assert.Equal(t, -900., *input.Value)
	assert.Equal(t, 4, input.Parallel)
	input.Print()

	var empty InputParametersInpaint
	require.NoError(t, empty.Parse([]byte("Title: defaults\n")))
	assert.Nil(t, empty.Method)
	assert.Nil(t, empty.Value)
	empty.Print()

	assert.Error(t, empty.Parse([]byte("Method: [oops\n")))
}
