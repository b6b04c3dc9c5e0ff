package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML job file
type InputParametersInpaint struct {
	Title     string   `yaml:"Title"`
	Input     string   `yaml:"Input"`
	Output    string   `yaml:"Output"`
	Method    *int     `yaml:"Method"`    // nil selects the configured default
	CycleDims []int    `yaml:"CycleDims"` // 0-based axes: 0 = rows, 1 = columns
	Criterion string   `yaml:"Criterion"` // nan, missing, value, lt, le, gt, ge
	Value     *float64 `yaml:"Value"`
	Parallel  int      `yaml:"Parallel"`
}

func (ip *InputParametersInpaint) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersInpaint) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Input\n", ip.Input)
	fmt.Printf("[%s]\t\t= Output\n", ip.Output)
	if ip.Method != nil {
		fmt.Printf("[%d]\t\t\t= Method\n", *ip.Method)
	}
	fmt.Printf("%v\t\t\t= Cyclic Dimensions\n", ip.CycleDims)
	fmt.Printf("[%s]\t\t\t= Criterion\n", strings.ToLower(ip.Criterion))
	if ip.Value != nil {
		fmt.Printf("%8.5f\t\t= Value\n", *ip.Value)
	}
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", ip.Parallel)
}
