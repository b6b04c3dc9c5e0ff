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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/goinpaint/inpaint"
)

// StencilCmd represents the stencil command
var StencilCmd = &cobra.Command{
	Use:   "stencil",
	Short: "Print a stencil from the catalog",
	// fill binds the same key, so each command binds on its own run
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlag("method", cmd.Flags().Lookup("method"))
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var s *inpaint.Stencil
		dims, _ := cmd.Flags().GetInt("dims")
		if s, err = inpaint.Lookup(inpaint.Method(viper.GetInt("method")), dims); err != nil {
			return
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), s.String())
		return
	},
}

func init() {
	rootCmd.AddCommand(StencilCmd)
	StencilCmd.Flags().IntP("method", "m", int(inpaint.DefaultMethod), "stencil method: 0, 1, 3 or 6")
	StencilCmd.Flags().IntP("dims", "d", 2, "grid dimensionality: 1 or 2")
}
