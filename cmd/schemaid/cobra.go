/*
   Copyright 2025 The DIRPX Authors.

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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thorn-jmh/errorst"

	"dirpx.dev/schemaid/apis"
	"dirpx.dev/schemaid/config"
	"dirpx.dev/schemaid/frontend/source"
	"dirpx.dev/schemaid/resolver"
)

var (
	rootTypes       []string
	workDir         string
	includeBuiltins bool
	forceErased     bool
)

var rootCmd = &cobra.Command{
	Use:   "schemaid [-t <type>...] [-C <dir>] <packages...>",
	Short: "Resolve schema names for Go types",
	Long: `schemaid loads Go packages and prints the resolved schema name of their
exported types. Names follow the shared naming rules: namespace from the
normalized package path, generic instantiations encoded as Base__Arg1_Arg2,
and //schemaid: directives applied as overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return run(cmd, args)
	},
}

func init() {
	rootCmd.Flags().StringSliceVarP(&rootTypes, "type", "t", nil, "type names to resolve (default: all exported)")
	rootCmd.Flags().StringVarP(&workDir, "dir", "C", "", "directory to load packages from")
	rootCmd.Flags().BoolVar(&includeBuiltins, "builtins", true, "allow builtin types")
	rootCmd.Flags().BoolVar(&forceErased, "erased", false, "force erased naming (drop generic type arguments)")
}

func run(cmd *cobra.Command, patterns []string) error {
	cfg := config.NewConfig(config.WithIncludeBuiltins(includeBuiltins))

	entries, err := source.Load(cmd.Context(), cfg, source.Options{
		Packages:  patterns,
		RootTypes: rootTypes,
		Dir:       workDir,
	})
	if err != nil {
		return errorst.Wrap(err, "failed to analyze %v", patterns)
	}

	printEntries(cmd.OutOrStdout(), cfg, entries, forceErased)
	return nil
}

// printEntries resolves each entry and writes one "TypeName<TAB>fullName"
// line. When erased is set, erasure merges into each entry's overrides; a
// name override from a directive still wins over the erased name.
func printEntries(w io.Writer, cfg apis.Config, entries []source.Entry, erased bool) {
	res := resolver.New(cfg)
	for _, e := range entries {
		o := e.Overrides
		if erased {
			o = o.Merge(apis.OverrideSet{Erased: true})
		}
		rn := res.Resolve(e.Descriptor, o)
		fmt.Fprintf(w, "%s\t%s\n", e.TypeName, rn.FullName)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
