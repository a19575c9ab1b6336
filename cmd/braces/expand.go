package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/braces/expander"
)

type expandFlags struct {
	limit  int
	format string
	sort   bool
}

func newExpandCmd(a *app) *cobra.Command {
	f := &expandFlags{}

	cmd := &cobra.Command{
		Use:   "expand [pattern...]",
		Short: "Expand brace patterns",
		Long: `Expand each pattern argument, or each line of stdin when no arguments are
given. Validation is all-or-nothing: if any pattern is malformed nothing is
printed and the command fails.`,
		Example: `  braces expand '~/{Downloads,Pictures}/*.{jpg,gif,png}'
  braces expand --format json 'It{{em,alic}iz,erat}e{d,}, please.'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd, a, f, args)
		},
	}

	cmd.Flags().IntVarP(&f.limit, "limit", "n", 0, "maximum expansions per pattern (0 uses expand.max_results)")
	cmd.Flags().StringVarP(&f.format, "format", "o", "", "output format: text, json, yaml (default from output.format)")
	cmd.Flags().BoolVar(&f.sort, "sort", false, "sort expansions of each pattern")

	return cmd
}

func runExpand(cmd *cobra.Command, a *app, f *expandFlags, args []string) error {
	format := f.format
	if format == "" {
		format = a.cfg.Output.Format
	}
	format = strings.ToLower(format)
	if format != "text" && format != "json" && format != "yaml" {
		return fmt.Errorf("unknown output format %q", format)
	}

	patterns := args
	if len(patterns) == 0 {
		var err error
		if patterns, err = readLines(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	// Expand everything before printing anything.
	exp := expander.New(a.cfg.Expand, a.log, a.metrics)
	results := make([]*expander.Result, 0, len(patterns))
	for _, p := range patterns {
		res, err := exp.Expand(cmd.Context(), p, f.limit)
		if err != nil {
			return err
		}
		if f.sort {
			sort.Strings(res.Expansions)
		}
		if res.Truncated {
			a.log.Warn("output truncated", "pattern", p, "count", res.Count)
		}
		results = append(results, res)
	}

	return writeResults(cmd.OutOrStdout(), format, results)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}

	return lines, sc.Err()
}

func writeResults(w io.Writer, format string, results []*expander.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}

		return enc.Close()
	default:
		bw := bufio.NewWriter(w)
		for _, res := range results {
			for _, s := range res.Expansions {
				if _, err := fmt.Fprintln(bw, s); err != nil {
					return err
				}
			}
		}

		return bw.Flush()
	}
}
