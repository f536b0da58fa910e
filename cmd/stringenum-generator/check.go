package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var (
	checkOpts genOptions
	dumpPlan  bool
)

var checkCmd = &cobra.Command{
	Use:   "check [packages]",
	Short: "Validate enums without writing files",
	Long: `Resolve every requested enum and report problems without writing.

Checks:
  - Types exist and have enum shape
  - Every variant has a well-formed canonical string
  - No string is claimed by two variants
  - Custom mode has String and a parse func
  - Generated files are up to date`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, newPipeline(cmd, args, checkOpts), dumpPlan)
	},
}

func init() {
	checkOpts.bind(checkCmd)
	checkCmd.Flags().BoolVar(&dumpPlan, "dump", false, "print the resolved enums")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, p *pipeline, dump bool) error {
	out := cmd.OutOrStdout()

	res, err := p.resolve()
	if res == nil || res.plan == nil {
		return err
	}

	for _, e := range res.plan.Enums {
		fmt.Fprintf(out, "ok\t%s (%s, %s, %d variants)\n",
			e.ID(), e.Shape, e.Spec.Mode, len(e.Spec.Variants))

		for _, w := range res.diags.ForEnum(e.Spec.Name).Warnings {
			fmt.Fprintf(out, "warn\t%s\n", w)
		}
	}

	if dump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
		for _, e := range res.plan.Enums {
			cfg.Fdump(out, e.Spec)
		}
	}

	if err != nil {
		return err
	}

	stale, err := p.stale(res)
	if err != nil {
		return err
	}

	for _, path := range stale {
		fmt.Fprintf(out, "stale\t%s\n", path)
	}

	if len(stale) > 0 {
		return fmt.Errorf("%d generated files are out of date, run gen", len(stale))
	}

	return nil
}
