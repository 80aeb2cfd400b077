package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"kubesql/executor"
	"kubesql/parser"
)

func NewPlanCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <sql>",
		Short: "Translate a SQL query and print the plan without touching any cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			return writePlan(cmd.OutOrStdout(), plan)
		},
	}
}

func writePlan(out io.Writer, plan *parser.QueryPlan) error {
	fmt.Fprintf(out, "namespaces: %s\n", strings.Join(plan.Namespaces, ", "))
	fmt.Fprintf(out, "contexts:   %s\n", strings.Join(plan.Contexts, ", "))

	fmt.Fprintln(out, "queries:")
	for _, q := range plan.Queries {
		chain := q.ChainOp
		if chain == "" {
			chain = "-"
		}
		fmt.Fprintf(out, "  %-3s %s.%s.%s %s %q\n", chain, q.Kind, q.Field1, q.Field2, q.Op, q.Value)
	}

	kinds, err := executor.PlanKinds(plan)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "selectors:")
	for _, kind := range kinds {
		selectors, err := executor.CompileSelectors(plan.Queries, kind)
		if err != nil {
			return err
		}
		for _, selector := range selectors {
			fmt.Fprintf(out, "  %s: %s\n", kind, selector)
		}
	}
	return nil
}
