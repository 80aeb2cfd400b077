package cli

import (
	"github.com/spf13/cobra"

	"kubesql/catalog"
	"kubesql/executor"
	"kubesql/parser"
	"kubesql/printer"
)

func NewQueryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "query <sql>",
		Short: "Run a SQL query against the clusters of your kubeconfig",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, opts, args[0])
		},
	}
}

func runQuery(cmd *cobra.Command, opts *RootOptions, sql string) error {
	path, err := opts.kubeconfigPath()
	if err != nil {
		return err
	}
	ct, err := catalog.Load(path)
	if err != nil {
		return err
	}

	plan, err := parser.Parse(sql)
	if err != nil {
		return err
	}
	if err := ct.ValidateContexts(plan.Contexts); err != nil {
		return err
	}

	ex := executor.NewSimpleExecutor(executor.KubeconfigClientFactory(ct))
	results, err := ex.Execute(cmd.Context(), plan)
	if err != nil {
		return err
	}

	printer.Print(cmd.OutOrStdout(), plan, results)
	return nil
}
