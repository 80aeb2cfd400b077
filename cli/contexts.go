package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kubesql/catalog"
)

func NewContextsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contexts",
		Short: "List the contexts known to your kubeconfig",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.kubeconfigPath()
			if err != nil {
				return err
			}
			ct, err := catalog.Load(path)
			if err != nil {
				return err
			}
			for _, name := range ct.ContextNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
