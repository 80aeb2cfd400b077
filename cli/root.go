package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds the flags shared by all commands.
type RootOptions struct {
	Kubeconfig string
	ConfigFile string
}

// NewRootCommand creates the kubesql root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "kubesql",
		Short:         "Query Kubernetes resources across contexts and namespaces with SQL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "path to the kubeconfig file (default: standard loading rules)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to the kubesql config file (default: ~/.kubesql.yaml)")

	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewPlanCommand(opts))
	cmd.AddCommand(NewContextsCommand(opts))
	cmd.AddCommand(NewShellCommand(opts))

	return cmd
}

// kubeconfigPath resolves the kubeconfig path, flag first, config file second.
func (o *RootOptions) kubeconfigPath() (string, error) {
	if o.Kubeconfig != "" {
		return o.Kubeconfig, nil
	}
	config, err := LoadConfig(o.ConfigFile)
	if err != nil {
		return "", err
	}
	return config.Kubeconfig, nil
}
