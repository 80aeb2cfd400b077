package cli

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

func NewShellCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive query shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.New("kubesql > ")
			if err != nil {
				return err
			}
			defer rl.Close()

			for {
				line, err := rl.Readline()
				if err != nil {
					break
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" {
					break
				}
				rl.SaveHistory(line)

				if err := runQuery(cmd, opts, line); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Bye!")
			return nil
		},
	}
}
