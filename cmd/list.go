package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/exportall/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listFlags requestFlags

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [source]",
		Short: "Show the modules a barrel would re-export",
		Long: `List scans the source directory exactly like generation does and shows
every child: the modules with their entry files and default export
detection, and the entries that are skipped. Nothing is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := listFlags.requests(cmd, args)
			if err != nil {
				return err
			}

			results := make([]m.Result, 0, len(requests))

			for _, request := range requests {
				result, err := workflow.List(request)
				if err != nil {
					return err
				}

				results = append(results, result)
			}

			return checkAborted(results)
		},
	}
	listFlags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
