package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/exportall/internal/config"
)

// initCmd represents the init command.
var initCmd = newInitCmd()
var initProjectFlag string
var initForceFlag bool

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.FileName,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := filepath.Join(initProjectFlag, config.FileName)
			if err := config.Save(path, config.Default(), initForceFlag); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}
	cmd.Flags().StringVarP(&initProjectFlag, "project", "P", ".", "project directory")
	cmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite an existing config file")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
