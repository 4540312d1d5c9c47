package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudmere/bucketfs/pkg/vfs"
)

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List a directory",
	Long: `List the immediate subdirectories and files of a directory.

With no path, lists the media root. Subdirectories are printed with a
trailing "/".

Examples:
  bucketfs ls
  bucketfs ls media/123`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	fsys, cleanup, err := newFileSystem(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	for _, dir := range fsys.ListDirectories(ctx, path) {
		fmt.Fprintln(cmd.OutOrStdout(), dir+vfs.Delimiter)
	}
	for _, file := range fsys.ListFiles(ctx, path) {
		fmt.Fprintln(cmd.OutOrStdout(), file)
	}
	return nil
}
