package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statCmd = &cobra.Command{
	Use:   "stat <path>",
	Short: "Show file or directory status",
	Long: `Report whether the path exists as a file or directory, and the
last-modified timestamp for files.

Example:
  bucketfs stat media/123/img.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runStat,
}

func init() {
	rootCmd.AddCommand(statCmd)
}

func runStat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	fsys, cleanup, err := newFileSystem(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "key:       %s\n", fsys.ToKey(path))
	fmt.Fprintf(out, "url:       %s\n", fsys.BuildURL(path))

	if fsys.FileExists(ctx, path) {
		fmt.Fprintln(out, "type:      file")
		if mod := fsys.LastModified(ctx, path); !mod.IsZero() {
			fmt.Fprintf(out, "modified:  %s\n", mod.Format(time.RFC3339))
		}
		return nil
	}

	if fsys.DirectoryExists(ctx, path) {
		fmt.Fprintln(out, "type:      directory")
		return nil
	}

	fmt.Fprintln(out, "type:      absent")
	return nil
}
