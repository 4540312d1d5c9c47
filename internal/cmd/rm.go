package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rmDir       bool
	rmRecursive bool
)

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete a file or directory",
	Long: `Delete a single file, or with --dir an entire directory.

Directory deletion enumerates every key under the prefix and removes
them in batches. It always removes the full depth of the tree; the
--recursive flag is accepted for familiarity but does not change that.

Deleting something that does not exist is a no-op.

Examples:
  bucketfs rm media/123/img.jpg
  bucketfs rm media/123 --dir`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)

	rmCmd.Flags().BoolVar(&rmDir, "dir", false, "Treat the path as a directory and delete its contents")
	rmCmd.Flags().BoolVarP(&rmRecursive, "recursive", "r", true, "Delete the full tree (directory deletes are always full-depth)")
}

func runRm(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fsys, cleanup, err := newFileSystem(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if rmDir {
		fsys.DeleteDirectory(ctx, args[0], rmRecursive)
		return nil
	}

	fsys.DeleteFile(ctx, args[0])
	return nil
}
