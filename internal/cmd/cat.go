package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Print file contents",
	Long: `Fetch a file and write its contents to stdout.

The whole object is buffered in memory before output; this is the
contract of the underlying file system, not a streaming read.

Example:
  bucketfs cat media/123/img.jpg > img.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fsys, cleanup, err := newFileSystem(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	body := fsys.Open(ctx, args[0])
	defer func() { _ = body.Close() }()

	_, err = io.Copy(cmd.OutOrStdout(), body)
	return err
}
