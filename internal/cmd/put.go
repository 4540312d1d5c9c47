package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudmere/bucketfs/pkg/vfs"
)

var putOverwrite bool

var putCmd = &cobra.Command{
	Use:   "put <path> [file]",
	Short: "Upload a file",
	Long: `Upload a local file (or stdin) to the given path.

Without --overwrite the upload fails if an object already exists at the
destination key. Uploaded objects are public-read.

Examples:
  bucketfs put media/123/img.jpg img.jpg
  cat img.jpg | bucketfs put media/123/img.jpg --overwrite`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPut,
}

func init() {
	rootCmd.AddCommand(putCmd)

	putCmd.Flags().BoolVar(&putOverwrite, "overwrite", false, "Replace an existing object at the destination")
}

func runPut(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	fsys, cleanup, err := newFileSystem(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := fsys.Write(ctx, args[0], in, putOverwrite); err != nil {
		if vfs.IsConflict(err) {
			return fmt.Errorf("%w (use --overwrite to replace)", err)
		}
		return err
	}
	return nil
}
