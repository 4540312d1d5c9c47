package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var urlStrip bool

var urlCmd = &cobra.Command{
	Use:   "url <path-or-url>",
	Short: "Resolve a path to its public URL",
	Long: `Print the absolute public URL for a path. With --strip the
conversion runs the other way: an absolute URL is reduced to its
canonical object key.

Examples:
  bucketfs url media/123/img.jpg
  bucketfs url --strip https://mybucket.s3.amazonaws.com/media/123/img.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runURL,
}

func init() {
	rootCmd.AddCommand(urlCmd)

	urlCmd.Flags().BoolVar(&urlStrip, "strip", false, "Strip the bucket URL prefix instead of adding it")
}

func runURL(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fsys, cleanup, err := newFileSystem(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if urlStrip {
		fmt.Fprintln(cmd.OutOrStdout(), fsys.StripURL(args[0]))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), fsys.BuildURL(args[0]))
	return nil
}
