package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudmere/bucketfs/pkg/store/s3"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check connectivity and configuration",
	Long: `Verify that the configured bucket is reachable with the current
credentials, and show the supported region identifiers.

Example:
  bucketfs doctor`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	fsys, cleanup, err := newFileSystem(ctx)
	if err != nil {
		fmt.Fprintf(out, "config:  FAIL (%v)\n", err)
		fmt.Fprintf(out, "regions: %s\n", strings.Join(s3.SupportedRegions(), ", "))
		return err
	}
	defer cleanup()

	fmt.Fprintln(out, "config:  ok")

	if err := fsys.Probe(ctx); err != nil {
		fmt.Fprintf(out, "bucket:  FAIL (%v)\n", err)
		return err
	}
	fmt.Fprintln(out, "bucket:  ok")
	return nil
}
