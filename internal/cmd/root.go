// Package cmd implements the bucketfs CLI commands.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cloudmere/bucketfs/internal/config"
	"github.com/cloudmere/bucketfs/internal/observability"
	"github.com/cloudmere/bucketfs/pkg/store/s3"
	"github.com/cloudmere/bucketfs/pkg/vfs"
)

var (
	rootConfigPath string
	rootLogLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "bucketfs",
	Short: "File-system operations over an S3 bucket",
	Long: `bucketfs exposes an S3 bucket through a hierarchical file-system
contract: list directories, read and write files, delete recursively,
stat timestamps and resolve public URLs.

The bucket has no native directories; bucketfs simulates them over flat
object keys using "/" as the delimiter.

Connection settings come from bucketfs.yaml, BUCKETFS_* environment
variables, or --config.

Examples:
  bucketfs ls media/
  bucketfs cat media/123/img.jpg > img.jpg
  bucketfs put media/123/img.jpg img.jpg --overwrite
  bucketfs rm media/123 --dir
  bucketfs url media/123/img.jpg`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		observability.Init(rootLogLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config file (default bucketfs.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	defer observability.Sync()
	return rootCmd.ExecuteContext(ctx)
}

// newFileSystem builds the store client and file system from configuration.
// The returned cleanup func releases the store client.
func newFileSystem(ctx context.Context) (*vfs.FileSystem, func(), error) {
	cfg, err := config.Load(rootConfigPath)
	if err != nil {
		return nil, nil, err
	}

	st, err := s3.New(ctx, s3.Config{
		Bucket:          cfg.Bucket,
		Region:          cfg.Region,
		Endpoint:        cfg.Endpoint,
		Profile:         cfg.Profile,
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
		ForcePathStyle:  cfg.ForcePathStyle,
	})
	if err != nil {
		return nil, nil, err
	}

	fsys, err := vfs.New(st, vfs.Config{
		Bucket:    cfg.Bucket,
		MediaRoot: cfg.MediaRoot,
		PlainHTTP: cfg.PlainHTTP,
		RateLimit: cfg.RateLimit,
	}, observability.CLILogger)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}

	return fsys, func() { _ = st.Close() }, nil
}
