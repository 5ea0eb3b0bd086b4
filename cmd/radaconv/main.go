// Command radaconv batch-converts a directory of Windows-1251 encoded law
// documents into UTF-8 copies in another directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skrymets/radatext"
	"github.com/skrymets/radatext/batch"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCmd(logger).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	var (
		srcDir       string
		destDir      string
		mask         string
		utf8Fallback bool
	)

	cmd := &cobra.Command{
		Use:   "radaconv",
		Short: "Convert a directory of Windows-1251 files to UTF-8",
		Long: `radaconv reads every file in the source directory whose name matches
the mask, decodes it from Windows-1251 and writes it to the destination
directory as UTF-8 under the same filename. Subdirectories are ignored;
a file that fails to convert is logged and skipped.`,
		Version: radatext.Version,
		Example: `  radaconv --src /data/laws --dest /data/laws-utf8 --mask "d0*.htm"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Missing or invalid configuration is the "no task" outcome:
			// show usage and return cleanly without converting anything.
			if srcDir == "" || destDir == "" {
				logger.Error("both --src and --dest are required")
				return cmd.Usage()
			}

			task := radatext.Task{
				InputDir:  srcDir,
				OutputDir: destDir,
				Mask:      mask,
			}
			if err := batch.ValidateTask(task); err != nil {
				logger.Error("invalid task", zap.Error(err))
				return cmd.Usage()
			}

			runner := batch.NewRunner(
				batch.WithLogger(logger),
				batch.WithUTF8Fallback(utf8Fallback),
			)
			// Per-file failures are already logged and counted; only a
			// failed directory listing reaches here.
			_, err := runner.Run(task)
			return err
		},
	}

	cmd.Flags().StringVarP(&srcDir, "src", "s", "", "directory that contains the input files")
	cmd.Flags().StringVarP(&destDir, "dest", "d", "", "directory where the converted files are stored")
	cmd.Flags().StringVarP(&mask, "mask", "m", radatext.DefaultMask, "wildcard mask for files to process ('*' and '?', case-insensitive)")
	cmd.Flags().BoolVar(&utf8Fallback, "assume-utf8-fallback", false, "retry a file as UTF-8 when the Windows-1251 decode fails")
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	// Malformed option syntax is the same "no task" outcome as missing
	// options: show usage and return cleanly.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		logger.Error("invalid arguments", zap.Error(err))
		return c.Usage()
	})

	return cmd
}
