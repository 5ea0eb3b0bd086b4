// Command radatext prints the visible text of one HTML document, the way
// a browser would render it with markup, scripts and styles removed.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skrymets/radatext"
	"github.com/skrymets/radatext/extract"
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
		outputPath string
		selectExpr string
	)

	cmd := &cobra.Command{
		Use:   "radatext FILE",
		Short: "Extract the visible body text of an HTML file",
		Long: `radatext parses one HTML file (assumed to be UTF-8, run radaconv
first if it is not) and prints the visible text of its body to standard
output. Malformed markup is parsed best-effort; a read failure is fatal.`,
		Version: radatext.Version,
		Example: `  radatext d188.htm
  radatext --select "//div[@class='law']" d188.htm
  radatext -o d188.txt d188.htm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := extractText(args[0], selectExpr)
			if err != nil {
				logger.Error("extraction failed", zap.Error(err))
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(text+"\n"), 0o644); err != nil {
					logger.Error("cannot write output", zap.Error(err))
					return err
				}
				return nil
			}
			fmt.Println(text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the extracted text to a file instead of stdout")
	cmd.Flags().StringVar(&selectExpr, "select", "", "XPath of the element to extract instead of the document body")
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	return cmd
}

func extractText(path, selectExpr string) (string, error) {
	if selectExpr == "" {
		return extract.TextFromFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return extract.TextAt(f, selectExpr)
}
