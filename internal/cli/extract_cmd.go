package cmd

import (
	"io"
	"os"
	"path/filepath"

	readable "github.com/tantowi/readable"
	"github.com/tantowi/readable/internal/outformat"
	"github.com/tantowi/readable/pkg/fileutil"
	"github.com/spf13/cobra"
)

var (
	sourceURL       string
	siteConfigRoots []string
	minScore        float64
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract the main content from an HTML file (or stdin)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rawHTML, err := readInput(args)
		if err != nil {
			fail(err)
		}

		builder := readable.NewBuilder()
		if cfgFile != "" {
			builder, err = builder.WithConfigFile(cfgFile)
			if err != nil {
				fail(err)
			}
		}
		if minScore > 0 {
			builder = builder.WithMinScore(minScore)
		}
		if len(siteConfigRoots) > 0 {
			builder = builder.WithSiteConfigRoots(siteConfigRoots...)
		}

		r, err := builder.Build()
		if err != nil {
			fail(err)
		}

		var article readable.Article
		if sourceURL != "" {
			article, err = r.ParseWithURL(rawHTML, sourceURL)
		} else {
			article, err = r.Parse(rawHTML)
		}
		if err != nil {
			fail(err)
		}

		rendered, err := outformat.Render(article, outformat.Format(format))
		if err != nil {
			fail(err)
		}

		if err := writeOutput(rendered); err != nil {
			fail(err)
		}
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeOutput(content string) error {
	if output == "" {
		_, err := os.Stdout.WriteString(content)
		return err
	}
	if dir := filepath.Dir(output); dir != "." {
		if ferr := fileutil.EnsureDir(dir); ferr != nil {
			return ferr
		}
	}
	return os.WriteFile(output, []byte(content), 0o644)
}

func init() {
	extractCmd.Flags().StringVar(&sourceURL, "url", "", "source URL, enabling relative-link resolution and site-config lookup")
	extractCmd.Flags().StringArrayVar(&siteConfigRoots, "site-config-root", nil, "directory searched for per-host FTR files (repeatable)")
	extractCmd.Flags().Float64Var(&minScore, "min-score", 0, "override the minimum score threshold for a readable article")
	rootCmd.AddCommand(extractCmd)
}
