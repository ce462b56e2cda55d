package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tantowi/readable/internal/fetchadapter"
	"github.com/tantowi/readable/internal/siteconfigstore"
	"github.com/tantowi/readable/pkg/retry"
	"github.com/tantowi/readable/pkg/timeutil"
)

var (
	siteConfigTestRoots []string
	siteConfigUserAgent string
)

var siteConfigCmd = &cobra.Command{
	Use:   "siteconfig",
	Short: "Inspect and test FTR-style site-config bundles",
}

var siteConfigTestCmd = &cobra.Command{
	Use:   "test <host>",
	Short: "Resolve a host's site-config bundle and fetch its test_url entries",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(siteConfigTestRoots) == 0 {
			fail(fmt.Errorf("--site-config-root is required"))
		}
		host := args[0]

		loader := siteconfigstore.NewLoader(siteConfigTestRoots...)
		bundle, err := loader.LoadForHost(host)
		if err != nil {
			fail(err)
		}
		if len(bundle.TestURLs) == 0 {
			fmt.Printf("%s: no test_url entries configured\n", host)
			return
		}

		client := fetchadapter.NewClient(nil, nil)
		retryParam := retry.NewRetryParam(500*time.Millisecond, 200*time.Millisecond, 1, 3, timeutil.NewBackoffParam(time.Second, 2.0, 10*time.Second))

		results := client.TestSiteConfig(context.Background(), bundle, siteConfigUserAgent, retryParam)
		for _, r := range results {
			if r.Fetched {
				fmt.Printf("OK   %s (%d bytes)\n", r.URL, len(r.Body))
			} else {
				fmt.Printf("FAIL %s: %v\n", r.URL, r.Err)
			}
		}
	},
}

func init() {
	siteConfigTestCmd.Flags().StringArrayVar(&siteConfigTestRoots, "site-config-root", nil, "directory searched for per-host FTR files (repeatable)")
	siteConfigTestCmd.Flags().StringVar(&siteConfigUserAgent, "user-agent", "readable/1.0", "user agent string for test_url fetches")
	siteConfigCmd.AddCommand(siteConfigTestCmd)
	rootCmd.AddCommand(siteConfigCmd)
}
