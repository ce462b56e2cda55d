// Command readable extracts the main readable content and metadata from
// an HTML page.
package main

import (
	cmd "github.com/tantowi/readable/internal/cli"
)

func main() {
	cmd.Execute()
}
