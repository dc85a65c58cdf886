// tracegate CLI - inspect and dry-run trace admission configuration.
package main

import (
	"fmt"
	"os"

	"github.com/tracegate/tracegate/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
