package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/pf9/region-wizard/internal/cli"
)

func main() {
	if err := cli.RootCmd(context.Background(), afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
