package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// @title POP Field Operations API
// @version 1.0
// @description Field-operations API for telecom points-of-presence: POPs, activities, technicians, generators, fuel supplies and checklists.
// @host localhost:8080
// @BasePath /api
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "fieldops",
		Short:        "POP field operations API",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}
