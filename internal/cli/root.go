package cli

import (
	"github.com/spf13/cobra"

	"github.com/citytransit/transport-registry/pkg/logger"
)

// NewRootCmd creates the root command for the transport-registry binary.
func NewRootCmd(lggr logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "transport-registry",
		Short:         "In-memory transport registry with JSON and XML export",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newDemoCmd(lggr))

	return cmd
}
