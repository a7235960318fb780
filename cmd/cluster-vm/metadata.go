package main

import (
	"github.com/spf13/cobra"

	"github.com/seapath/cluster-vm/api/v1alpha1"
)

// Metadata inspection commands
var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Inspect VM metadata",
	Long: `Inspect the key/value metadata attached to a virtual machine.

Metadata is attached at creation or clone time with --metadata and read
back here.`,
}

func init() {
	metadataCmd.AddCommand(metadataListCmd)
	metadataCmd.AddCommand(metadataGetCmd)
}

var metadataListCmd = &cobra.Command{
	Use:   "list <vm-name>",
	Short: "List the metadata keys of a VM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandListMetadata)
		req.Name = args[0]
		return executeRequest(cmd, req)
	},
}

var metadataGetCmd = &cobra.Command{
	Use:   "get <vm-name> <key>",
	Short: "Read one metadata value of a VM",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandGetMetadata)
		req.Name = args[0]
		req.MetadataName = args[1]
		return executeRequest(cmd, req)
	},
}
