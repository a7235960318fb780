package main

import (
	"github.com/spf13/cobra"

	"github.com/seapath/cluster-vm/api/v1alpha1"
)

// Snapshot management commands
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage VM snapshots",
	Long: `Manage point-in-time snapshots of a virtual machine's image.

Snapshots are created and restored by the cluster's VM manager; this
command group fronts the matching manager operations.`,
}

func init() {
	snapshotCmd.AddCommand(snapshotCreateCmd)
	snapshotCmd.AddCommand(snapshotRemoveCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotRollbackCmd)
}

var snapshotCreateCmd = &cobra.Command{
	Use:   "create <vm-name> <snapshot-name>",
	Short: "Create a snapshot of a VM",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandCreateSnapshot)
		req.Name = args[0]
		req.SnapshotName = args[1]
		return executeRequest(cmd, req)
	},
}

var snapshotRemoveCmd = &cobra.Command{
	Use:   "remove <vm-name> <snapshot-name>",
	Short: "Remove a snapshot of a VM",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandRemoveSnapshot)
		req.Name = args[0]
		req.SnapshotName = args[1]
		return executeRequest(cmd, req)
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list <vm-name>",
	Short: "List the snapshots of a VM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandListSnapshots)
		req.Name = args[0]
		return executeRequest(cmd, req)
	},
}

var snapshotRollbackCmd = &cobra.Command{
	Use:   "rollback <vm-name> <snapshot-name>",
	Short: "Restore a VM to a snapshot",
	Long: `Restore a virtual machine's image to a previously created snapshot.

The VM is stopped for the rollback and restarted afterwards by the
cluster's VM manager.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandRollbackSnapshot)
		req.Name = args[0]
		req.SnapshotName = args[1]
		return executeRequest(cmd, req)
	},
}
