package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

// Global flags. Empty or zero values fall back to the environment
// configuration.
var (
	outputFormat   string
	noHeaders      bool
	managerPath    string
	managerTimeout time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Request failures already printed their envelope; everything
		// else (flag errors, unreadable files) is reported here.
		if !errors.Is(err, errCommandFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cluster-vm",
	Short: "cluster-vm - clustered VM lifecycle tool",
	Long: `cluster-vm manages the lifecycle of virtual machines running on a
highly-available cluster.

Every command is validated locally, delegated to the cluster's VM manager,
and reported as a uniform response envelope. Supported operations cover
creation, cloning, removal, start/stop, cluster enablement, status,
snapshots, snapshot purging, and metadata inspection.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "",
		"Output format: table, yaml or json (default from CLUSTER_VM_OUTPUT, json)")
	rootCmd.PersistentFlags().BoolVar(&noHeaders, "no-headers", false,
		"Omit headers in table output")
	rootCmd.PersistentFlags().StringVar(&managerPath, "manager-path", "",
		"Path of the VM manager executable (default from CLUSTER_VM_MANAGER_PATH)")
	rootCmd.PersistentFlags().DurationVar(&managerTimeout, "timeout", 0,
		"Time limit for a single manager invocation (default from CLUSTER_VM_MANAGER_TIMEOUT, unbounded)")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(cloneCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(purgeImageCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(metadataCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
