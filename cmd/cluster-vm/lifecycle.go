package main

import (
	"github.com/spf13/cobra"

	"github.com/seapath/cluster-vm/api/v1alpha1"
)

var createCmd = &cobra.Command{
	Use:   "create <vm-name>",
	Short: "Create a VM on the cluster",
	Long: `Create a new virtual machine from a configuration document and a
system image, and register it as a cluster resource.

The configuration document is passed to the cluster unchanged; the system
image path must exist as a regular file on this host.

Example:
  cluster-vm create guest0 --config guest0.conf --system-image /var/images/guest0.qcow2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandCreate)
		req.Name = args[0]

		if cmd.Flags().Changed("config") {
			configPath, _ := cmd.Flags().GetString("config")
			content, err := readConfigFile(configPath)
			if err != nil {
				return err
			}
			req.Config = content
		}
		req.SystemImage, _ = cmd.Flags().GetString("system-image")
		req.Force, _ = cmd.Flags().GetBool("force")
		enable, _ := cmd.Flags().GetBool("enable")
		req.Enable = &enable
		req.Metadata, _ = cmd.Flags().GetStringToString("metadata")
		req.PreferredHost, _ = cmd.Flags().GetString("preferred-host")
		req.PinnedHost, _ = cmd.Flags().GetString("pinned-host")

		return executeRequest(cmd, req)
	},
}

var cloneCmd = &cobra.Command{
	Use:   "clone <src-name> <vm-name>",
	Short: "Clone an existing VM",
	Long: `Clone an existing virtual machine into a new one, reusing the source
VM's disk contents and applying a new configuration document.

Example:
  cluster-vm clone guest0 guest1 --config guest1.conf`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandClone)
		req.SrcName = args[0]
		req.Name = args[1]

		if cmd.Flags().Changed("config") {
			configPath, _ := cmd.Flags().GetString("config")
			content, err := readConfigFile(configPath)
			if err != nil {
				return err
			}
			req.Config = content
		}
		req.Force, _ = cmd.Flags().GetBool("force")
		enable, _ := cmd.Flags().GetBool("enable")
		req.Enable = &enable
		req.Metadata, _ = cmd.Flags().GetStringToString("metadata")
		req.PreferredHost, _ = cmd.Flags().GetString("preferred-host")
		req.PinnedHost, _ = cmd.Flags().GetString("pinned-host")
		req.ClearConstraint, _ = cmd.Flags().GetBool("clear-constraint")

		return executeRequest(cmd, req)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{createCmd, cloneCmd} {
		cmd.Flags().String("config", "", "Path of the cluster configuration document")
		cmd.Flags().Bool("force", false, "Overwrite an existing VM of the same name")
		cmd.Flags().Bool("enable", true, "Put the VM under cluster control")
		cmd.Flags().StringToString("metadata", nil, "Metadata to attach, as key=value pairs")
		cmd.Flags().String("preferred-host", "", "Host the VM should preferably run on")
		cmd.Flags().String("pinned-host", "", "Host the VM must run on")
	}
	cloneCmd.Flags().Bool("clear-constraint", false, "Drop the source VM's host placement constraints")

	createCmd.Flags().String("system-image", "", "Path of the system image backing the VM")

	stopCmd.Flags().Bool("force", false, "Power the VM off instead of shutting it down")
}

var removeCmd = &cobra.Command{
	Use:   "remove <vm-name>",
	Short: "Remove a VM from the cluster",
	Long: `Remove a virtual machine: release it from cluster control and delete
its definition and image.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandRemove)
		req.Name = args[0]
		return executeRequest(cmd, req)
	},
}

var startCmd = &cobra.Command{
	Use:   "start <vm-name>",
	Short: "Start a VM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandStart)
		req.Name = args[0]
		return executeRequest(cmd, req)
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop <vm-name>",
	Short: "Stop a VM",
	Long: `Stop a virtual machine gracefully. With --force the VM is powered
off instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandStop)
		req.Name = args[0]
		req.Force, _ = cmd.Flags().GetBool("force")
		return executeRequest(cmd, req)
	},
}

var enableCmd = &cobra.Command{
	Use:   "enable <vm-name>",
	Short: "Put a VM under cluster control",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandEnable)
		req.Name = args[0]
		return executeRequest(cmd, req)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <vm-name>",
	Short: "Release a VM from cluster control",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandDisable)
		req.Name = args[0]
		return executeRequest(cmd, req)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <vm-name>",
	Short: "Show the cluster status of a VM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandStatus)
		req.Name = args[0]
		return executeRequest(cmd, req)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the VMs managed by the cluster",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandListVMs)
		return executeRequest(cmd, req)
	},
}

var purgeImageCmd = &cobra.Command{
	Use:   "purge-image <vm-name>",
	Short: "Delete old snapshots of a VM's image",
	Long: `Delete snapshots from a virtual machine's image, filtered by age or
by count.

A cutoff may be given as --date plus --time, as a single --iso8601
timestamp, or as a --posix millisecond timestamp; the three encodings are
mutually exclusive. Independently, --number deletes the N oldest
snapshots and cannot be combined with a cutoff.

Examples:
  cluster-vm purge-image guest0 --date 2021-01-24 --time 08:00
  cluster-vm purge-image guest0 --iso8601 2021-01-24T08:00:00
  cluster-vm purge-image guest0 --number 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.NewRequest(v1alpha1.CommandPurgeImage)
		req.Name = args[0]

		if cmd.Flags().Changed("date") || cmd.Flags().Changed("time") ||
			cmd.Flags().Changed("iso8601") || cmd.Flags().Changed("posix") {
			spec := &v1alpha1.PurgeSpec{}
			spec.Date, _ = cmd.Flags().GetString("date")
			spec.Time, _ = cmd.Flags().GetString("time")
			spec.ISO8601, _ = cmd.Flags().GetString("iso8601")
			if cmd.Flags().Changed("posix") {
				posix, _ := cmd.Flags().GetInt64("posix")
				spec.POSIX = &posix
			}
			req.PurgeSpec = spec
		}
		if cmd.Flags().Changed("number") {
			number, _ := cmd.Flags().GetInt("number")
			req.PurgeNumber = &number
		}

		return executeRequest(cmd, req)
	},
}

func init() {
	purgeImageCmd.Flags().String("date", "", "Cutoff date (YYYY-MM-DD, requires --time)")
	purgeImageCmd.Flags().String("time", "", "Cutoff time of day (HH:MM[:SS], requires --date)")
	purgeImageCmd.Flags().String("iso8601", "", "Cutoff as an ISO 8601 timestamp")
	purgeImageCmd.Flags().Int64("posix", 0, "Cutoff as milliseconds since the epoch")
	purgeImageCmd.Flags().Int("number", 0, "Number of snapshots to delete, oldest first")
}
