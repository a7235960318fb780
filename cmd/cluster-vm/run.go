package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seapath/cluster-vm/api/v1alpha1"
	"github.com/seapath/cluster-vm/internal/cluster"
	"github.com/seapath/cluster-vm/internal/clustervm"
	"github.com/seapath/cluster-vm/internal/config"
	"github.com/seapath/cluster-vm/internal/loader"
	"github.com/seapath/cluster-vm/internal/output"
	"github.com/seapath/cluster-vm/internal/validate"
)

// errCommandFailed marks a request whose failure envelope was already
// printed; main exits non-zero without repeating the message.
var errCommandFailed = errors.New("command failed")

// executeRequest runs req against the cluster and prints the response
// envelope in the selected output format.
func executeRequest(cmd *cobra.Command, req *v1alpha1.Request) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	// Flags override the environment
	if outputFormat != "" {
		cfg.Output = outputFormat
	}
	if managerPath != "" {
		cfg.ManagerPath = managerPath
	}
	if cmd.Flags().Changed("timeout") {
		cfg.ManagerTimeout = managerTimeout
	}

	if err := output.ValidateFormat(cfg.Output); err != nil {
		return err
	}

	ctx := context.Background()
	if cfg.ManagerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ManagerTimeout)
		defer cancel()
	}

	manager := cluster.NewExecManager(cfg.ManagerPath)
	result, runErr := clustervm.Run(ctx, manager, req)
	resp := clustervm.Respond(result, runErr)

	formatter, err := output.NewFormatter(output.Options{
		Format:    output.Format(cfg.Output),
		NoHeaders: noHeaders,
	})
	if err != nil {
		return err
	}

	text, err := formatter.FormatResponse(resp)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(text)

	if runErr != nil {
		return errCommandFailed
	}
	return nil
}

// readConfigFile loads a cluster configuration document to pass along
// with create and clone requests.
func readConfigFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return string(data), nil
}

var runCmd = &cobra.Command{
	Use:   "run <request.yaml>",
	Short: "Execute a request document",
	Long: `Execute a single request loaded from a YAML (or JSON) document.

The document carries the same fields the individual subcommands accept:

  command: purge_image
  name: guest0
  purge_spec:
    date: "2021-01-24"
    time: "08:00"

This is the entry point used by configuration-management layers that
render request documents instead of composing command lines.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := loader.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		return executeRequest(cmd, req)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <request.yaml>",
	Short: "Validate a request document without executing it",
	Long: `Check a request document against the per-command requirements and
report the outcome without contacting the cluster.

Validation failures are reported in the same envelope format an execution
would produce.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := loader.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		if _, err := validate.Request(req); err != nil {
			cfg, cerr := config.FromEnv()
			if cerr != nil {
				return cerr
			}
			if outputFormat != "" {
				cfg.Output = outputFormat
			}
			formatter, ferr := output.NewFormatter(output.Options{
				Format:    output.Format(cfg.Output),
				NoHeaders: noHeaders,
			})
			if ferr != nil {
				return ferr
			}
			text, ferr := formatter.FormatResponse(clustervm.Respond(v1alpha1.Result{}, err))
			if ferr != nil {
				return ferr
			}
			fmt.Print(text)
			return errCommandFailed
		}

		fmt.Printf("✓ Request is valid (command: %s)\n", req.Command)
		return nil
	},
}
