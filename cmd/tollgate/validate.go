package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tollgate/tollgate/internal/logging"
	"github.com/tollgate/tollgate/pkg/domain"
	"github.com/tollgate/tollgate/pkg/policy"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a policy file against a workflow outline",
	Long:  `Loads a workflow outline (states and their outgoing events) and a policy file, and reports every policy entry that references an event the workflow never declares.`,
	Run: func(cmd *cobra.Command, args []string) {
		workflowPath, _ := cmd.Flags().GetString("workflow")
		policyPath, _ := cmd.Flags().GetString("policy")
		verbose, _ := cmd.Flags().GetBool("verbose")

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		if err := runValidate(logger, workflowPath, policyPath); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Policy is valid.")
	},
}

func init() {
	validateCmd.Flags().String("workflow", "workflow.yaml", "Path to the workflow outline")
	validateCmd.Flags().String("policy", "policy.yaml", "Path to the policy file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(logger *slog.Logger, workflowPath, policyPath string) error {
	outline, err := policy.LoadWorkflow(workflowPath)
	if err != nil {
		return err
	}

	file, err := policy.Load(policyPath)
	if err != nil {
		return err
	}

	declared := domain.EventSet(outline.States())
	logger.Debug("loaded workflow outline",
		"states", len(outline.Defs),
		"events", len(declared))

	for _, event := range file.Events() {
		if _, ok := declared[event]; !ok {
			return &domain.UnknownEventError{Event: event}
		}
		logger.Debug("event declared", "event", event)
	}

	return nil
}
