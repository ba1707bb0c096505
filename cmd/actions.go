package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/recordwire/converter"
	"github.com/agentic-research/recordwire/internal/recorddef"
)

var (
	actionsBaseURL  string
	actionsNames    []string
	actionsSearchID string
	actionsCompact  bool
)

func init() {
	actionsCmd.Flags().StringVar(&actionsBaseURL, "base-url", "", "Service base URL (required)")
	actionsCmd.Flags().StringArrayVar(&actionsNames, "action", nil, "Action to emit a link for (repeatable)")
	actionsCmd.Flags().StringVar(&actionsSearchID, "search-id", "", "Override the id a search link targets")
	actionsCmd.Flags().BoolVar(&actionsCompact, "compact", false, "Render without whitespace")
	_ = actionsCmd.MarkFlagRequired("base-url")
	rootCmd.AddCommand(actionsCmd)
}

var actionsCmd = &cobra.Command{
	Use:   "actions [recordType] [recordId]",
	Short: "Emit the actionLinks object for a record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := recorddef.Actions(actionsNames)
		if err != nil {
			return err
		}
		if len(actions) == 0 {
			return fmt.Errorf("at least one --action is required")
		}

		factory := converter.NewFactory(converter.Context{BaseURL: actionsBaseURL})
		obj, err := factory.ActionLinkBuilder().Build(converter.ActionContext{
			Actions:        actions,
			RecordType:     args[0],
			RecordID:       args[1],
			SearchRecordID: actionsSearchID,
		})
		if err != nil {
			return err
		}

		if actionsCompact {
			fmt.Fprintln(cmd.OutOrStdout(), obj.Compact())
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), obj.Pretty())
		}
		return nil
	},
}
