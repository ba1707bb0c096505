package cmd

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/recordwire/converter"
	"github.com/agentic-research/recordwire/internal/recorddef"
)

var (
	convertBaseURL    string
	convertRecordURL  string
	convertCompact    bool
	convertQuery      string
	convertGenerateID bool
)

func init() {
	convertCmd.Flags().StringVar(&convertBaseURL, "base-url", "", "Service base URL; enables record link action links")
	convertCmd.Flags().StringVar(&convertRecordURL, "record-url", "", "Record URL; enables resource link action links")
	convertCmd.Flags().BoolVar(&convertCompact, "compact", false, "Render without whitespace")
	convertCmd.Flags().StringVarP(&convertQuery, "query", "q", "", "JSONPath to run over the converted document")
	convertCmd.Flags().BoolVar(&convertGenerateID, "generate-id", false, "Generate a UUID for records declared without an id")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert [definition.hcl]",
	Short: "Convert a record definition file to its JSON wire form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := recorddef.Load(args[0])
		if err != nil {
			return err
		}
		entity, err := recorddef.BuildEntity(def, convertGenerateID)
		if err != nil {
			return err
		}

		factory := converter.NewFactory(converter.Context{
			BaseURL:   convertBaseURL,
			RecordURL: convertRecordURL,
		})
		conv, err := factory.ConverterFor(entity)
		if err != nil {
			return err
		}

		var out string
		if convertCompact {
			out, err = converter.CompactJSON(conv)
		} else {
			out, err = converter.JSON(conv)
		}
		if err != nil {
			return err
		}

		if convertQuery != "" {
			return printQuery(cmd, out, convertQuery)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// printQuery runs a JSONPath over the rendered document and prints each
// match on its own line.
func printQuery(cmd *cobra.Command, doc, selector string) error {
	x, err := jp.ParseString(selector)
	if err != nil {
		return fmt.Errorf("invalid jsonpath %q: %w", selector, err)
	}
	root, err := oj.ParseString(doc)
	if err != nil {
		return fmt.Errorf("reparse output: %w", err)
	}
	for _, match := range x.Get(root) {
		fmt.Fprintln(cmd.OutOrStdout(), oj.JSON(match))
	}
	return nil
}
