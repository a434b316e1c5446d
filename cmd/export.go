package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vetcards/internal/transfer"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the deck as JSON or YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		var (
			format transfer.Format
			err    error
		)
		switch {
		case formatName != "":
			format, err = transfer.ParseFormat(formatName)
		case output != "":
			format, err = transfer.FormatFromPath(output)
		default:
			format = transfer.FormatJSON
		}
		if err != nil {
			return err
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		dk, err := d.library.Load(cmd.Context())
		if err != nil {
			return err
		}

		data, err := transfer.Encode(dk, format)
		if err != nil {
			return fmt.Errorf("encode deck: %w", err)
		}

		if output == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := transfer.WriteFile(output, data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d diseases to %s\n", dk.Len(), output)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "", "Output format: json or yaml (default json, or from --output extension)")
	exportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}
