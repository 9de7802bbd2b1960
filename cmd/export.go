package cmd

import (
	"fmt"
	"os"

	"list-manager/feature/importer"

	"github.com/spf13/cobra"
)

var exportOutput string

// exportCmd dumps the store as a versioned JSON document.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all lists as a JSON document",
	Long:  `Exports every list, item, and image payload as a versioned JSON document suitable for re-import.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := buildImporterService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		data, err := svc.Export(cmd.Context())
		if err != nil {
			return err
		}

		encoded := importer.Encode(data)
		if exportOutput == "" || exportOutput == "-" {
			fmt.Println(string(encoded))
			return nil
		}
		if err := os.WriteFile(exportOutput, encoded, 0o644); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		fmt.Printf("Exported %d list(s) to %s\n", len(data.Lists), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	RootCmd.AddCommand(exportCmd)
}
