package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"list-manager/core/config"
	"list-manager/core/database"
	"list-manager/core/logger"
	"list-manager/core/storage"

	"list-manager/feature/importer"
	"list-manager/feature/lists"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importStrategy   string
	importCommit     bool
	importYes        bool
	importNoValidate bool
)

// importCmd previews or commits an import from a file.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import lists from a JSON export or plain text file",
	Long: `Reads the given file, reconciles it against the store under the chosen
merge strategy, and prints the resulting change-set. Without --commit this is
a dry run; with --commit the change-set is applied after confirmation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}

		svc, logg, err := buildImporterService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		opts := importer.ImportOptions{
			Strategy:     importer.MergeStrategy(importStrategy),
			ValidateData: !importNoValidate,
		}

		report := func(p importer.Progress) {
			logg.Debug("progress",
				zap.String("operation", p.CurrentOperation),
				zap.Int("percent", p.Percentage()),
			)
		}

		preview, err := svc.Preview(cmd.Context(), raw, opts, report)
		if err != nil {
			return err
		}

		renderPreview(preview)

		if !importCommit {
			fmt.Println("\nDry run only. Re-run with --commit to apply.")
			return nil
		}
		if preview.TotalChanges() == 0 && !preview.DeleteAll {
			fmt.Println("\nNothing to apply.")
			return nil
		}
		if !importYes && !confirm("Apply these changes?") {
			fmt.Println("Aborted.")
			return nil
		}

		result, err := svc.Import(cmd.Context(), raw, opts, report)
		if err != nil {
			return err
		}

		fmt.Printf("\nImport committed: %d list(s) created, %d updated; %d item(s) created, %d updated; %d image(s) created.\n",
			result.ListsCreated, result.ListsUpdated,
			result.ItemsCreated, result.ItemsUpdated, result.ImagesCreated)
		return nil
	},
}

// buildImporterService wires a Service from configuration the same way the
// server does, minus the HTTP stack.
func buildImporterService() (*importer.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := lists.Migrate(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return importer.NewService(lists.NewStore(db), store, cfg.Storage.Bucket, logg), logg, nil
}

// renderPreview prints the change-set as tables.
func renderPreview(p *importer.ImportPreview) {
	summary := table.NewWriter()
	summary.SetOutputMirror(os.Stdout)
	summary.SetStyle(table.StyleLight)
	summary.AppendHeader(table.Row{"Change", "Count"})
	summary.AppendRows([]table.Row{
		{"Lists to create", p.ListsToCreate},
		{"Lists to update", p.ListsToUpdate},
		{"Items to create", p.ItemsToCreate},
		{"Items to update", p.ItemsToUpdate},
		{"Images to create", p.ImagesToCreate},
	})
	if p.DeleteAll {
		summary.AppendFooter(table.Row{"Existing data", text.FgRed.Sprint("DELETED FIRST")})
	}
	summary.Render()

	if len(p.Conflicts) > 0 {
		fmt.Println()
		conflicts := table.NewWriter()
		conflicts.SetOutputMirror(os.Stdout)
		conflicts.SetStyle(table.StyleLight)
		conflicts.AppendHeader(table.Row{"Conflict", "Entity", "Detail"})
		for _, cf := range p.Conflicts {
			conflicts.AppendRow(table.Row{cf.Type, cf.EntityName, cf.Message})
		}
		conflicts.Render()
	}

	for _, e := range p.Errors {
		fmt.Println(text.FgYellow.Sprint("skipped: " + e))
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	importCmd.Flags().StringVarP(&importStrategy, "strategy", "s", string(importer.MergeMerge), "merge strategy (replace|merge|append)")
	importCmd.Flags().BoolVar(&importCommit, "commit", false, "apply the change-set instead of dry-running")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "skip the confirmation prompt")
	importCmd.Flags().BoolVar(&importNoValidate, "no-validate", false, "skip pre-flight validation; invalid entries are skipped individually")
	RootCmd.AddCommand(importCmd)
}
