package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/spf13/cobra"

	"inventoryplanner/config"
	"inventoryplanner/services"
)

// newExportCommand writes a project summary to disk without starting the
// HTTP server, e.g. `planner export <projectId> --format pdf`.
func newExportCommand(app *pocketbase.PocketBase, loadConfig func() (*config.Config, error)) *cobra.Command {
	var (
		format              string
		output              string
		installationAmount  string
		installationPercent string
	)

	cmd := &cobra.Command{
		Use:   "export <projectId>",
		Short: "Export a project summary as an Excel workbook or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.Log.SlogLevel(),
			}))

			format = strings.ToLower(strings.TrimSpace(format))
			if format != "xlsx" && format != "pdf" {
				return fmt.Errorf("unsupported format %q: must be xlsx or pdf", format)
			}

			if !app.IsBootstrapped() {
				if err := app.Bootstrap(); err != nil {
					return fmt.Errorf("bootstrap: %w", err)
				}
			}
			s, err := openStore(app, cfg)
			if err != nil {
				return err
			}

			projectID := args[0]
			data, ok := services.ProjectSummary(s, projectID, services.SummaryOptions{
				Currency:            cfg.Export.Currency,
				CompanyName:         cfg.Export.CompanyName,
				DateFormat:          cfg.Export.DateFormat,
				InstallationAmount:  installationAmount,
				InstallationPercent: installationPercent,
			})
			if !ok {
				return fmt.Errorf("project %q not found", projectID)
			}
			logger.Debug("summary built",
				"project", data.ProjectName,
				"lines", len(data.Lines),
				"areas", len(data.Areas),
				"grandTotal", data.GrandTotal,
			)

			var out []byte
			if format == "pdf" {
				out, err = services.GenerateSummaryPDF(data)
			} else {
				out, err = services.GenerateSummaryExcel(data)
			}
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("%s_Summary.%s", services.SanitizeFilename(data.ProjectName), format)
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			logger.Info("summary exported", "file", output, "bytes", len(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "output format: xlsx or pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to <Project>_Summary.<format>)")
	cmd.Flags().StringVar(&installationAmount, "installation-amount", "", "installation cost as an absolute amount")
	cmd.Flags().StringVar(&installationPercent, "installation-percent", "", "installation cost as a percentage of the total")

	return cmd
}
