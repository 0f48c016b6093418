package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/invoicescan/invoicescan/internal/common"
	"github.com/invoicescan/invoicescan/internal/export"
	"github.com/invoicescan/invoicescan/internal/ocr"
	"github.com/invoicescan/invoicescan/internal/pipeline"
	"github.com/invoicescan/invoicescan/internal/render"
)

var (
	jsonOut string
	xlsxOut string
	verbose bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a structured record from an invoice image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		cfg := common.LoadConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}

		engine := ocr.NewEngine(ocr.Config{
			Tesseract:   cfg.OCR.Tesseract,
			Language:    cfg.OCR.Language,
			TessdataDir: cfg.OCR.TessdataDir,
			OEM:         cfg.OCR.OEM,
		}, logger)
		p := pipeline.NewProcessor(logger, engine, pipeline.DefaultBands())

		res, err := p.Run(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		render.FormatRecord(cmd.OutOrStdout(), res.Record)
		render.FormatWarnings(cmd.ErrOrStderr(), res.Warnings)

		if jsonOut != "" {
			data, err := json.MarshalIndent(res.Record, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal record: %w", err)
			}
			if err := os.WriteFile(jsonOut, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write json: %w", err)
			}
		}
		if xlsxOut != "" {
			data, err := export.NewService(logger).InvoiceXLSX(res.Record)
			if err != nil {
				return err
			}
			if err := os.WriteFile(xlsxOut, data, 0o644); err != nil {
				return fmt.Errorf("write xlsx: %w", err)
			}
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&jsonOut, "json", "", "Write the record as JSON to this path")
	extractCmd.Flags().StringVar(&xlsxOut, "xlsx", "", "Write line item and detail sheets to this XLSX path")
	extractCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(extractCmd)
}
