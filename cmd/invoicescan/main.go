package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "invoicescan",
	Short: "Turn scanned invoice images into structured records",
	Long: `invoicescan runs a scanned invoice through tesseract and recovers a
structured record: vendor, invoice number, invoice date, line items and the
summary totals block.`,
}

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
