package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/invoicescan/invoicescan/constants"
	"github.com/invoicescan/invoicescan/internal/entity"
	"github.com/invoicescan/invoicescan/internal/extract"
	"github.com/invoicescan/invoicescan/internal/imgproc"
	"github.com/invoicescan/invoicescan/internal/schema"
)

// Engine is the OCR collaborator contract the processor needs.
type Engine interface {
	ImageToText(ctx context.Context, path string, psm int) (string, error)
	ImageToTokens(ctx context.Context, path string, psm int) ([]entity.PositionedToken, error)
}

// Bands holds the fractional page bands handed to the region selector.
type Bands struct {
	HeaderTop, HeaderBottom   float64
	BodyTop, BodyBottom       float64
	SummaryTop, SummaryBottom float64
}

// DefaultBands is the layout of the supported invoice template: header in the
// top fifth, itemized body in the middle, totals in the bottom fifth.
func DefaultBands() Bands {
	return Bands{
		HeaderTop: 0.0, HeaderBottom: 0.2,
		BodyTop: 0.2, BodyBottom: 0.8,
		SummaryTop: 0.8, SummaryBottom: 1.0,
	}
}

// Result carries the assembled record plus non-fatal diagnostics.
type Result struct {
	JobID    uuid.UUID
	Record   entity.InvoiceRecord
	Duration time.Duration
	Warnings []string
}

// Processor coordinates preprocessing, the OCR collaborator and the field
// extractors, and assembles the final record. Field-level misses degrade to
// null fields; only structural failures (bad image, bad region, broken token
// table) abort the run.
type Processor struct {
	Logger  *slog.Logger
	Engine  Engine
	Bands   Bands
	WorkDir string // parent dir for temp artifacts; empty -> os.TempDir()
}

func NewProcessor(logger *slog.Logger, engine Engine, bands Bands) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if bands == (Bands{}) {
		bands = DefaultBands()
	}
	return &Processor{Logger: logger, Engine: engine, Bands: bands}
}

// Run extracts a structured record from the invoice image at imagePath.
func (p *Processor) Run(ctx context.Context, imagePath string) (Result, error) {
	start := time.Now()
	res := Result{JobID: uuid.New()}
	log := p.Logger.With("job_id", res.JobID, "path", imagePath)

	if !constants.IsAllowedExt(filepath.Ext(imagePath)) {
		return res, fmt.Errorf("unsupported extension: %q", filepath.Ext(imagePath))
	}

	src, err := imaging.Open(imagePath)
	if err != nil {
		return res, fmt.Errorf("open image: %w", err)
	}
	page := imgproc.Enhance(src)

	dir, err := os.MkdirTemp(p.WorkDir, "invoicescan-*")
	if err != nil {
		return res, fmt.Errorf("temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	fullPath := filepath.Join(dir, "page.png")
	if err := imaging.Save(page, fullPath); err != nil {
		return res, fmt.Errorf("save page: %w", err)
	}
	headerPath, err := p.saveBand(page, dir, "header", p.Bands.HeaderTop, p.Bands.HeaderBottom)
	if err != nil {
		return res, err
	}
	bodyPath, err := p.saveBand(page, dir, "body", p.Bands.BodyTop, p.Bands.BodyBottom)
	if err != nil {
		return res, err
	}
	summaryPath, err := p.saveBand(page, dir, "summary", p.Bands.SummaryTop, p.Bands.SummaryBottom)
	if err != nil {
		return res, err
	}

	// Vendor reads the whole-page transcript; sparse-text segmentation keeps
	// the label lines intact.
	fullText, err := p.Engine.ImageToText(ctx, fullPath, constants.PSMAuto)
	if err != nil {
		return res, fmt.Errorf("page ocr: %w", err)
	}
	if vendor, ok := extract.Vendor(fullText); ok {
		res.Record.Vendor = &vendor
	} else {
		log.Debug("vendor: no tier matched")
	}

	headerText, err := p.Engine.ImageToText(ctx, headerPath, constants.PSMSingleBlock)
	if err != nil {
		return res, fmt.Errorf("header ocr: %w", err)
	}
	no, date, okNo, okDate := extract.Header(headerText)
	if okNo {
		res.Record.InvoiceNumber = &no
	} else {
		log.Debug("invoice number: no pattern matched")
	}
	if okDate {
		res.Record.InvoiceDate = &date
	} else {
		log.Debug("invoice date: no pattern matched")
	}

	bodyTokens, err := p.Engine.ImageToTokens(ctx, bodyPath, constants.PSMSingleBlock)
	if err != nil {
		return res, fmt.Errorf("body ocr: %w", err)
	}
	entries := extract.GroupEntries(bodyTokens, true)
	items, warnings := extract.LineItems(entries, log)
	res.Record.LineItems = items
	res.Warnings = append(res.Warnings, warnings...)

	summaryTokens, err := p.Engine.ImageToTokens(ctx, summaryPath, constants.PSMSingleBlock)
	if err != nil {
		return res, fmt.Errorf("summary ocr: %w", err)
	}
	res.Record.Summary = extract.Summary(extract.GroupEntries(summaryTokens, false))

	data, err := json.Marshal(res.Record)
	if err != nil {
		return res, fmt.Errorf("marshal record: %w", err)
	}
	if err := schema.Validate(schema.BuildInvoiceRecordSchema(), data); err != nil {
		return res, fmt.Errorf("record validation: %w", err)
	}

	res.Duration = time.Since(start)
	log.Info("extraction ok",
		"line_items", len(res.Record.LineItems),
		"summary_fields", len(res.Record.Summary),
		"warnings", len(res.Warnings),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

func (p *Processor) saveBand(page image.Image, dir, name string, top, bottom float64) (string, error) {
	band, err := imgproc.Band(page, top, bottom)
	if err != nil {
		return "", fmt.Errorf("%s band: %w", name, err)
	}
	out := filepath.Join(dir, name+".png")
	if err := imaging.Save(band, out); err != nil {
		return "", fmt.Errorf("save %s band: %w", name, err)
	}
	return out, nil
}
