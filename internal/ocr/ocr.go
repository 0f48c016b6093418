package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/invoicescan/invoicescan/internal/entity"
)

// Config controls how the tesseract binary is invoked.
type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Language    string // default "eng"
	TessdataDir string

	OEM int // 1 = LSTM; leave 0 to use default
}

// Engine shells out to tesseract for both plain transcripts and
// positioned-token tables.
type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

// NewEngine creates a new OCR engine.
func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	return &Engine{cfg: cfg, runner: execRunner{}, logger: logger}
}

// ImageToText runs tesseract in plain-text mode against the image at path.
// psm selects the page segmentation mode; 0 leaves tesseract's default.
func (e *Engine) ImageToText(ctx context.Context, path string, psm int) (string, error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, e.args(path, psm)...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 8<<10))
	}

	// minor cleanup of obvious line noise
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return Normalize(txt), nil
}

// ImageToTokens runs tesseract in TSV mode and parses the table into
// positioned tokens.
func (e *Engine) ImageToTokens(ctx context.Context, path string, psm int) ([]entity.PositionedToken, error) {
	args := append(e.args(path, psm), "tsv")
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return nil, fmt.Errorf("tesseract tsv: %w: %s", err, truncate(string(errb), 8<<10))
	}
	tokens, err := ParseTSV(bytes.NewReader(out))
	if err != nil {
		return nil, err
	}
	e.logger.Debug("parsed token table", "path", path, "tokens", len(tokens))
	return tokens, nil
}

func (e *Engine) args(path string, psm int) []string {
	args := []string{path, "stdout", "-l", e.cfg.Language}
	if psm > 0 {
		args = append(args, "--psm", strconv.Itoa(psm))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	return args
}
