package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records the last invocation and plays back canned output.
type fakeRunner struct {
	name   string
	args   []string
	stdout []byte
	stderr []byte
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.name = name
	f.args = args
	return f.stdout, f.stderr, f.err
}

func newTestEngine(r Runner) *Engine {
	e := NewEngine(Config{}, nil)
	e.runner = r
	return e
}

func TestNewEngine_Defaults(t *testing.T) {
	e := NewEngine(Config{}, nil)
	assert.Equal(t, "tesseract", e.cfg.Tesseract)
	assert.Equal(t, "eng", e.cfg.Language)
}

func TestImageToText_Args(t *testing.T) {
	r := &fakeRunner{stdout: []byte("Seller:\nAcme  Corp\n")}
	e := newTestEngine(r)

	txt, err := e.ImageToText(context.Background(), "page.png", 3)
	require.NoError(t, err)

	assert.Equal(t, "tesseract", r.name)
	assert.Equal(t, []string{"page.png", "stdout", "-l", "eng", "--psm", "3"}, r.args)
	assert.Equal(t, "Seller:\nAcme Corp", txt)
}

func TestImageToText_ZeroPSMOmitted(t *testing.T) {
	r := &fakeRunner{stdout: []byte("x")}
	e := newTestEngine(r)

	_, err := e.ImageToText(context.Background(), "page.png", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"page.png", "stdout", "-l", "eng"}, r.args)
}

func TestImageToText_StripsBoxNoise(t *testing.T) {
	r := &fakeRunner{stdout: []byte("Acme Corp\n-----\nInvoice No: 482\n")}
	e := newTestEngine(r)

	txt, err := e.ImageToText(context.Background(), "page.png", 6)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp\n\nInvoice No: 482", txt)
}

func TestImageToText_RunnerFailure(t *testing.T) {
	r := &fakeRunner{stderr: []byte("boom"), err: errors.New("exit status 1")}
	e := newTestEngine(r)

	_, err := e.ImageToText(context.Background(), "page.png", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestImageToTokens(t *testing.T) {
	r := &fakeRunner{stdout: []byte(sampleTSV)}
	e := NewEngine(Config{TessdataDir: "/opt/tessdata", OEM: 1}, nil)
	e.runner = r

	tokens, err := e.ImageToTokens(context.Background(), "body.png", 6)
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, []string{
		"body.png", "stdout", "-l", "eng",
		"--psm", "6", "--oem", "1",
		"--tessdata-dir", "/opt/tessdata",
		"tsv",
	}, r.args)
}

func TestNormalize(t *testing.T) {
	in := "a\tb\r\nc   d\n\n\n\n e \n"
	assert.Equal(t, "a b\nc d\n\n e", Normalize(in))
}
