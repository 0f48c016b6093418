package ocr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/invoicescan/invoicescan/internal/entity"
)

// Columns the token table must name, per the tesseract TSV contract.
var requiredColumns = []string{"text", "block_num", "par_num", "line_num", "word_num"}

// ParseTSV decodes a tesseract TSV table (newline rows, tab columns, first row
// is the header) into positioned tokens. Rows with a missing or empty text
// cell are dropped. A header without the required columns is a structural
// error: the collaborator broke its contract.
func ParseTSV(r io.Reader) ([]entity.PositionedToken, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("token table: empty input")
	}
	cols := make(map[string]int)
	for i, name := range strings.Split(sc.Text(), "\t") {
		cols[strings.TrimSpace(name)] = i
	}
	idx := make(map[string]int, len(requiredColumns))
	for _, name := range requiredColumns {
		pos, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("token table: missing %q column", name)
		}
		idx[name] = pos
	}

	var tokens []entity.PositionedToken
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		text := cellAt(fields, idx["text"])
		if text == "" {
			continue
		}
		tokens = append(tokens, entity.PositionedToken{
			Text:     text,
			BlockNum: intAt(fields, idx["block_num"]),
			ParNum:   intAt(fields, idx["par_num"]),
			LineNum:  intAt(fields, idx["line_num"]),
			WordNum:  intAt(fields, idx["word_num"]),
		})
	}
	return tokens, sc.Err()
}

func cellAt(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

func intAt(fields []string, i int) int {
	n, _ := strconv.Atoi(cellAt(fields, i))
	return n
}
