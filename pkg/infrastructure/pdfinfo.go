package infrastructure

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

type PDFPageCounter struct{}

func (PDFPageCounter) CountPages(data []byte) (int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to read pdf: %w", err)
	}
	return r.NumPage(), nil
}
