package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resume-builder/internal/domain"
)

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	loc, err := s.Put(context.Background(), "abc/resume.pdf", []byte("%PDF"), "application/pdf")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if loc != filepath.Join(dir, "abc", "resume.pdf") {
		t.Fatalf("unexpected location %q", loc)
	}
	b, err := os.ReadFile(loc)
	if err != nil || string(b) != "%PDF" {
		t.Fatalf("unexpected file contents %q (%v)", b, err)
	}
}

func TestLocalStoreStaysInsideDir(t *testing.T) {
	dir := t.TempDir()
	s, _ := NewLocalStore(dir)
	loc, err := s.Put(context.Background(), "../../escape.html", []byte("x"), "text/html")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if !strings.HasPrefix(loc, dir) {
		t.Fatalf("artifact written outside storage dir: %q", loc)
	}
}

func TestPrintParams(t *testing.T) {
	p := printParams(domain.PDFOptions{Format: "Letter", MarginMM: 25.4, Landscape: true, PrintBackground: true})
	if p.PaperWidth != 8.5 || p.PaperHeight != 11 {
		t.Fatalf("expected letter paper, got %vx%v", p.PaperWidth, p.PaperHeight)
	}
	if p.MarginTop != 1 || p.MarginLeft != 1 {
		t.Fatalf("expected 1in margins, got %v/%v", p.MarginTop, p.MarginLeft)
	}
	if p.Scale != 1 || !p.Landscape || !p.PrintBackground {
		t.Fatalf("unexpected params %+v", p)
	}

	p = printParams(domain.PDFOptions{Format: "tabloid", Scale: 0.9})
	if p.PaperWidth != 8.27 || p.Scale != 0.9 {
		t.Fatalf("expected a4 fallback with scale, got %+v", p)
	}
}

func TestPDFPageCounterRejectsGarbage(t *testing.T) {
	if _, err := (PDFPageCounter{}).CountPages([]byte("not a pdf")); err == nil {
		t.Fatalf("expected error for non-pdf input")
	}
}

func TestNewExportsPoolDisabled(t *testing.T) {
	pool, err := NewExportsPool(context.Background(), "")
	if err != nil || pool != nil {
		t.Fatalf("expected nil pool without dsn, got %v %v", pool, err)
	}
}
