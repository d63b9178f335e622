// Command render lays out a resume file and writes its HTML preview and,
// optionally, the PDF export.
//
//	render -in resume.yaml -out resume.html -pdf Resume.pdf -lang pt
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/layout"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	infra "resume-builder/pkg/infrastructure"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

func main() {
	in := flag.String("in", "", "resume file (.json, .yaml or .yml); empty renders the sample resume")
	out := flag.String("out", "resume.html", "HTML output path")
	pdfOut := flag.String("pdf", "", "optional PDF output path")
	lang := flag.String("lang", "en", "heading language")
	format := flag.String("format", "a4", "paper format for the PDF")
	chromePath := flag.String("chrome", os.Getenv("CHROME_PATH"), "Chrome executable")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	r := model.Sample()
	if *in != "" {
		var err error
		if r, err = readResume(*in); err != nil {
			log.Fatal().Err(err).Str("file", *in).Msg("read resume")
		}
	}

	score := layout.Score(r)
	tier := layout.SelectTier(score)
	fmt.Printf("score=%.1f base=%dpx header=%dpx section=%dpx subtitle=%dpx body=%dpx detail=%dpx\n",
		score, tier.Base, tier.Header, tier.SectionTitle, tier.SubTitle, tier.Body, tier.Detail)

	rd, err := preview.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("preview renderer")
	}
	html, err := rd.RenderWithTier(r, *lang, tier)
	if err != nil {
		log.Fatal().Err(err).Msg("render html")
	}
	if err := writeFile(*out, []byte(html)); err != nil {
		log.Fatal().Err(err).Msg("write html")
	}
	log.Info().Str("file", *out).Msg("wrote preview")

	if *pdfOut == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()
	pdf, err := infra.NewChromedpRenderer(*chromePath, 60*time.Second).RenderHTMLToPDF(ctx, html, domain.PDFOptions{
		Format:          *format,
		MarginMM:        0,
		Scale:           1,
		PrintBackground: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("render pdf")
	}
	if pages, err := (infra.PDFPageCounter{}).CountPages(pdf); err == nil && pages > 1 {
		log.Warn().Int("pages", pages).Msg("resume does not fit on one page")
	}
	if err := writeFile(*pdfOut, pdf); err != nil {
		log.Fatal().Err(err).Msg("write pdf")
	}
	log.Info().Str("file", *pdfOut).Int("bytes", len(pdf)).Msg("wrote pdf")
}

// readResume loads a snapshot. YAML documents are decoded into the model
// types, so plain scalars such as phone numbers or numeric ids land in
// string fields, and then pass the same schema check as JSON ones.
func readResume(path string) (model.Resume, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Resume{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if b, err = yamlToJSON(b); err != nil {
			return model.Resume{}, err
		}
	}
	return model.Decode(b)
}

func yamlToJSON(b []byte) ([]byte, error) {
	r := model.Empty()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parse yaml: %v", model.ErrInvalidResume, err)
	}
	r, err := model.Normalize(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(r)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
