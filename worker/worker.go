// Package worker drives the decompose/translate/recompose pipeline across a
// batch of RTF files: it fans each input through rtf.Sunderer and a
// translate.Translator on a background goroutine, tracks a shared progress
// figure and an append-only log, and aggregates every translated term seen
// across the batch so a caller can review and override them before the
// final recompose pass.
package worker

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/cdvelop/rtftranslate/env"
	"github.com/cdvelop/rtftranslate/errs"
	"github.com/cdvelop/rtftranslate/rtf"
	"github.com/cdvelop/rtftranslate/translate"
	"github.com/cdvelop/tinystring"
	"github.com/tinywasm/unixid"
)

// CellTranslator is the per-line/per-footnote collaborator a Worker drives
// its Sunderers with. translate.Translator satisfies it.
type CellTranslator = rtf.CellTranslator

// Config configures a single Worker run.
type Config struct {
	// Workspace holds the per-run log file and any intermediate templates.
	Workspace string
	// DestinationDir receives the recomposed, translated output files.
	DestinationDir string
	// Outputs is the batch of source RTF paths to process.
	Outputs []string
}

// Worker is safe for concurrent use: Progress, ReadLog, and TermSet may be
// polled from any goroutine while ExtractTranslate or Stuff run in the
// background.
type Worker struct {
	cfg        Config
	translator CellTranslator

	logger *env.Logger

	mu             sync.Mutex
	progress       float64
	translationSet map[string]*rtf.CellSet // keyed by template path
	termSet        map[string]string
}

// New validates cfg, creates the workspace and destination directories if
// missing, and opens a fresh run log named with a collision-proof id rather
// than this pipeline's original timestamp-derived filename.
func New(cfg Config, translator CellTranslator) (*Worker, error) {
	if cfg.Workspace == "" || cfg.DestinationDir == "" {
		return nil, errs.New(errs.MalformedInput, "workspace and destination dir are required")
	}
	for _, dir := range []string{cfg.Workspace, cfg.DestinationDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errs.New(errs.IOFailure, err)
		}
	}

	runID := unixid.New()
	logPath := filepath.Join(cfg.Workspace, tinystring.Fmt("run-%s.log", runID))
	logger, err := env.NewLogger(logPath)
	if err != nil {
		return nil, errs.New(errs.IOFailure, err)
	}

	return &Worker{
		cfg:            cfg,
		translator:     translator,
		logger:         logger,
		translationSet: make(map[string]*rtf.CellSet),
		termSet:        make(map[string]string),
	}, nil
}

// ExtractTranslate runs Split then Translate over every configured output,
// on a background goroutine, updating Progress after each file completes.
func (w *Worker) ExtractTranslate() {
	go func() {
		outputs := w.cfg.Outputs
		for i, path := range outputs {
			w.extractTranslateOne(path)
			w.setProgress(float64(i+1) / float64(len(outputs)))
		}
	}()
}

// extractTranslateOne splits, translates, and records a single output. Every
// failure is logged and the method returns, leaving that file's contribution
// out of the translation and term sets; it never aborts the batch, so the
// caller's progress step always runs regardless of outcome.
func (w *Worker) extractTranslateOne(path string) {
	filename := filepath.Base(path)
	w.logger.Write(tinystring.Fmt("splitting %s into cells and template", filename))

	reader, err := env.FileOpen(path)
	if err != nil {
		w.logger.Write(tinystring.Fmt("reading %s failed: %v", filename, err))
		return
	}
	source, err := env.ReadAll(reader)
	reader.Close()
	if err != nil {
		w.logger.Write(tinystring.Fmt("reading %s failed: %v", filename, err))
		return
	}

	templatePath := filepath.Join(w.cfg.Workspace, filename+".template")
	sunderer := rtf.NewSunderer(source)
	cells, err := sunderer.Split(templatePath)
	if err != nil {
		w.logger.Write(tinystring.Fmt("splitting %s failed: %v", filename, err))
		return
	}
	w.logger.Write(tinystring.Fmt("complete splitting %s", filename))

	w.logger.Write(tinystring.Fmt("translating cells of %s", filename))
	if err := sunderer.Translate(w.translator); err != nil {
		w.logger.Write(tinystring.Fmt("translating %s failed: %v", filename, err))
		return
	}
	w.logger.Write(tinystring.Fmt("complete translating cells of %s", filename))

	w.mu.Lock()
	w.translationSet[templatePath] = cells
	for _, term := range cells.TermSet() {
		if translate.ContainsNonASCII(term.Source) {
			w.termSet[term.Source] = term.Translation
		}
	}
	w.mu.Unlock()
}

// Stuff recomposes every template produced by a prior ExtractTranslate run
// into DestinationDir, applying overrides to each file's CellSet before
// writing it out, then stops the run log.
func (w *Worker) Stuff(overrides map[string]string) {
	go func() {
		w.mu.Lock()
		templates := make(map[string]*rtf.CellSet, len(w.translationSet))
		for path, cells := range w.translationSet {
			templates[path] = cells
		}
		w.mu.Unlock()

		i := 0
		for templatePath, cells := range templates {
			rebuilt := cells.Rebuild(overrides)
			filename := filepath.Base(templatePath)
			destination := filepath.Join(w.cfg.DestinationDir, trimTemplateSuffix(filename))

			w.logger.Write(tinystring.Fmt("generating translated output %s", destination))
			if err := rtf.NewStuffer(rebuilt).Stuff(templatePath, destination); err != nil {
				w.logger.Write(tinystring.Fmt("stuffing %s failed: %v", destination, err))
			} else {
				w.logger.Write(tinystring.Fmt("complete generating translated output %s", destination))
			}

			i++
			w.setProgress(float64(i) / float64(len(templates)))
		}
		w.logger.StopLogging()
	}()
}

// ReadLog returns everything written to the run log since the last call,
// along with whether the run is still active.
func (w *Worker) ReadLog() (string, bool, error) {
	return w.logger.Read()
}

// Progress returns the fraction, in [0, 1], of the current phase completed.
func (w *Worker) Progress() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.progress
}

// ClearProgress resets Progress to zero, e.g. between the extract and stuff phases.
func (w *Worker) ClearProgress() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.progress = 0
}

// TermSet returns every (source, translation) pair harvested across the
// batch so far, deduplicated by source line.
func (w *Worker) TermSet() map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]string, len(w.termSet))
	for k, v := range w.termSet {
		out[k] = v
	}
	return out
}

func (w *Worker) setProgress(p float64) {
	w.mu.Lock()
	w.progress = p
	w.mu.Unlock()
}

func trimTemplateSuffix(filename string) string {
	const suffix = ".template"
	if len(filename) > len(suffix) && filename[len(filename)-len(suffix):] == suffix {
		return filename[:len(filename)-len(suffix)]
	}
	return filename
}
