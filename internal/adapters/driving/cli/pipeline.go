package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/adapters/driven/output/jsonfile"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/adapters/driven/storage/memory"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/adapters/driven/storage/sqlite"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/citations"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driving"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/services"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/extractor"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/logger"
)

// runOptions holds the flags shared by parse and watch.
type runOptions struct {
	out     string
	meta    string
	dbDir   string
	noDB    bool
	workers int
	scope   string
}

// register adds the run flags to cmd.
func (o *runOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.out, "out", "o", "", "records JSON file (default <output dir>/LUBA_headnotes_<timestamp>.json)")
	f.StringVar(&o.meta, "meta", "", "metadata JSON file, empty to skip (default <output dir>/Headnotes_Results.json)")
	f.StringVar(&o.dbDir, "db", "", "directory holding the headnotes database (default ~/.headnotes/data)")
	f.BoolVar(&o.noDB, "no-db", false, "do not store the run in the database")
	f.IntVarP(&o.workers, "workers", "w", 0, "concurrent extraction workers (default from config)")
	f.StringVar(&o.scope, "scope", "", "text scanned for cross references: summary or raw_text")
	cmd.MarkFlagsMutuallyExclusive("db", "no-db")
}

// resolve overlays the flags that were set on top of the configured settings.
func (o *runOptions) resolve(cmd *cobra.Command, base *domain.Settings) (*domain.Settings, error) {
	s := *base
	flags := cmd.Flags()
	if flags.Changed("workers") {
		s.Workers = o.workers
	}
	if flags.Changed("scope") {
		s.CitationScope = domain.CitationScope(o.scope)
	}
	if flags.Changed("db") {
		s.DBDir = o.dbDir
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// writer builds the JSON writer for one run.
func (o *runOptions) writer(cmd *cobra.Command, s *domain.Settings) *jsonfile.Writer {
	metaPath := ""
	if s.MetaFile != "" {
		metaPath = filepath.Join(s.OutputDir, s.MetaFile)
	}
	if cmd.Flags().Changed("meta") {
		metaPath = o.meta
	}
	return jsonfile.New(jsonfile.Options{
		Dir:         s.OutputDir,
		RecordsPath: o.out,
		MetaPath:    metaPath,
		Now:         now,
	})
}

// pipeline is a headnote service wired for one command invocation.
type pipeline struct {
	service driving.HeadnoteService
	close   func() error
}

// openPipeline builds the extractor and store described by s.
// Without persistence, runs go to an in-memory store.
func openPipeline(s *domain.Settings, persist bool) (*pipeline, error) {
	registry := citations.NewRegistry()
	citations.RegisterDefaults(registry)
	scanners, err := registry.BuildAll(s.Scanners, nil)
	if err != nil {
		return nil, fmt.Errorf("citation scanners: %w", err)
	}
	ext := extractor.New(
		extractor.WithScope(s.CitationScope),
		extractor.WithScanners(scanners...),
	)

	var (
		store   driven.HeadnoteStore
		closeFn = func() error { return nil }
	)
	if persist {
		db, err := sqlite.NewStore(s.DBDir)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		logger.Debug("database: %s", db.Path())
		store = db.HeadnoteStore()
		closeFn = db.Close
	} else {
		store = memory.NewHeadnoteStore()
	}

	return &pipeline{
		service: services.NewHeadnoteService(documentReaders(), ext, store, s.Workers),
		close:   closeFn,
	}, nil
}

// runParse parses path, writes the JSON files, stores the run and prints
// the summary.
func runParse(ctx context.Context, cmd *cobra.Command, path string, opts *runOptions) (err error) {
	base, err := loadSettings()
	if err != nil {
		return err
	}
	settings, err := opts.resolve(cmd, base)
	if err != nil {
		return err
	}

	p, err := openPipeline(settings, !opts.noDB)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := p.close(); cerr != nil && err == nil {
			err = fmt.Errorf("close database: %w", cerr)
		}
	}()

	cmd.Printf("Reading: %s\n", path)
	result, err := p.service.Parse(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrNoHeadnotes) {
			cmd.Println(zeroHeadnotesMessage)
		}
		return fmt.Errorf("parse failed: %w", err)
	}
	cmd.Printf("Found %d headnotes\n", result.Units)
	cmd.Printf("Successfully parsed __%d__ headnotes\n", len(result.Records))
	if len(result.Failures) > 0 {
		cmd.Printf("Errors: %d\n", len(result.Failures))
	}

	meta := domain.NewRunMetadata(newRunID(), result, now())
	w := opts.writer(cmd, settings)

	recordsPath, err := w.WriteRecords(result.Records)
	if err != nil {
		return err
	}
	cmd.Printf("Saved file as: %s\n", recordsPath)

	metaPath, err := w.WriteMetadata(meta)
	if err != nil {
		return err
	}
	if metaPath != "" {
		cmd.Printf("Saved file as: %s\n", metaPath)
	}

	if err := p.service.Save(ctx, meta, result); err != nil {
		return err
	}
	logger.Info("run %s stored", meta.RunID)

	out := cmd.OutOrStdout()
	printSummary(out, stylesFor(out), domain.ComputeStats(result))
	if len(result.Records) == 0 {
		return errNoRecords
	}
	return nil
}

// errNoRecords is returned when every headnote failed to parse.
var errNoRecords = errors.New("no headnotes parsed")
