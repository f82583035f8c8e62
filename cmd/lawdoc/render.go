package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	lawdoc "github.com/alnah/go-lawdoc"
	"github.com/alnah/go-lawdoc/internal/assets"
	"github.com/alnah/go-lawdoc/internal/config"
	"github.com/alnah/go-lawdoc/internal/fileutil"
	"github.com/alnah/go-lawdoc/internal/hints"
	"github.com/alnah/go-lawdoc/internal/preload"
)

// Sentinel errors for render operations.
var (
	ErrReadContent        = errors.New("failed to read content file")
	ErrReadCSS            = errors.New("failed to read CSS file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrGeneratorInit      = errors.New("failed to initialize generator")
)

// renderJob is one document to produce: the shared template filled with
// one set of values.
type renderJob struct {
	ValuesPath string // Empty when only config defaults apply
	Values     map[string]string
	PDFPath    string
	HTMLPath   string
}

// renderParams groups inputs shared by every job of a render run.
type renderParams struct {
	content    string
	format     lawdoc.Format
	letterhead lawdoc.Letterhead
	title      string
	lawyerName string
	css        string
	sourceDir  string
	html       bool
	htmlOnly   bool
}

// renderResult holds the outcome of a single document.
type renderResult struct {
	Job      renderJob
	Output   string
	Err      error
	Duration time.Duration
	Unknown  []string
	Missing  []string
	Images   []preload.Result // Failed probes only
}

// runRender orchestrates document generation.
func runRender(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseRenderFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: render takes exactly one content file, got %d", ErrUsage, len(positional))
	}
	if err := validateWorkers(f.workers); err != nil {
		return err
	}

	cfg, err := env.loadConfig(f.common.config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	mergeRenderFlags(f, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	contentPath := positional[0]
	content, err := readContent(contentPath)
	if err != nil {
		return err
	}

	format, err := resolveFormat(cfg.Defaults.Format, contentPath)
	if err != nil {
		return err
	}

	lh, err := loadLetterhead(cfg, env)
	if err != nil {
		return err
	}

	css, err := readCSS(f.css)
	if err != nil {
		return err
	}

	jobs, err := buildJobs(contentPath, f.document.values, cfg)
	if err != nil {
		return err
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, f.common.verbose)
	defer func() { _ = logger.Sync() }()

	opts := []lawdoc.Option{
		lawdoc.WithLogger(logger),
		lawdoc.WithClock(env.Now),
		lawdoc.WithStyle(cfg.Defaults.Style),
		lawdoc.WithTimeout(timeout),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, lawdoc.WithAssetPath(cfg.Assets.BasePath))
	}

	poolSize := lawdoc.ResolvePoolSize(f.workers)
	if poolSize > len(jobs) {
		poolSize = len(jobs)
	}
	gp := lawdoc.NewGeneratorPool(poolSize, opts...)
	defer func() { _ = gp.Close() }()

	params := &renderParams{
		content:    content,
		format:     format,
		letterhead: lh,
		title:      cfg.Defaults.Title,
		lawyerName: cfg.Defaults.LawyerName,
		css:        css,
		sourceDir:  filepath.Dir(contentPath),
		html:       cfg.Output.HTML,
		htmlOnly:   f.output.htmlOnly,
	}

	results := renderBatch(ctx, &poolAdapter{pool: gp}, jobs, params)

	failed, firstErr := printResults(results, f.common.quiet, f.common.verbose, env)
	if failed > 0 {
		if len(results) == 1 {
			return firstErr
		}
		return fmt.Errorf("%d of %d document(s) failed: %w", failed, len(results), firstErr)
	}
	return nil
}

// mergeRenderFlags merges CLI flags into config. CLI values override config values.
func mergeRenderFlags(f *renderFlags, cfg *config.Config) {
	if f.document.letterhead != "" {
		cfg.Letterhead = f.document.letterhead
	}
	if f.document.format != "" {
		cfg.Defaults.Format = f.document.format
	}
	if f.style != "" {
		cfg.Defaults.Style = f.style
	}
	if f.title != "" {
		cfg.Defaults.Title = f.title
	}
	if f.lawyerName != "" {
		cfg.Defaults.LawyerName = f.lawyerName
	}
	if f.output.dir != "" {
		cfg.Output.DefaultDir = f.output.dir
	}
	if f.output.html {
		cfg.Output.HTML = true
	}
	if f.common.assetPath != "" {
		cfg.Assets.BasePath = f.common.assetPath
	}
	if f.timeout != "" {
		cfg.Timeout = f.timeout
	}
}

// resolveFormat returns the configured format, or one inferred from the
// content file extension.
func resolveFormat(configured, contentPath string) (lawdoc.Format, error) {
	if configured != "" {
		return lawdoc.ParseFormat(configured)
	}
	switch strings.ToLower(filepath.Ext(contentPath)) {
	case ".md", ".markdown":
		return lawdoc.FormatMarkdown, nil
	case ".txt", ".text":
		return lawdoc.FormatText, nil
	default:
		return lawdoc.FormatHTML, nil
	}
}

// loadLetterhead resolves the configured letterhead, falling back to the
// default preset.
func loadLetterhead(cfg *config.Config, env *Environment) (lawdoc.Letterhead, error) {
	name := cfg.Letterhead
	if name == "" {
		name = assets.DefaultLetterheadName
	}

	loader, err := env.assetLoader(cfg.Assets.BasePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lawdoc.ErrInvalidAssetPath, err)
	}
	return config.LoadLetterhead(name, loader)
}

// readContent reads the template file.
func readContent(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadContent, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrReadContent, path)
	}
	if info.Size() > lawdoc.MaxContentSize {
		return "", fmt.Errorf("%w: %s is %d bytes (max %d)", lawdoc.ErrContentTooLarge, path, info.Size(), lawdoc.MaxContentSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadContent, err)
	}
	return string(data), nil
}

// readCSS reads the extra stylesheet. An empty path means none.
func readCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(data), nil
}

// buildJobs creates one job per values file, or a single job from config
// defaults when no values file is given. File values override defaults.
func buildJobs(contentPath string, valuesPaths []string, cfg *config.Config) ([]renderJob, error) {
	outDir := cfg.Output.DefaultDir

	if len(valuesPaths) == 0 {
		return []renderJob{{
			Values:   cloneValues(cfg.Defaults.Values),
			PDFPath:  fileutil.OutputPath(contentPath, outDir, "", "pdf"),
			HTMLPath: fileutil.OutputPath(contentPath, outDir, "", "html"),
		}}, nil
	}

	jobs := make([]renderJob, 0, len(valuesPaths))
	seen := make(map[string]int, len(valuesPaths))
	for _, path := range valuesPaths {
		values, err := config.LoadValues(path)
		if err != nil {
			return nil, err
		}

		merged := cloneValues(cfg.Defaults.Values)
		if merged == nil {
			merged = make(map[string]string, len(values))
		}
		for k, v := range values {
			merged[k] = v
		}

		// Two values files with the same stem must not overwrite each other.
		variant := fileutil.Stem(path)
		seen[variant]++
		if n := seen[variant]; n > 1 {
			variant = fmt.Sprintf("%s-%d", variant, n)
		}

		jobs = append(jobs, renderJob{
			ValuesPath: path,
			Values:     merged,
			PDFPath:    fileutil.OutputPath(contentPath, outDir, variant, "pdf"),
			HTMLPath:   fileutil.OutputPath(contentPath, outDir, variant, "html"),
		})
	}
	return jobs, nil
}

// renderBatch processes jobs concurrently using the generator pool.
func renderBatch(ctx context.Context, pool Pool, jobs []renderJob, params *renderParams) []renderResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]renderResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := pool.Acquire(ctx)
			if err != nil {
				// Generator creation failed, mark remaining jobs as failed
				for idx := range queue {
					results[idx] = renderResult{
						Job: jobs[idx],
						Err: fmt.Errorf("%w: %w", ErrGeneratorInit, err),
					}
				}
				return
			}
			defer pool.Release(r)

			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = renderResult{Job: jobs[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = renderDocument(ctx, r, jobs[idx], params)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// renderDocument generates one document and writes its outputs.
func renderDocument(ctx context.Context, r Renderer, job renderJob, params *renderParams) renderResult {
	start := time.Now()
	result := renderResult{Job: job, Output: job.PDFPath}

	res, err := r.Generate(ctx, lawdoc.Input{
		Content:    params.content,
		Format:     params.format,
		Values:     job.Values,
		Letterhead: params.letterhead,
		Title:      params.title,
		LawyerName: params.lawyerName,
		CSS:        params.css,
		SourceDir:  params.sourceDir,
		HTMLOnly:   params.htmlOnly,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	result.Unknown = res.Unknown
	result.Missing = res.Missing
	result.Images = preload.Failed(res.Images)

	if params.htmlOnly || params.html {
		if err := writeOutput(job.HTMLPath, res.HTML); err != nil {
			result.Err = err
			result.Duration = time.Since(start)
			return result
		}
		if params.htmlOnly {
			result.Output = job.HTMLPath
			result.Duration = time.Since(start)
			return result
		}
	}

	if err := writeOutput(job.PDFPath, res.PDF); err != nil {
		result.Err = err
	}
	result.Duration = time.Since(start)
	return result
}

// writeOutput writes one generated file. Directory failures keep their
// own sentinel so the hint can point at the directory.
func writeOutput(path string, data []byte) error {
	if err := fileutil.WriteOutput(path, data); err != nil {
		if errors.Is(err, fileutil.ErrOutputDir) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// printResults outputs results and warnings. It returns the number of
// failures and the first failure.
func printResults(results []renderResult, quiet, verbose bool, env *Environment) (int, error) {
	var (
		failed   int
		firstErr error
	)

	for _, r := range results {
		label := r.Job.ValuesPath
		if label == "" {
			label = r.Job.PDFPath
		}

		if r.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", label, r.Err)
			}
			continue
		}

		if len(r.Unknown) > 0 && !quiet {
			fmt.Fprintf(env.Stderr, "warning: %s: unknown placeholders: %s%s\n",
				label, strings.Join(r.Unknown, ", "), hints.ForUnknownPlaceholders(r.Unknown))
		}
		if len(r.Missing) > 0 && !quiet {
			fmt.Fprintf(env.Stderr, "warning: %s: no value for: %s\n", label, strings.Join(r.Missing, ", "))
		}
		for _, img := range r.Images {
			fmt.Fprintf(env.Stderr, "warning: letterhead image %s: %v%s\n", img.URL, img.Err, hints.ForImageProbe())
		}

		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", label, r.Output, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.Output)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}

	return failed, firstErr
}
