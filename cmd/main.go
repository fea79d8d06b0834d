// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"pii-redactor/internal/catalog"
	"pii-redactor/internal/config"
	"pii-redactor/internal/datefilter"
	"pii-redactor/internal/entity"
	"pii-redactor/internal/formatters"
	_ "pii-redactor/internal/formatters/csv"
	_ "pii-redactor/internal/formatters/json"
	"pii-redactor/internal/formatters/shared"
	_ "pii-redactor/internal/formatters/text"
	_ "pii-redactor/internal/formatters/yaml"
	"pii-redactor/internal/help"
	"pii-redactor/internal/observability"
	"pii-redactor/internal/parallel"
	"pii-redactor/internal/paths"
	"pii-redactor/internal/recognizers/comprehend"
	"pii-redactor/internal/recognizers/lexicon"
	"pii-redactor/internal/redactors"
	"pii-redactor/internal/redactors/pdf"
	"pii-redactor/internal/redactors/plaintext"
	"pii-redactor/internal/version"
	"pii-redactor/internal/watch"
)

const (
	exitOK       = 0
	exitFailures = 1
	exitUsage    = 2
)

// maxFileSize bounds the files picked up from directories and globs
const maxFileSize = 100 * 1024 * 1024

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	// If config file is not specified, try to find one in standard locations
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigOrDefault(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
	}
	return cfg
}

// configFlags holds command line flag values that override the config file
type configFlags struct {
	outputDir  string
	recognizer string
	disable    string
	fill       string
	format     string
	workers    int
	recursive  bool
	verbose    bool
	debug      bool
	noColor    bool
	preserve   bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format     string
	outputDir  string
	recognizer string
	workers    int
	recursive  bool
	normalize  bool
	verbose    bool
	debug      bool
	noColor    bool
	logFile    string
	preserve   bool
	disabled   []string
	fill       pdf.Color
	comprehend config.ComprehendConfig
}

// resolveConfiguration resolves final configuration values from the config
// file (with any profile already applied) and command line flags
func resolveConfiguration(cfg *config.Config, flags *configFlags) (*finalConfiguration, error) {
	final := &finalConfiguration{
		format:     "text",
		outputDir:  cfg.Defaults.OutputDir,
		recognizer: cfg.Defaults.Recognizer,
		workers:    cfg.Defaults.Workers,
		recursive:  cfg.Defaults.Recursive,
		normalize:  cfg.Defaults.Normalize,
		verbose:    cfg.Defaults.Verbose,
		debug:      cfg.Defaults.Debug,
		noColor:    cfg.Defaults.NoColor,
		logFile:    cfg.Defaults.LogFile,
		preserve:   cfg.Defaults.Preserve,
		disabled:   append([]string(nil), cfg.Catalog.Disabled...),
		comprehend: cfg.Recognizer.Comprehend,
	}
	fill := cfg.PDF.FillColor

	if isFlagSet("format") && flags.format != "" {
		final.format = strings.ToLower(flags.format)
	}
	if isFlagSet("output-dir") && flags.outputDir != "" {
		final.outputDir = paths.NormalizePath(flags.outputDir)
	}
	if isFlagSet("recognizer") {
		final.recognizer = strings.ToLower(flags.recognizer)
	}
	if isFlagSet("workers") {
		final.workers = flags.workers
	}
	if isFlagSet("recursive") {
		final.recursive = flags.recursive
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}
	if isFlagSet("preserve") {
		final.preserve = flags.preserve
	}
	if isFlagSet("fill") {
		fill = flags.fill
	}
	if isFlagSet("disable") {
		final.disabled = append(final.disabled, parseLabels(flags.disable)...)
	}

	switch final.recognizer {
	case config.RecognizerNone, config.RecognizerLexicon, config.RecognizerComprehend:
	default:
		return nil, fmt.Errorf("unknown recognizer %q (want %s, %s or %s)",
			final.recognizer, config.RecognizerLexicon, config.RecognizerComprehend, config.RecognizerNone)
	}
	if final.workers < 0 {
		return nil, fmt.Errorf("workers cannot be negative: %d", final.workers)
	}
	if _, ok := formatters.Get(final.format); !ok {
		return nil, fmt.Errorf("unsupported format '%s'. Available formats: %s", final.format, strings.Join(formatters.List(), ", "))
	}
	if err := paths.ValidatePath(final.outputDir); err != nil {
		return nil, fmt.Errorf("invalid output directory: %w", err)
	}

	fillColor, err := pdf.ParseColor(fill)
	if err != nil {
		return nil, err
	}
	final.fill = fillColor

	return final, nil
}

// parseLabels splits a comma-separated label list, adding brackets where
// they were left off
func parseLabels(list string) []string {
	var labels []string
	for _, label := range strings.Split(list, ",") {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if !strings.HasPrefix(label, "[") {
			label = "[" + label
		}
		if !strings.HasSuffix(label, "]") {
			label += "]"
		}
		labels = append(labels, strings.ToUpper(label))
	}
	return labels
}

// handleProfiles prints the available profiles
func handleProfiles(w io.Writer, cfg *config.Config) {
	profiles := cfg.ListProfiles()
	if len(profiles) == 0 {
		fmt.Fprintln(w, "No profiles defined in configuration file.")
		return
	}
	fmt.Fprintln(w, "Available profiles:")
	for _, name := range profiles {
		profile := cfg.GetProfile(name)
		if profile != nil && profile.Description != "" {
			fmt.Fprintf(w, "  - %s: %s\n", name, profile.Description)
		} else {
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}
}

// newObserver maps the verbosity flags onto an observability level. Debug
// runs trace each file step by step.
func newObserver(final *finalConfiguration) *observability.StandardObserver {
	if final.debug {
		return observability.NewDebugObserver(os.Stderr).StandardObserver
	}
	if !final.verbose {
		return observability.NewStandardObserver(observability.ObservabilityOff, nil)
	}

	format := "json"
	if isTerminal(os.Stderr) {
		format = "console"
	}
	logger, closeLog, err := observability.NewLogger(observability.LoggerConfig{Level: "info", Format: format, File: final.logFile}, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return observability.NewStandardObserver(observability.ObservabilityMetrics, os.Stderr)
	}
	observer := observability.NewStandardObserverWithLogger(observability.ObservabilityMetrics, logger)
	observer.OnClose(closeLog)
	return observer
}

// buildRecognizer creates the entity recognizer selected by the configuration
func buildRecognizer(ctx context.Context, final *finalConfiguration, observer *observability.StandardObserver) (entity.Recognizer, error) {
	switch final.recognizer {
	case config.RecognizerNone:
		return entity.None, nil
	case config.RecognizerComprehend:
		return comprehend.New(ctx, comprehend.Config{
			Region:            final.comprehend.Region,
			LanguageCode:      final.comprehend.LanguageCode,
			RequestsPerSecond: final.comprehend.RequestsPerSecond,
			MinScore:          final.comprehend.MinScore,
			Timeout:           final.comprehend.Timeout,
		}, observer)
	default:
		return lexicon.New(observer)
	}
}

// registerDefaultRedactors registers the PDF redactor and routes every
// other file type to the plain text redactor
func registerDefaultRedactors(manager *redactors.RedactionManager, plainText *plaintext.PlainTextRedactor, pdfRedactor *pdf.PDFRedactor) error {
	if err := manager.RegisterRedactor(plainText); err != nil {
		return fmt.Errorf("failed to register PlainText redactor: %w", err)
	}
	if err := manager.RegisterRedactor(pdfRedactor); err != nil {
		return fmt.Errorf("failed to register PDF redactor: %w", err)
	}
	manager.SetFallbackRedactor(plainText)
	return nil
}

// SkippedFile records an input that was not queued
type SkippedFile struct {
	Path   string
	Reason string
}

// ProcessingResult holds the files to redact and the ones passed over
type ProcessingResult struct {
	FilesToProcess []string
	SkippedFiles   []SkippedFile
}

// getFilesToProcess expands a file, directory or glob pattern into the
// files to redact. Anything under skipDir and files already named like
// redaction output are left out.
func getFilesToProcess(inputPath string, recursive bool, skipDir string) (*ProcessingResult, error) {
	result := &ProcessingResult{}
	if err := paths.ValidatePath(inputPath); err != nil {
		return nil, err
	}
	inputPath = paths.NormalizePath(inputPath)

	absSkip := ""
	if skipDir != "" {
		if abs, err := filepath.Abs(skipDir); err == nil {
			absSkip = abs
		}
	}
	underSkip := func(path string) bool {
		if absSkip == "" {
			return false
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return false
		}
		return abs == absSkip || strings.HasPrefix(abs, absSkip+string(filepath.Separator))
	}

	addFile := func(path string, info os.FileInfo) {
		switch {
		case info.Size() > maxFileSize:
			result.SkippedFiles = append(result.SkippedFiles, SkippedFile{Path: path, Reason: "file too large (max size: 100MB)"})
		case !watch.Eligible(path):
			result.SkippedFiles = append(result.SkippedFiles, SkippedFile{Path: path, Reason: "hidden or already redacted"})
		case underSkip(path):
			result.SkippedFiles = append(result.SkippedFiles, SkippedFile{Path: path, Reason: "inside the output directory"})
		default:
			result.FilesToProcess = append(result.FilesToProcess, path)
		}
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		if !strings.ContainsAny(inputPath, "*?[") {
			return nil, fmt.Errorf("path does not exist or is not accessible: %w", err)
		}
		matches, err := filepath.Glob(inputPath)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", inputPath)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			addFile(filepath.Clean(match), info)
		}
		return result, nil
	}

	// An explicitly named file is always redacted, whatever its name
	if info.Mode().IsRegular() {
		if info.Size() > maxFileSize {
			result.SkippedFiles = append(result.SkippedFiles, SkippedFile{Path: inputPath, Reason: "file too large (max size: 100MB)"})
			return result, nil
		}
		result.FilesToProcess = append(result.FilesToProcess, inputPath)
		return result, nil
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is neither a regular file nor a directory")
	}

	err = filepath.Walk(inputPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			result.SkippedFiles = append(result.SkippedFiles, SkippedFile{Path: path, Reason: err.Error()})
			return nil
		}
		if info.IsDir() {
			if path == inputPath {
				return nil
			}
			if !recursive || strings.HasPrefix(info.Name(), ".") || underSkip(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Mode().IsRegular() {
			addFile(path, info)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error accessing directory: %w", err)
	}
	return result, nil
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func printError(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := &configFlags{}
	outputFile := flag.String("output", "", "Output path when redacting a single input")
	flag.StringVar(&flags.outputDir, "output-dir", "", "Directory mirroring the input tree for redacted files")
	flag.BoolVar(&flags.recursive, "recursive", false, "Descend into subdirectories")
	flag.IntVar(&flags.workers, "workers", 0, "Documents redacted in parallel (default: CPU count, at most 8)")
	flag.StringVar(&flags.recognizer, "recognizer", "", "Entity recognizer: lexicon, comprehend or none")
	flag.StringVar(&flags.disable, "disable", "", "Comma-separated labels to skip")
	flag.StringVar(&flags.fill, "fill", "", "PDF overlay colour as #rrggbb")
	flag.BoolVar(&flags.preserve, "preserve", false, "Copy each input's mode and modification time to its output")
	flag.StringVar(&flags.format, "format", "", "Report format: text, json, yaml, csv (default: text)")
	useStdin := flag.Bool("stdin", false, "Redact standard input and print the result")
	watchDir := flag.String("watch", "", "Redact files as they are dropped into a directory")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles")
	listLabels := flag.Bool("list-labels", false, "List the pattern catalog labels in application order")
	helpLabel := flag.String("help-label", "", "Show the patterns behind a label")
	flag.BoolVar(&flags.verbose, "verbose", false, "List label counts per file")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help")

	flag.Usage = func() {
		help.NewSystem(os.Stderr, nil, true).ShowGeneralHelp()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return exitOK
	}
	if *showHelp {
		help.NewSystem(os.Stdout, nil, flags.noColor || !isTerminal(os.Stdout)).ShowGeneralHelp()
		return exitOK
	}

	cfg := loadConfiguration(*configFile)
	if *listProfiles {
		handleProfiles(os.Stdout, cfg)
		return exitOK
	}
	if *profileName != "" {
		if err := cfg.ApplyProfile(*profileName); err != nil {
			printError("%v", err)
			return exitUsage
		}
	}

	final, err := resolveConfiguration(cfg, flags)
	if err != nil {
		printError("%v", err)
		return exitUsage
	}
	if final.noColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	cat := catalog.Default().Without(final.disabled...)
	if *listLabels {
		help.NewSystem(os.Stdout, cat, color.NoColor).ShowLabels()
		return exitOK
	}
	if *helpLabel != "" {
		labels := parseLabels(*helpLabel)
		if len(labels) != 1 || !help.NewSystem(os.Stdout, cat, color.NoColor).ShowLabelHelp(labels[0]) {
			printError("unknown label %q; see --list-labels", *helpLabel)
			return exitUsage
		}
		return exitOK
	}

	observer := newObserver(final)
	defer observer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recognizer, err := buildRecognizer(ctx, final, observer)
	if err != nil {
		printError("failed to initialize %s recognizer: %v", final.recognizer, err)
		return exitFailures
	}
	dates := datefilter.New()

	plainText := plaintext.NewPlainTextRedactor(observer,
		plaintext.WithCatalog(cat),
		plaintext.WithRecognizer(recognizer),
		plaintext.WithDateFilter(dates),
		plaintext.WithNormalization(final.normalize),
	)

	if *useStdin {
		return runStdin(ctx, plainText, final)
	}

	pdfRedactor := pdf.NewPDFRedactor(observer,
		pdf.WithCatalog(cat),
		pdf.WithRecognizer(recognizer),
		pdf.WithDateFilter(dates),
		pdf.WithFill(final.fill),
	)

	outputManager, err := redactors.NewOutputStructureManager(final.outputDir, observer)
	if err != nil {
		printError("failed to prepare output directory: %v", err)
		return exitFailures
	}
	outputManager.SetPreserveAttributes(final.preserve)
	manager := redactors.NewRedactionManager(outputManager, observer)
	if err := registerDefaultRedactors(manager, plainText, pdfRedactor); err != nil {
		printError("%v", err)
		return exitFailures
	}

	if *watchDir != "" {
		return runWatch(ctx, *watchDir, manager, observer)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		printError("no input files given")
		flag.Usage()
		return exitUsage
	}
	if *outputFile != "" && len(inputs) != 1 {
		printError("--output needs exactly one input, got %d", len(inputs))
		return exitUsage
	}

	var files []string
	for _, input := range inputs {
		found, err := getFilesToProcess(input, final.recursive, final.outputDir)
		if err != nil {
			printError("%v", err)
			return exitUsage
		}
		for _, skipped := range found.SkippedFiles {
			observer.Logger("cli").Debug("skipping file: " + skipped.Path + ": " + skipped.Reason)
			if final.verbose {
				fmt.Fprintf(os.Stderr, "Skipping %s: %s\n", skipped.Path, skipped.Reason)
			}
		}
		files = append(files, found.FilesToProcess...)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No files to redact")
		return exitOK
	}
	if *outputFile != "" && len(files) != 1 {
		printError("--output needs a single file, but %s expands to %d files", inputs[0], len(files))
		return exitUsage
	}

	jobs := make([]*parallel.Job, len(files))
	for i, file := range files {
		jobs[i] = &parallel.Job{FilePath: file, JobID: fmt.Sprintf("job_%d", i), RedactionManager: manager}
	}
	if *outputFile != "" {
		jobs[0].OutputPath = paths.NormalizePath(*outputFile)
	}

	var progress parallel.ProgressCallback
	if !final.debug && isTerminal(os.Stderr) {
		progress = func(completed, total int, _ *parallel.Result) {
			fmt.Fprintf(os.Stderr, "\rRedacting %d/%d files...", completed, total)
			if completed == total {
				fmt.Fprint(os.Stderr, "\r\033[K")
			}
		}
	}

	processor := parallel.NewParallelProcessor(final.workers, observer)
	results, stats, runErr := processor.ProcessJobs(ctx, jobs, progress)

	failures := redactors.NewRedactionErrorCollection()
	for _, result := range results {
		if result.Error != nil {
			failures.Add(result.FilePath, result.Error)
		}
	}
	for _, failure := range failures.GetErrors() {
		observer.Logger("cli").Debug("redaction failed: " + failure.Error())
	}

	report := formatters.NewReport(results, stats).WithFailures(failures)
	output, err := formatters.Export(final.format, report, formatters.FormatterOptions{
		Verbose: final.verbose,
		NoColor: color.NoColor,
	})
	if err != nil {
		printError("%v", err)
		return exitFailures
	}
	fmt.Print(output)

	if runErr != nil {
		printError("%v", runErr)
		return exitFailures
	}
	if failures.HasErrors() {
		return exitFailures
	}
	return exitOK
}

// runStdin redacts standard input to standard output
func runStdin(ctx context.Context, plainText *plaintext.PlainTextRedactor, final *finalConfiguration) int {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		printError("failed to read standard input: %v", err)
		return exitFailures
	}

	text := string(data)
	redacted, counts, err := plainText.RedactString(ctx, &text)
	if err != nil {
		printError("%v", err)
		if errors.Is(err, redactors.ErrArgument) {
			return exitUsage
		}
		return exitFailures
	}
	fmt.Print(redacted)

	if final.verbose && len(counts) > 0 {
		fmt.Fprintln(os.Stderr, shared.LabelSummary(counts))
	}
	return exitOK
}

// runWatch redacts files dropped into dir until interrupted
func runWatch(ctx context.Context, dir string, manager *redactors.RedactionManager, observer *observability.StandardObserver) int {
	green := color.New(color.FgGreen)
	watcher, err := watch.New(dir, func(ctx context.Context, path string) {
		processed, err := manager.RedactFile(ctx, path, "")
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				printError("%s: %v", path, err)
			}
			return
		}
		green.Fprintf(os.Stderr, "%s -> %s (%s)\n", path, processed.RedactedPath,
			shared.Plural(processed.Result.TotalRedactions(), "redaction"))
	}, observer)
	if err != nil {
		printError("%v", err)
		return exitUsage
	}

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)\n", dir)
	runErr := watcher.Run(ctx)

	stats := manager.GetStats()
	fmt.Fprintf(os.Stderr, "Stopped watching: %s, %d redacted, %d failed, %s\n",
		shared.Plural(int(stats.TotalFiles), "file"), stats.SuccessfulRedactions, stats.FailedRedactions,
		shared.Plural(int(stats.TotalRedactions), "redaction"))

	if runErr != nil {
		printError("%v", runErr)
		return exitFailures
	}
	return exitOK
}
