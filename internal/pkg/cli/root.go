// nolint: forbidigo
package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mapsbench/mapsload/internal/pkg/cli/options"
	"github.com/mapsbench/mapsload/internal/pkg/dataset"
	"github.com/mapsbench/mapsload/internal/pkg/env"
	"github.com/mapsbench/mapsload/internal/pkg/filesystem/aferofs"
	"github.com/mapsbench/mapsload/internal/pkg/log"
	"github.com/mapsbench/mapsload/internal/pkg/table"
	"github.com/mapsbench/mapsload/internal/pkg/version"
)

const description = `
Load MAPS benchmark datasets from structured directories.

The dataset tree is organized as "language/task" subdirectories
with JSON or JSONL files. All requested combinations are merged
into one table, each record is tagged with its source language
and task.
`

type rootCommand struct {
	cmd     *cobra.Command
	stdout  io.Writer
	stderr  io.Writer
	envs    *env.Map           // ENVs from OS, with ".env" file fallbacks
	options *options.Options   // parsed flags and env variables
	logger  *zap.SugaredLogger // log to console, and to the log file if set
	logFile *os.File
}

// NewRootCommand creates the command.
func NewRootCommand(stdout io.Writer, stderr io.Writer, envs *env.Map) *rootCommand {
	root := &rootCommand{
		stdout:  stdout,
		stderr:  stderr,
		envs:    envs,
		options: options.NewOptions(),
	}

	// Command definition
	root.cmd = &cobra.Command{
		Use:           "mapsload",
		Version:       version.Version(),
		Short:         "Load MAPS benchmark datasets from structured directories",
		Long:          description,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run()
		},
	}
	root.cmd.SetOut(stdout)
	root.cmd.SetErr(stderr)
	root.cmd.SetVersionTemplate("{{.Version}}\n")

	// Flags
	flags := root.cmd.Flags()
	flags.SortFlags = true
	flags.StringP("base-path", "b", options.DefaultBasePath, "base path to the dataset directory")
	flags.StringSliceP("languages", "l", nil, "languages to load, for example english,arabic")
	flags.StringSliceP("tasks", "t", nil, "tasks to load, for example swe,gaia,asb")
	flags.StringP("output", "o", "", "output CSV file path")
	flags.Bool("list-languages", false, "list available languages and exit")
	flags.String("list-tasks", "", "list available tasks for a language and exit")
	flags.Bool("no-metadata", false, "do not add language and task metadata to records")
	flags.BoolP("verbose", "v", false, "print details")
	flags.Int("head", 0, "print first N rows of the loaded dataset")
	flags.String("layout", "standard", `directory layout: "standard" or "verified"`)
	flags.String("log-file", "", "path to a log file for details")
	root.cmd.MarkFlagsMutuallyExclusive("list-languages", "list-tasks")

	return root
}

// Execute the command, the returned value is the process exit code.
func (root *rootCommand) Execute() (exitCode int) {
	defer root.tearDown()
	if err := root.cmd.Execute(); err != nil {
		root.printError(err)
		return 1
	}
	return 0
}

func (root *rootCommand) run() error {
	// ".env" file values have a lower priority than the OS environment
	dotEnvErr := env.LoadDotEnv(root.envs, "")

	// Load values from flags and envs
	if err := root.options.Load(root.envs, root.cmd.Flags()); err != nil {
		return err
	}

	root.setupLogger()
	if dotEnvErr != nil {
		root.logger.Warnf(`Cannot load ".env" file: %s`, dotEnvErr)
	}
	root.logger.Debugf("Running command %v", os.Args)
	root.logger.Debug(root.options.Dump())

	// Base path check is the construction error path
	fs, err := aferofs.NewLocalFs(root.logger, root.options.BasePath)
	if err != nil {
		return err
	}

	layout, err := dataset.ParseLayout(root.options.Layout)
	if err != nil {
		return err
	}

	loader, err := dataset.NewLoader(fs, root.logger, layout)
	if err != nil {
		return err
	}

	// Listing modes return before any data is loaded
	if root.options.ListLanguages {
		root.logger.Info("Available languages:")
		root.printSorted(loader.ListLanguages())
		return nil
	}
	if language := root.options.ListTasksFor; language != "" {
		root.logger.Infof("Available tasks for '%s':", language)
		root.printSorted(loader.ListTasks(language))
		return nil
	}

	if err := root.options.Validate(); err != nil {
		return err
	}

	result, err := loader.Load(root.options.Languages, root.options.Tasks, !root.options.NoMetadata)
	if err != nil {
		return err
	}

	tbl := table.FromRecords(result.Records)
	rows, cols := tbl.Shape()
	root.logger.Infof("Successfully loaded %d records.", result.Len())
	root.logger.Infof("Dataset shape: (%d, %d)", rows, cols)

	if n := root.options.Head; n > 0 {
		fmt.Fprintf(root.stdout, "\nFirst %d rows:\n", n)
		tbl.Head(n).Render(root.stdout)
	}

	if root.options.Output != "" {
		if err := root.saveCSV(tbl); err != nil {
			return err
		}
		root.logger.Infof("Dataset saved to: %s", root.options.Output)
	}

	return nil
}

func (root *rootCommand) printSorted(items []string) {
	sorted := make([]string, len(items))
	copy(sorted, items)
	sort.Strings(sorted)
	for _, item := range sorted {
		root.logger.Infof("  - %s", item)
	}
}

// saveCSV writes the table to the output path.
// The output path can be outside the dataset directory, so it is NOT using the Fs abstraction.
func (root *rootCommand) saveCSV(tbl *table.Table) error {
	f, err := os.Create(root.options.Output)
	if err != nil {
		return fmt.Errorf(`cannot create output file "%s": %w`, root.options.Output, err)
	}

	if err := tbl.WriteCSV(f); err != nil {
		_ = f.Close()
		return fmt.Errorf(`cannot write output file "%s": %w`, root.options.Output, err)
	}

	return f.Close()
}

// setupLogger according to the options.
func (root *rootCommand) setupLogger() {
	var logFileWriter io.Writer
	var logFileErr error
	if path := root.options.LogFilePath; path != "" {
		root.logFile, logFileErr = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if root.logFile != nil {
			logFileWriter = root.logFile
		}
	}

	root.logger = log.NewLogger(root.stdout, root.stderr, logFileWriter, root.options.Verbose)
	root.cmd.SetOut(log.ToInfoWriter(root.logger))
	root.cmd.SetErr(log.ToWarnWriter(root.logger))

	// Warn if user specified a log file and it cannot be opened
	if logFileErr != nil {
		root.logger.Warnf("Cannot open log file: %s", logFileErr)
	}
}

func (root *rootCommand) printError(err error) {
	if root.logger != nil {
		root.logger.Errorf("Error: %s", err)
		return
	}
	fmt.Fprintf(root.stderr, "Error: %s\n", err)
}

// tearDown makes clean-up after command execution.
func (root *rootCommand) tearDown() {
	if root.logger != nil {
		_ = root.logger.Sync()
	}
	if root.logFile != nil {
		_ = root.logFile.Close()
	}
}
