package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abatilo/taskwiz/internal/config"
	taskerrors "github.com/abatilo/taskwiz/internal/errors"
	"github.com/abatilo/taskwiz/internal/output"
	"github.com/abatilo/taskwiz/internal/storage"
	"github.com/abatilo/taskwiz/internal/task"
	"github.com/abatilo/taskwiz/internal/validate"
)

//nolint:gochecknoglobals // CLI flags, config and formatter are package-level by design
var (
	jsonOutput bool
	verbose    bool
	configPath string
	cfg        *config.Config
	formatter  output.Formatter = output.NewHumanFormatter()
	logger     *log.Logger      = log.NewWithOptions(os.Stderr, log.Options{Prefix: "taskwiz"})
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskwiz",
		Short: "Validate and record Taskwarrior-style tasks",
		Long:  "taskwiz - builds task records that follow the Taskwarrior status rules.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			loaded, err := config.Load(configPath)
			if err != nil {
				printError(err)
			}
			cfg = loaded

			if jsonOutput || cfg.Output == "json" {
				formatter = output.NewJSONFormatter()
			}

			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				level = log.WarnLevel
			}
			if verbose {
				level = log.DebugLevel
			}
			logger.SetLevel(level)
			logger.Debug("config loaded", "path", cfg.Path, "data_dir", cfg.DataDir)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file path")

	rootCmd.AddCommand(
		initCmd(),
		addCmd(),
		importCmd(),
		showCmd(),
		listCmd(),
		validateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getStore() (*storage.Store, error) {
	return storage.NewStoreWithPath(cfg.DataDir), nil
}

func newConstructor() *task.Constructor {
	return task.NewConstructor(task.WithLogger(logger))
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	logger.Debug("command failed", "err", err)
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

// initCmd implements 'taskwiz init'.
func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the task data directory",
		Run: func(_ *cobra.Command, _ []string) {
			store, err := getStore()
			if err != nil {
				printError(err)
			}
			if err = store.Init(force); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Initialized taskwiz at %s", store.BasePath())))
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Reinitialize even if already exists")
	return cmd
}

// addCmd implements 'taskwiz add'.
func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <field:value|word>...",
		Short: "Add a new task",
		Example: "  taskwiz add buy milk priority:H due:20240201T000000Z\n" +
			"  taskwiz add status:recurring description:rent mask:- due:20240201T000000Z recur:monthly",
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store, err := getStore()
			if err != nil {
				printError(err)
			}

			fields, err := parseFieldArgs(args)
			if err != nil {
				printError(err)
			}

			rec, err := newConstructor().Create(cmd.Context(), fields)
			if taskerrors.IsNothingToDo(err) {
				printOutput(formatter.FormatMessage("Nothing to do"))
				return
			}
			if err != nil {
				printError(err)
			}

			if err = store.Save(rec); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatRecord(rec.Fields()))
		},
	}
}

// showCmd implements 'taskwiz show'.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <uuid>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			store, err := getStore()
			if err != nil {
				printError(err)
			}

			fields, err := store.Load(args[0])
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatRecord(fields))
		},
	}
}

// listCmd implements 'taskwiz list'.
func listCmd() *cobra.Command {
	var statuses []string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Run: func(_ *cobra.Command, _ []string) {
			store, err := getStore()
			if err != nil {
				printError(err)
			}

			var filter storage.StatusFilter
			for _, s := range statuses {
				status := task.Status(s)
				if !task.IsValidStatus(status) || status == task.StatusDeleted {
					printError(taskerrors.InvalidStatusError{Value: s})
				}
				filter.Statuses = append(filter.Statuses, status)
			}

			records, err := store.List(filter)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatRecordList(records))
		},
	}
	cmd.Flags().StringSliceVarP(&statuses, "status", "s", nil,
		"Show only these statuses (pending, completed, waiting, recurring)")
	return cmd
}

// validateCmd implements 'taskwiz validate'.
func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "validate <" + strings.Join(validate.Names(), "|") + "> <value>",
		Short:     "Check a value against a field grammar",
		Args:      cobra.ExactArgs(2), //nolint:mnd // CLI takes 2 positional args
		ValidArgs: validate.Names(),
		Run: func(_ *cobra.Command, args []string) {
			fn, ok := validate.Lookup(args[0])
			if !ok {
				printError(fmt.Errorf("unknown grammar %q (valid: %s)", args[0], strings.Join(validate.Names(), ", ")))
			}
			if !fn(args[1]) {
				printError(taskerrors.InvalidFieldError{Field: args[0], Value: args[1]})
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("valid %s: %s", args[0], args[1])))
		},
	}
}
