package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/datatug/filenav/pkg/filenav"
	"github.com/datatug/filenav/pkg/logging"
	"github.com/datatug/filenav/pkg/navigator"
	"github.com/datatug/filenav/pkg/profiling"
	"github.com/spf13/cobra"
)

var version = "dev"

const (
	exitNoSelection = 1
	exitError       = 2
)

var (
	osExit             = os.Exit
	navigate           = filenav.Navigate
	httpListenAndServe = http.ListenAndServe
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

type cliFlags struct {
	alpha      bool
	logFile    string
	logLevel   string
	logJSON    bool
	cpuProfile string
	memProfile string
	pprofAddr  string
}

func main() {
	osExit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exitCode := 0
	cmd := newRootCmd(&exitCode)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "filenav: %v\n", err)
		return exitError
	}
	return exitCode
}

func newRootCmd(exitCode *int) *cobra.Command {
	var f cliFlags
	cmd := &cobra.Command{
		Use:   "filenav [path]",
		Short: "Browse directories in the terminal and print the chosen path",
		Long: `filenav opens a full-screen listing of path (the current directory by default).
Enter opens a directory or picks a file, Shift+Enter picks the entry under the cursor.
The chosen path is printed to stdout; quitting without a choice exits with status 1.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var initialPath string
			if len(args) == 1 {
				initialPath = args[0]
			}
			path, selected, err := start(cmd.Context(), initialPath, f)
			if err != nil {
				return err
			}
			if !selected {
				*exitCode = exitNoSelection
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&f.alpha, "alpha", false, "start with alphabetical sort instead of directories first")
	flags.StringVar(&f.logFile, "log-file", "", "write logs to `file`")
	flags.StringVar(&f.logLevel, "log-level", "info", "log `level` (debug, info, warn, error)")
	flags.BoolVar(&f.logJSON, "log-json", false, "write logs as JSON lines")
	flags.StringVar(&f.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&f.memProfile, "memprofile", "", "write memory profile to `file`")
	flags.StringVar(&f.pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	return cmd
}

func start(ctx context.Context, initialPath string, f cliFlags) (path string, selected bool, err error) {
	logger, closeLog, err := logging.New(logging.Config{File: f.logFile, Level: f.logLevel, JSON: f.logJSON})
	if err != nil {
		return "", false, err
	}
	defer func() {
		_ = closeLog()
	}()

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("recovered from panic: %v", r)
			err = fmt.Errorf("recovered from panic: %v", r)
		}
	}()

	logger.WithField("version", version).Info("starting filenav")

	if f.pprofAddr != "" {
		go func() {
			if err := httpListenAndServe(f.pprofAddr, nil); err != nil {
				logger.WithError(err).Warn("pprof server stopped")
			}
		}()
	}
	if f.cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(f.cpuProfile)
		defer stopCPUProfiling()
	}
	if f.memProfile != "" {
		stopMemProfiling := profiling.DoMemProfiling(f.memProfile)
		defer stopMemProfiling()
	}

	options := []filenav.Option{filenav.WithLogger(logger)}
	if f.alpha {
		options = append(options, filenav.WithSortMode(navigator.SortAlphabetical))
	}
	return navigate(ctx, initialPath, options...)
}
