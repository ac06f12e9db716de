package main

import (
	"fmt"
	"io"
	"os"

	"tidypath/internal/errors"
	"tidypath/internal/filter"
	"tidypath/internal/model"
	"tidypath/internal/report"
	"tidypath/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(w io.Writer, currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "jlinoff",
		Repository: "tidy-path",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Fprintf(w, "A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Fprintln(w, "Download it from https://github.com/jlinoff/tidy-path/releases")
	} else {
		fmt.Fprintf(w, "You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

type options struct {
	list        bool
	listAll     bool
	undefined   bool
	silent      bool
	color       bool
	json        bool
	interactive bool
	homeToken   string
	debug       bool
	update      bool
	version     bool
	help        bool
}

func newFlagSet(stderr io.Writer, opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("tidypath", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tidypath [options] VAR\n\n")
		fmt.Fprintf(stderr, "tidypath removes duplicate and, optionally, undefined entries from a\n")
		fmt.Fprintf(stderr, "colon-separated path variable such as PATH or LD_LIBRARY_PATH.\n")
		fmt.Fprintf(stderr, "The tidied value is printed to stdout; listings go to stderr.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  export PATH=$(tidypath PATH)          # Remove duplicates\n")
		fmt.Fprintf(stderr, "  export PATH=$(tidypath -u PATH)       # Also remove undefined entries\n")
		fmt.Fprintf(stderr, "  tidypath -l PATH                      # List the entries that are kept\n")
		fmt.Fprintf(stderr, "  tidypath -Lu PATH                     # Full report with codes\n")
		fmt.Fprintf(stderr, "  export LD_LIBRARY_PATH=$(tidypath -s LD_LIBRARY_PATH)\n")
	}

	fs.BoolVarP(&opts.list, "list", "l", false, "List the kept entries in human readable form")
	fs.BoolVarP(&opts.listAll, "list-all", "L", false, "List every entry with its classification code")
	fs.BoolVarP(&opts.undefined, "undefined", "u", false, "Remove entries that do not exist on the filesystem")
	fs.BoolVarP(&opts.silent, "silent", "s", false, "Treat a missing or empty variable as empty instead of failing")
	fs.BoolVarP(&opts.color, "color", "c", false, "Force colored listings")
	fs.BoolVarP(&opts.json, "json", "j", false, "Output the classified entries as JSON")
	fs.BoolVarP(&opts.interactive, "interactive", "i", false, "Browse the classified entries in a terminal UI")
	fs.StringVar(&opts.homeToken, "home-token", model.DefaultHomeToken, "Leading token replaced by the home directory for -u")
	fs.BoolVar(&opts.debug, "debug", false, "Log classification decisions to stderr")
	fs.BoolVar(&opts.update, "update", false, "Check for the latest version")
	fs.BoolVarP(&opts.version, "version", "V", false, "Print version information")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show this help message")
	return fs
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	return log
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	var opts options
	fs := newFlagSet(stderr, &opts)

	renderer := lipgloss.NewRenderer(stderr)
	styles := report.NewStyles(renderer)
	log := newLogger(stderr)

	fail := func(err error) int {
		fmt.Fprintf(stderr, "%s %v\n", styles.Removed.Render("ERROR:"), err)
		log.Debug(errors.PrintErrorWithStackTrace(err))
		return 1
	}

	if err := fs.Parse(args); err != nil {
		return fail(errors.NewUsageError("%v", err))
	}

	if opts.color {
		renderer.SetColorProfile(termenv.ANSI256)
	}
	if opts.debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if opts.help {
		fs.Usage()
		return 0
	}

	if opts.version {
		fmt.Fprintf(stdout, "tidypath version %s\n", model.Version)
		return 0
	}

	if opts.update {
		checkUpdate(stdout, model.Version)
		return 0
	}

	if err := validate(&opts); err != nil {
		return fail(err)
	}

	name, raw, err := resolveValue(fs.Args(), opts.silent, lookupEnv)
	if err != nil {
		return fail(err)
	}
	log.WithField("name", name).Debugf("raw value: %q", raw)

	f := filter.New(filter.Options{
		CheckExistence: opts.undefined,
		List:           listMode(&opts),
		HomeToken:      opts.homeToken,
	}, filter.WithLogger(log))
	res := f.Run(raw)

	switch {
	case opts.interactive:
		err = runTuiMode(name, res)
	case opts.json:
		err = report.JSON(stdout, name, res)
	default:
		err = output(stdout, stderr, styles, name, f.Options().List, res)
	}
	if err != nil {
		return fail(err)
	}
	return 0
}

func validate(opts *options) error {
	modes := 0
	for _, on := range []bool{opts.list || opts.listAll, opts.json, opts.interactive} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return errors.NewUsageError("only one of --list/--list-all, --json and --interactive may be given")
	}
	if opts.interactive && !(isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())) {
		return errors.NewUsageError("--interactive requires a terminal")
	}
	return nil
}

// resolveValue returns the variable name and the raw value to process.
func resolveValue(args []string, silent bool, lookupEnv func(string) (string, bool)) (string, string, error) {
	switch {
	case len(args) > 1:
		return "", "", errors.NewUsageError("too many arguments: %q, expected one variable name", args)
	case len(args) == 0:
		if silent {
			return "", "", nil
		}
		return "", "", errors.NewUsageError("missing environment variable name, see --help")
	}

	name := args[0]
	value, ok := lookupEnv(name)
	if !ok || value == "" {
		if !silent {
			return name, "", errors.NewUndefinedVariableError(name)
		}
		value = ""
	}
	return name, value, nil
}

func listMode(opts *options) filter.ListMode {
	switch {
	case opts.listAll:
		return filter.ListAll
	case opts.list:
		return filter.ListFiltered
	}
	return filter.ListNone
}

func output(stdout, stderr io.Writer, styles report.Styles, name string, mode filter.ListMode, res model.Result) error {
	switch mode {
	case filter.ListAll:
		return report.All(stderr, styles, name, res)
	case filter.ListFiltered:
		return report.Filtered(stderr, styles, name, res)
	}
	return report.Quiet(stdout, res)
}

func runTuiMode(name string, res model.Result) error {
	m := tui.InitialModel(name, res)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WithStackTraceAndPrefix(err, "terminal UI failed")
	}
	return nil
}
