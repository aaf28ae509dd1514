//go:build !solution

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gitlab.com/slon/patternfinder/patternfinder"
	"gitlab.com/slon/patternfinder/report"
)

const usage = "patternfinder <pattern length> <string>"

const (
	exitOK           = 0
	exitUsage        = 1
	exitInvalidInput = 2
)

var (
	errUsage         = errors.New(usage)
	errPatternLength = errors.New("The pattern length must be a positive number")
)

type options struct {
	format  string
	order   string
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "patternfinder [flags] <pattern length> <string>",
		Short: "Prints substrings of the given length that occur more than once",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(&opts, args, stdout, stderr)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w\n%s", err, usage)
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.format, "format", string(report.FormatText), "report format: text or yaml")
	flags.StringVar(&opts.order, "order", string(report.OrderFirst), "pattern order: first (first occurrence) or count")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "write debug logs to stderr")

	return cmd
}

func execute(opts *options, args []string, stdout, stderr io.Writer) error {
	patternLength, err := strconv.Atoi(args[0])
	if err != nil {
		return errPatternLength
	}

	logger := newLogger(opts.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	if id, err := uuid.NewV4(); err == nil {
		logger = logger.With(zap.String("run", id.String()))
	}
	logger.Debug("starting",
		zap.Int("pattern_length", patternLength),
		zap.Int("input_bytes", len(args[1])),
		zap.String("format", opts.format),
		zap.String("order", opts.order),
	)

	sink := report.NewWriterSink(stdout)
	r := report.Reporter{
		Format: report.Format(opts.format),
		Order:  report.Order(opts.order),
		Logger: logger,
		Clock:  clockwork.NewRealClock(),
	}
	if err := r.Process(args[1], patternLength, sink); err != nil {
		return err
	}
	return sink.Err()
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.InitDefaultHelpFlag()

	cmdArgs, err := separatePositional(cmd.Flags(), args)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return exitUsage
	}
	cmd.SetArgs(cmdArgs)

	err = cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, patternfinder.ErrInvalidArgument):
		fmt.Fprintln(stdout, err)
		return exitInvalidInput
	default:
		fmt.Fprintln(stdout, err)
		return exitUsage
	}
}

// separatePositional moves positional arguments behind "--".
// Only registered flags stay in front. Anything else that starts with a dash,
// like "-1" or "-ab-ab", is a pattern length or an input string.
func separatePositional(fs *pflag.FlagSet, args []string) ([]string, error) {
	flags := make([]string, 0, len(args)+1)
	var positional []string

loop:
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			break loop
		case !isFlag(fs, arg):
			positional = append(positional, arg)
		default:
			flags = append(flags, arg)
			if takesValue(fs, arg) {
				if i+1 == len(args) {
					return nil, fmt.Errorf("flag needs an argument: %s\n%s", arg, usage)
				}
				i++
				flags = append(flags, args[i])
			}
		}
	}

	flags = append(flags, "--")
	return append(flags, positional...), nil
}

// lookupFlag accepts "--name", "--name=value", "-x" and "-x=value".
func lookupFlag(fs *pflag.FlagSet, arg string) *pflag.Flag {
	if name := strings.TrimPrefix(arg, "--"); name != arg {
		name, _, _ = strings.Cut(name, "=")
		return fs.Lookup(name)
	}
	if len(arg) >= 2 && arg[0] == '-' && (len(arg) == 2 || arg[2] == '=') {
		return fs.ShorthandLookup(arg[1:2])
	}
	return nil
}

func isFlag(fs *pflag.FlagSet, arg string) bool {
	return lookupFlag(fs, arg) != nil
}

func takesValue(fs *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	f := lookupFlag(fs, arg)
	return f != nil && f.NoOptDefVal == ""
}
