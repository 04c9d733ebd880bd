package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the shared state of one CLI invocation.
type app struct {
	in  io.Reader
	out io.Writer
	log *logrus.Logger

	inputPath string
	logLevel  string
	check     bool
}

// newRootCmd wires every subcommand to a fresh app bound to the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		in:  in,
		out: out,
		log: logrus.New(),
	}
	a.log.SetOutput(errOut)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	root := &cobra.Command{
		Use:           "lvlseq",
		Short:         "Run sorting and string-matching algorithms over stdin",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logrus.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log.SetLevel(lvl)
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	a.bindGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		newSortCmd(a),
		newRankCmd(a),
		newRadixCmd(a),
		newMatchCmd(a),
		newGenCmd(a),
	)

	return root
}

// bindGlobalFlags registers the flags every subcommand shares.
func (a *app) bindGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&a.inputPath, "input", "i", "", "read input from `file` instead of stdin")
	fs.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.BoolVar(&a.check, "check", false, "verify the result's post-conditions before printing")
}

// openInput returns the configured input stream and its closer.
func (a *app) openInput() (io.Reader, func() error, error) {
	if a.inputPath == "" {
		return a.in, func() error { return nil }, nil
	}
	f, err := os.Open(a.inputPath)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
