// Command tally counts words, merges counting maps and runs set
// operations on integers given on the command line.
//
// Flags can also be set from TALLY_* environment variables, for example
// TALLY_WORDS_TOP=3, or from a tally.yaml file in --config-dir:
//
//	debug: true
//	words:
//	  top: 3
//	merge:
//	  policy: last
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.lepak.sg/tally/must"
)

type app struct {
	cmd       *cobra.Command
	v         *viper.Viper
	log       *slog.Logger
	configDir string
}

func newApp() *app {
	a := &app{
		v:   viper.New(),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	a.cmd = &cobra.Command{
		Use:   "tally",
		Short: "Count words, merge counts and compare sets of numbers",

		// usage is only useful for flag errors, see SetFlagErrorFunc
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: a.preRun,
	}
	a.cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, c.UsageString())
	})

	flags := a.cmd.PersistentFlags()
	flags.Bool("debug", false, "enable debug log output")
	flags.StringVar(&a.configDir, "config-dir", ".", "directory to look for tally.yaml in")
	a.bindFlags(flags, "")

	a.cmd.AddCommand(
		newWordsCmd(a),
		newMergeCmd(a),
		newSetCmd(a),
		newStatsCmd(a),
		newDescribeCmd(a),
	)

	return a
}

// bindFlags makes the value of each flag available from viper under
// prefix+name, so it can also come from the environment or config file.
func (a *app) bindFlags(flags *pflag.FlagSet, prefix string) {
	flags.VisitAll(func(f *pflag.Flag) {
		must.Do(a.v.BindPFlag(prefix+f.Name, f))
	})
}

// getInts reads a list of integers from viper. Values from the
// environment arrive as one comma-separated string.
func (a *app) getInts(key string) ([]int, error) {
	switch v := a.v.Get(key).(type) {
	case string:
		if v == "" {
			return nil, nil
		}
		return parseInts(strings.Split(v, ","))
	default:
		return cast.ToIntSliceE(v)
	}
}

func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	a.v.SetConfigName("tally")
	a.v.SetConfigType("yaml")
	a.v.AddConfigPath(a.configDir)
	a.v.SetEnvPrefix("TALLY")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	err := a.v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("config: %w", err)
	}

	a.log = newLogger(cmd.ErrOrStderr(), a.v.GetBool("debug"))
	if err == nil {
		a.log.Debug("loaded config", "file", a.v.ConfigFileUsed())
	}

	return nil
}

func main() {
	err := newApp().cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}
