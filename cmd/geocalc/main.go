// Command geocalc is an interactive calculator for points, lines, circles,
// rectangles, and unions and intersections of them.
package main

import (
	"fmt"
	"os"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zephyrtronium/geocalc"
	"github.com/zephyrtronium/geocalc/internal/config"
)

const banner = "Geometric Calculator. Type 'exit' to quit."

var (
	configFile string
	prompt     string
	prec       uint
	logLevel   string
	noBanner   bool
)

var rootCmd = &cobra.Command{
	Use:   "geocalc [line...]",
	Short: "A calculator for points, lines, circles, and rectangles.",
	Long: `geocalc evaluates geometric expressions such as
	r = Rectangle(Point(0, 0), Point(10, 10))
	r.distance(Point(20, 5))
With arguments, each argument is executed as a line in one session.
Otherwise lines are read interactively until "exit" or end of input.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	bindFlags(rootCmd.Flags())
}

func bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&configFile, "config", "", "configuration file (default ./"+config.DefaultFile+" if present)")
	fs.StringVar(&prompt, "prompt", "> ", "input prompt")
	fs.UintVar(&prec, "prec", geocalc.DefaultPrec, "precision of numeric methods in bits")
	fs.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.BoolVar(&noBanner, "no-banner", false, "don't print the greeting")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "geocalc:", err)
		os.Exit(1)
	}
}

// settings loads the configuration file and applies explicitly set flags
// over it.
func settings(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if fs.Changed("prompt") {
		cfg.Prompt = prompt
	}
	if fs.Changed("prec") {
		cfg.Precision = prec
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if fs.Changed("no-banner") {
		b := !noBanner
		cfg.Banner = &b
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.Out = os.Stderr
	log.Level = lvl
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	return log, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd.Flags())
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	sess := geocalc.NewSession(geocalc.Prec(cfg.Precision))
	sess.Log = log
	log.WithFields(logrus.Fields{"prec": cfg.Precision, "lines": len(args)}).Debug("starting session")

	if len(args) > 0 {
		for _, line := range args {
			execLine(os.Stdout, sess, line)
		}
		return nil
	}

	if cfg.ShowBanner() {
		fmt.Println(banner)
	}
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	return repl(ln, os.Stdout, sess, cfg.Prompt)
}
