package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/insomniacslk/opengrok-cli/pkg/opengrok"
	"github.com/kirsle/configdir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	progname  = "og"
	envPrefix = "OPENGROK"
)

var errNoResults = errors.New("no results")

var (
	globalConfig opengrok.Config

	configFile    string
	flagInstance  string
	flagDebug     bool
	flagVerbose   bool
	flagStats     bool
	flagProjects  []string
	flagList      bool
	flagMaxCount  int
	flagNoLines   bool
	flagNull      bool
	flagPath      string
	flagType      string
	flagSort      string
	flagColor     bool
	flagNoColor   bool
	flagHyperlink bool
	flagTimeout   time.Duration
)

func getConfig() *opengrok.Config {
	return &globalConfig
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "Configuration file")
	flags.StringVarP(&flagInstance, "instance", "i", "", "Name of the OpenGrok instance to use, as defined in the configuration file. Overrides default_instance")
	flags.String("server", "", "The OpenGrok service address (env "+envPrefix+"_SERVER)")
	flags.String("user", "", "The OpenGrok user ID (env "+envPrefix+"_USER)")
	flags.String("password", "", "The OpenGrok user password (env "+envPrefix+"_PASSWORD)")
	flags.StringSliceVar(&flagProjects, "project", nil, "Search project(s), repeatable (env "+envPrefix+"_PROJECT, comma-separated)")
	flags.BoolVarP(&flagList, "list", "l", false, "Output distinct file list")
	flags.IntVarP(&flagMaxCount, "max-count", "m", opengrok.DefaultMaxCount, "The maximum number of files shown")
	flags.BoolVar(&flagNoLines, "no-lines", false, "Do not output line numbers after the file names")
	flags.BoolVar(&flagNull, "null", false, "Output a zero byte (the ASCII NUL character) instead of the character that normally follows a file name")
	flags.StringVarP(&flagPath, "path", "p", "", "Optional file path to limit search")
	flags.StringVarP(&flagType, "type", "t", "", "Optional file type to limit search")
	flags.StringVarP(&flagSort, "sort", "s", opengrok.DefaultSort, "Optional sort")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output (print the API URL)")
	flags.BoolVarP(&flagDebug, "debug", "d", false, "Print debug messages")
	flags.BoolVarP(&flagStats, "stats", "S", false, "Print stats")
	flags.BoolVar(&flagColor, "color", false, "Always colorize output")
	flags.BoolVar(&flagNoColor, "no-color", false, "Never colorize output")
	flags.BoolVar(&flagHyperlink, "hyperlink", false, "Link file names to their cross-reference page (terminal only)")
	flags.DurationVar(&flagTimeout, "timeout", 30*time.Second, "HTTP request timeout")

	rootCmd.MarkFlagsMutuallyExclusive("color", "no-color")

	for _, name := range []string{"server", "user", "password"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			logrus.Fatalf("Failed to bind flag %q: %v", name, err)
		}
	}
	viper.SetEnvPrefix(envPrefix)
	for _, name := range []string{"server", "user", "password", "project"} {
		if err := viper.BindEnv(name); err != nil {
			logrus.Fatalf("Failed to bind environment variable for %q: %v", name, err)
		}
	}
}

func initConfig() {
	if flagDebug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if configFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(configFile)
	} else {
		configDir := configdir.LocalConfig(progname)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(configDir)
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// the configuration file is optional, flags and environment
			// are enough to run a search
			logrus.Debugf("No config file found")
			return
		}
		logrus.Fatalf("Failed to read config file: %v", err)
	}
	logrus.Debugf("Using config file %s", viper.ConfigFileUsed())
	config := getConfig()
	if err := viper.Unmarshal(config); err != nil {
		logrus.Fatalf("Failed to unmarshal config: %v", err)
	}
	if err := config.Validate(); err != nil {
		logrus.Fatalf("Invalid config: %v", err)
	}
}

// searchConfig resolves flags, environment and configuration file into a
// search configuration. Flags win over environment, which wins over the
// selected instance.
func searchConfig(cmd *cobra.Command, args []string) (*opengrok.SearchConfig, error) {
	config := getConfig()
	inst, ok := config.Instance(flagInstance)
	if flagInstance != "" && !ok {
		return nil, fmt.Errorf("instance %q not found", flagInstance)
	}
	projects := flagProjects
	if !cmd.Flags().Changed("project") {
		projects = opengrok.SplitProjects(viper.GetString("project"))
		if len(projects) == 0 {
			projects = inst.Projects
		}
	}
	color := opengrok.IsColorTerminal(os.Stdout)
	if flagColor {
		color = true
	} else if flagNoColor {
		color = false
	}
	cfg := opengrok.SearchConfig{
		Query:    strings.Join(args, " "),
		Server:   firstNonEmpty(viper.GetString("server"), inst.Server),
		User:     firstNonEmpty(viper.GetString("user"), inst.User),
		Password: firstNonEmpty(viper.GetString("password"), inst.Password),
		Projects: projects,
		Path:     flagPath,
		Type:     flagType,
		Sort:     flagSort,
		MaxCount: flagMaxCount,
		Render: opengrok.RenderOptions{
			List:    flagList,
			NoLines: flagNoLines,
			Null:    flagNull,
			Color:   color,
			// hyperlinks are escapes too, keep them away from pipes
			Hyperlink: flagHyperlink && color,
		},
		Verbose: flagVerbose,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search configuration: %w", err)
	}
	return &cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:           progname + " [flags] query",
	Short:         "Command line tool for OpenGrok searches",
	Long:          fmt.Sprintf("%s queries an OpenGrok server and prints the matches in a grep-like format, or the list of matching files.", progname),
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := searchConfig(cmd, args)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		out := bufio.NewWriter(cmd.OutOrStdout())
		searcher := opengrok.NewSearcher(opengrok.NewHTTPFetcher(opengrok.WithTimeout(flagTimeout)))
		outcome, err := searcher.Search(ctx, cfg, out)
		if flushErr := out.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("failed to flush output: %w", flushErr)
		}
		if err != nil {
			return err
		}
		if flagStats {
			fmt.Fprintf(cmd.ErrOrStderr(), "Got %d results (%d lines) in %s\n", outcome.Records, outcome.Lines, outcome.Duration)
		}
		if outcome.ExitStatus() != 0 {
			return errNoResults
		}
		if outcome.Truncated {
			fmt.Fprintln(cmd.ErrOrStderr(), "Results truncated.")
		}
		return nil
	},
}

// run executes the root command with args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errNoResults) {
			return 1
		}
		logrus.Errorf("Failed to execute command: %v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
