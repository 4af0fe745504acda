package main

import (
	"fmt"
	"io"
	"os"

	"github.com/clutterscan/clutterscan/internal/config"
	"github.com/clutterscan/clutterscan/internal/manifest"
	"github.com/clutterscan/clutterscan/internal/source"
	"github.com/clutterscan/clutterscan/internal/utils"
	"github.com/clutterscan/clutterscan/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clutterscan [path]",
	Short: "Extract clutter patterns from Defuddle sources into a manifest",
	Long: `Clutterscan reads Defuddle's constants.ts (and its sibling scoring.ts
when present), extracts the hard-coded selector and keyword arrays, and
prints them as a structured, categorized manifest on standard output.

Downstream tools consume the generated data file instead of depending on
the library's source layout.`,
	Version:       version.Short(),
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.clutterscan/config.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", config.DefaultOutputFormat, "Output format (json or yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file (default is stdout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("output.path", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	loader := source.NewLoader(source.Options{
		DefaultPath: cfg.Input.ConstantsPath,
		ScoringFile: cfg.Input.ScoringFile,
	}, log.WithComponent("source"))

	doc, err := loader.Load(path)
	if err != nil {
		return err
	}
	log.Debug().Str("path", doc.Path).Int("bytes", len(doc.Constants)).Msg("loaded input")

	m := manifest.Build(doc)

	var out io.Writer = os.Stdout
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return m.Encode(out, cfg.Output.Format)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
