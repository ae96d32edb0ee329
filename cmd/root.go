// Package cmd provides the root command and CLI setup for classmark.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"classmark.dev/pkg/classmark/internal/adapter"
	"classmark.dev/pkg/classmark/internal/controller"
	"classmark.dev/pkg/classmark/internal/domain"
	m "classmark.dev/pkg/classmark/internal/model"
)

var fsAdapter adapter.DocumentFSAdapter
var documentAdapter adapter.DocumentAdapter
var diagnosticSink adapter.DiagnosticSink
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that read/write
// artifacts.
var outputDirFlag string

// markerFlag holds the fully qualified marker annotation name.
var markerFlag string

// visibleFlag controls whether the marker is retained in the artifact.
var visibleFlag bool

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// verboseFlag raises the log level so marking diagnostics appear.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalDocumentFSAdapter()
	documentAdapter = adapter.NewYAMLDocumentAdapter()
	diagnosticSink = adapter.NewSlogSink(nil)
	workflow = domain.NewWorkflow(
		fsAdapter,
		documentAdapter,
		diagnosticSink,
		ui,
	)
}

const documentsHelp = `Class documents are YAML files describing the class and method events a
compiler front end would emit. Paths may be files or directories; directories
are scanned recursively for .yaml/.yml documents.`

const rootLongDescription = `Classmark intercepts the output stage of a class compilation pipeline and
tags compiler-generated methods with a marker annotation, so coverage
analyzers, linters and dead-code detectors can exclude them.

` + documentsHelp

const runLongDescription = `Annotate the given class documents and write the resulting text and binary
artifacts (default output: .classmark-out).

` + documentsHelp

const listLongDescription = `List the methods in the given class documents and show which would be
marked as compiler generated, without writing artifacts.

` + documentsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classmark",
		Short: "Mark compiler-generated methods in class artifacts",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for annotated class artifacts",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVarP(&markerFlag, markerFlagName, "m", viper.GetString(markerConfigKey), "fully qualified marker annotation name")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(markerFlagName), markerConfigKey)

	cmd.PersistentFlags().BoolVar(&visibleFlag, visibleFlagName, viper.GetBool(visibleConfigKey), "retain the marker annotation in the serialized artifact")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(visibleFlagName), visibleConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log per-method marking decisions")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// sessionConfig assembles the annotation configuration from flags/config.
func sessionConfig() m.Config {
	return m.Config{
		Marker:  viper.GetString(markerConfigKey),
		Visible: viper.GetBool(visibleConfigKey),
	}
}
