// Command planline is a small CLI over the Planline Go SDK. It reads
// credentials from the planline config file (or environment) and exposes
// read-mostly operations for scripting and debugging.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	planline "github.com/planline/planline-go"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	// Global flags
	configFile string
	jsonOutput bool
	debugLog   bool
)

var ErrAlreadyHandled = errors.New("already handled")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "planline [command] [flags]",
	Short: "Planline CLI - a command line interface for the Planline tracker",
	Long: `Planline CLI is a command line interface for the Planline
project-tracking API. Credentials come from the config file
(~/.config/planline/config.yaml by default) or the PLANLINE_API_KEY and
PLANLINE_API_SECRET environment variables.

Examples:
  # List all projects
  planline projects list

  # Show one ticket
  planline tickets get 12 345

  # Close a ticket
  planline tickets close 12 345

  # Download an attachment
  planline files download 12 9 -o report.pdf`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "", "", "Path to configuration file to override default")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false, "Log requests and responses to stderr")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newProjectsCmd())
	rootCmd.AddCommand(newTicketsCmd())
	rootCmd.AddCommand(newFilesCmd())
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	_ = godotenv.Load()

	rootCmd.SilenceErrors = true // Prevent Cobra from printing the error
	rootCmd.SilenceUsage = true  // Prevent Cobra from printing usage on error

	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, ErrAlreadyHandled) {
			os.Exit(1)
		}
		errorLabel.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}

// newClient builds an SDK client from the config file and global flags.
func newClient() (*planline.Client, error) {
	fc, err := planline.LoadConfigFile(configFile)
	if err != nil {
		return nil, err
	}

	level := zerolog.ErrorLevel
	if debugLog {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return planline.New(fc.ClientConfig(&logger))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("planline", Version)
		},
	}
}
