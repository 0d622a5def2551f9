// Package cmd implements the spendsense command line interface.
package cmd

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spendsense/backend/internal/config"
	"github.com/spf13/cobra"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

var RootCmd = &cobra.Command{
	Use:     "spendsense",
	Short:   "Expense categorizer and monthly budget tracker",
	Version: version,
}

func init() {
	RootCmd.PersistentFlags().StringP("config", "c", "config.yaml", "Configuration file to use. A missing file is ignored.")
}

// Run executes the command given by args.
func Run(args []string) error {
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

// loadConfig loads and validates the configuration from the file given
// with --config and sets up logging accordingly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	c, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}

	setupLogging(c)
	return c, nil
}

// setupLogging configures gin and the global logger.
func setupLogging(c config.Config) {
	gin.SetMode(c.Server.Mode)

	output := io.Writer(os.Stdout)
	if c.Log.Format == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if gin.IsDebugging() && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()
}
