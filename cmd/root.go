package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/josephlewis42/eggshell/core"
	"github.com/josephlewis42/eggshell/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	exitCode int
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "eggshell")
}

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrPermission) {
		log.Println("Couldn't read config, check the permissions of", cfgPath)
	}

	return configuration, err
}

// debugLogger returns the logger for debug output and a function that
// closes its destination.
func debugLogger(cfg *config.Configuration) (*log.Logger, func(), error) {
	if cfg.DebugLog == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}

	fd, err := cfg.OpenDebugLog()
	if err != nil {
		return nil, nil, err
	}
	return log.New(fd, "[eggshell] ", log.LstdFlags), func() { fd.Close() }, nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eggshell",
	Short: "A tiny interactive shell",
	Long: `An interactive shell with line editing, history recall and
pipelines of programs joined with '|'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, closeLog, err := debugLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		shell := core.NewShell(cfg, os.Stdin, os.Stdout, os.Stderr, logger)
		exitCode = shell.Run()
		logger.Printf("shell exited with code %d", exitCode)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	os.Exit(exitCode)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "config directory")
}
