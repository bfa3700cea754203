/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the statust commands. Configuration loading, logger
setup and table loading used by every command.
*/

package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/kleascm/statust/pkg/frame"
	"github.com/kleascm/statust/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is reported by --version and stored in run records
const Version = "0.1.0"

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("STATUST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the global logrus logger and returns the
// statust logger writing to the command's stderr
func SetupLogging(cmd *cobra.Command) (*logging.Logger, error) {
	logLevel := viper.GetString("log_level")
	if logLevel == "" {
		logLevel = string(logging.LogLevelInfo)
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	logFormat := viper.GetString("log_format")
	if logFormat == "" {
		logFormat = string(logging.LogFormatText)
	}
	maxFiles := 10
	if viper.IsSet("log_max_files") {
		maxFiles = viper.GetInt("log_max_files")
	}

	return logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevel(logLevel),
		Format:    logging.LogFormat(logFormat),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  maxFiles,
		Timestamp: true,
		Compress:  viper.GetBool("log_compress"),
		Console:   cmd.ErrOrStderr(),
	})
}

// prepare runs the setup every command needs
func prepare(cmd *cobra.Command) (*logging.Logger, error) {
	if err := LoadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}

// delimiter returns the configured cell delimiter
func delimiter() string {
	if d := viper.GetString("delimiter"); d != "" {
		return d
	}
	return frame.DefaultDelimiter
}

// loadTable reads path with the configured delimiter and logs the load
func loadTable(path string, logger *logging.Logger) (*frame.Table, error) {
	start := time.Now()
	tbl, err := frame.Read(path, frame.WithDelimiter(delimiter()))
	if err != nil {
		return nil, err
	}
	logger.LogLoad(path, tbl.NumRows(), tbl.NumCols(), time.Since(start))
	return tbl, nil
}
