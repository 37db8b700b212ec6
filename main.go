package main

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/robgonnella/keycombo/cli/commands"
	app_info "github.com/robgonnella/keycombo/internal/app-info"
	"github.com/robgonnella/keycombo/internal/config"
	"github.com/robgonnella/keycombo/internal/keymap"
	"github.com/robgonnella/keycombo/internal/logger"
	"github.com/spf13/viper"
)

/**
 * Main entry point for all commands
 * Here we setup environment config via viper
 */

func setConfigPaths() (string, error) {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return "", err
	}

	configDir := path.Join(userHomeDir, ".config", app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return "", err
	}

	configFile := path.Join(configDir, "config.yml")

	logFile := path.Join(configDir, app_info.NAME+".log")

	userCacheDir, err := os.UserCacheDir()

	if err != nil {
		return "", err
	}

	cacheDir := path.Join(userCacheDir, app_info.NAME)

	if err := os.MkdirAll(cacheDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return "", err
	}

	dbFile := path.Join(cacheDir, app_info.NAME+".db")

	// share location of files and directories globally using viper
	viper.Set("log-file", logFile)
	viper.Set("config-dir", configDir)
	viper.Set("config-file", configFile)
	viper.Set("cache-dir", cacheDir)
	viper.Set("database-file", dbFile)

	return configFile, nil
}

// Entry point for the cli
func main() {
	log := logger.New()

	configFile, err := setConfigPaths()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	conf, err := config.New(configFile)

	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid config file")
		conf = config.Default()
	}

	db, err := keymap.NewSqliteDatabase()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	keymapService := keymap.NewKeymapService(keymap.NewSqliteRepo(db))

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{
		Keymaps: keymapService,
		Config:  conf,
	})

	// execute the cobra command and exit with error code if necessary
	err = cmd.ExecuteContext(context.Background())

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
