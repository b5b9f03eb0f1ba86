// Package config resolves the options of a snapshot run from flags, environment variables and an
// optional configuration file, and loads the project's .gitignore rules.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/temirov/cssnapshot/internal/filter"
	"github.com/temirov/cssnapshot/internal/tokenizer"
)

const (
	// EnvironmentPrefix prefixes every environment variable read by the CLI, e.g. CSSNAPSHOT_FILTER.
	EnvironmentPrefix = "CSSNAPSHOT"

	KeyFilter    = "filter"
	KeyEntities  = "entities"
	KeyGitignore = "gitignore"
	KeyCopy      = "copy"
	KeyTokens    = "tokens"
	KeyModel     = "model"
	KeyVerbose   = "verbose"

	errorBindFlagFormat     = "bind flag %s: %w"
	errorBindEnvFormat      = "bind environment variable for %s: %w"
	errorReadConfigFormat   = "read configuration from %s: %w"
	errorDecodeConfigFormat = "decode configuration: %w"
)

// optionKeys lists every key resolved by Load. Flag names equal their keys.
var optionKeys = []string{KeyFilter, KeyEntities, KeyGitignore, KeyCopy, KeyTokens, KeyModel, KeyVerbose}

// Options are the resolved settings of one run.
type Options struct {
	Filter    string `mapstructure:"filter"`
	Entities  string `mapstructure:"entities"`
	Gitignore bool   `mapstructure:"gitignore"`
	Copy      bool   `mapstructure:"copy"`
	Tokens    bool   `mapstructure:"tokens"`
	Model     string `mapstructure:"model"`
	Verbose   bool   `mapstructure:"verbose"`
}

// Load resolves Options with the precedence flag, environment, configuration file, default.
// Only flags the user changed take precedence over the other sources. The configuration file is read
// only when configFilePath is non-empty; there is no implicit discovery.
func Load(flagSet *pflag.FlagSet, configFilePath string) (Options, error) {
	reader := viper.New()
	reader.SetDefault(KeyFilter, filter.DefaultPattern)
	reader.SetDefault(KeyModel, tokenizer.DefaultModel)
	reader.SetDefault(KeyGitignore, false)
	reader.SetDefault(KeyCopy, false)
	reader.SetDefault(KeyTokens, false)
	reader.SetDefault(KeyVerbose, false)
	reader.SetDefault(KeyEntities, "")

	reader.SetEnvPrefix(EnvironmentPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	reader.AutomaticEnv()

	for _, key := range optionKeys {
		if bindError := reader.BindEnv(key); bindError != nil {
			return Options{}, fmt.Errorf(errorBindEnvFormat, key, bindError)
		}
		if flagSet == nil {
			continue
		}
		flag := flagSet.Lookup(key)
		if flag == nil {
			continue
		}
		if bindError := reader.BindPFlag(key, flag); bindError != nil {
			return Options{}, fmt.Errorf(errorBindFlagFormat, key, bindError)
		}
	}

	if strings.TrimSpace(configFilePath) != "" {
		reader.SetConfigFile(configFilePath)
		if readError := reader.ReadInConfig(); readError != nil {
			return Options{}, fmt.Errorf(errorReadConfigFormat, configFilePath, readError)
		}
	}

	var options Options
	if decodeError := reader.Unmarshal(&options); decodeError != nil {
		return Options{}, fmt.Errorf(errorDecodeConfigFormat, decodeError)
	}
	return options, nil
}
