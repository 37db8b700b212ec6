package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imdario/mergo"
	"github.com/robgonnella/keycombo/pkg/combo"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FormatSettings represents the user's preferred rendering of key
// combinations. Empty fields fall back to the defaults.
type FormatSettings struct {
	Control       string `yaml:"control" mapstructure:"control"`
	Alt           string `yaml:"alt" mapstructure:"alt"`
	Shift         string `yaml:"shift" mapstructure:"shift"`
	Super         string `yaml:"super" mapstructure:"super"`
	Separator     string `yaml:"separator" mapstructure:"separator"`
	ImplicitShift bool   `yaml:"implicit-shift" mapstructure:"implicit-shift"`
	Case          string `yaml:"case" mapstructure:"case"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	Format FormatSettings `yaml:"format" mapstructure:"format"`
}

// Default returns the configuration used when the user has none
func Default() *Config {
	return &Config{
		Format: FormatSettings{
			Control:   "Ctrl",
			Alt:       "Alt",
			Shift:     "Shift",
			Super:     "Super",
			Separator: "-",
			Case:      combo.TitleCase.String(),
		},
	}
}

// New returns umarshaled data structure of user provided config merged
// over the defaults. A missing file yields the defaults.
func New(confPath string) (*Config, error) {
	conf := Config{}

	if _, err := os.Stat(confPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(confPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&conf, Default()); err != nil {
		return nil, err
	}

	if _, err := conf.Format.FormatConfig(); err != nil {
		return nil, fmt.Errorf("%s: %w", confPath, err)
	}

	return &conf, nil
}

// Write writes conf to the config file registered with viper
func Write(conf *Config) error {
	configFile := viper.GetString("config-file")

	if configFile == "" {
		return errors.New("config-file is not set")
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0751); err != nil {
		return err
	}

	file, err := os.Create(configFile)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	if err := encoder.Encode(conf); err != nil {
		return err
	}

	return encoder.Close()
}

// Merge returns s with every empty field taken from fallback
func (s FormatSettings) Merge(fallback FormatSettings) (FormatSettings, error) {
	if err := mergo.Merge(&s, fallback); err != nil {
		return FormatSettings{}, err
	}

	return s, nil
}

// FormatConfig builds the combo.FormatConfig described by s
func (s FormatSettings) FormatConfig() (combo.FormatConfig, error) {
	style, ok := combo.ParseCaseStyle(s.Case)

	if !ok {
		return combo.FormatConfig{}, fmt.Errorf("unknown key name case %q: expected title, lower or upper", s.Case)
	}

	f := combo.DefaultFormat().WithKeyNameCase(style)

	if s.Control != "" {
		f = f.WithControl(s.Control)
	}

	if s.Alt != "" {
		f = f.WithAlt(s.Alt)
	}

	if s.Shift != "" {
		f = f.WithShift(s.Shift)
	}

	if s.Super != "" {
		f = f.WithSuper(s.Super)
	}

	if s.Separator != "" {
		f = f.WithSeparator(s.Separator)
	}

	if s.ImplicitShift {
		f = f.WithImplicitShift()
	}

	return f, nil
}
