package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Store     StoreConfig     `mapstructure:"store"`
	Files     FilesConfig     `mapstructure:"files"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Output    OutputConfig    `mapstructure:"output"`
}

type StoreConfig struct {
	HistorySize int `mapstructure:"history_size" validate:"gte=1,lte=10"`
	TopMatches  int `mapstructure:"top_matches" validate:"gte=1"`
}

type FilesConfig struct {
	DefaultPath   string `mapstructure:"default_path"`
	Format        string `mapstructure:"format" validate:"omitempty,oneof=text yaml pdf"`
	OnImportError string `mapstructure:"on_import_error" validate:"oneof=halt skip"`
	Autosave      bool   `mapstructure:"autosave"`
}

type TemplatesConfig struct {
	WordListTemplate string `mapstructure:"word_list_template" validate:"omitempty,file"`
}

type OutputConfig struct {
	Color bool `mapstructure:"color"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lexicon")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("store.history_size", 10)
	v.SetDefault("store.top_matches", 3)
	v.SetDefault("files.default_path", "words.txt")
	// Empty format means the format is inferred from the file extension
	v.SetDefault("files.format", "")
	v.SetDefault("files.on_import_error", "halt")
	v.SetDefault("files.autosave", false)
	v.SetDefault("templates.word_list_template", "")
	v.SetDefault("output.color", true)

	if err := v.BindEnv("files.default_path", "LEXICON_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind LEXICON_FILE environment variable: %w", err)
	}
	if err := v.BindEnv("output.color", "LEXICON_COLOR"); err != nil {
		return nil, fmt.Errorf("failed to bind LEXICON_COLOR environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
