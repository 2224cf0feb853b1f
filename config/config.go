// Package config loads layout, canvas and logging settings from an optional
// YAML file and ASCIIMAID_* environment variables.
package config

import (
	"asciimaid/logging"
	"asciimaid/render"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file looked up in the home directory.
	FileName  = ".asciimaid"
	envPrefix = "ASCIIMAID"
)

// ErrInvalidValue is returned when a spacing or size setting is negative.
var ErrInvalidValue = errors.New("invalid config value")

// Config is the resolved configuration.
type Config struct {
	Render render.Options
	Log    logging.Options
	// File is the config file that was read, empty when none was found.
	File string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{Render: render.DefaultOptions()}
}

// intKeys maps every numeric config key to the option it sets.
func intKeys(o *render.Options) map[string]*int {
	return map[string]*int{
		"layout.node_spacing":        &o.Graph.NodeSpacing,
		"layout.rank_spacing":        &o.Graph.RankSpacing,
		"layout.canvas_width":        &o.Graph.CanvasWidth,
		"layout.canvas_height":       &o.Graph.CanvasHeight,
		"layout.min_margin":          &o.Graph.MinMargin,
		"layout.top_margin":          &o.Graph.TopMargin,
		"layout.lr_column_width":     &o.Graph.LRColumnWidth,
		"layout.lr_left_margin":      &o.Graph.LRLeftMargin,
		"sequence.left_margin":       &o.Sequence.LeftMargin,
		"sequence.top_margin":        &o.Sequence.TopMargin,
		"sequence.participant_gap":   &o.Sequence.ParticipantGap,
		"sequence.first_message_row": &o.Sequence.FirstMessageRow,
		"sequence.message_height":    &o.Sequence.MessageHeight,
		"canvas.margin_x":            &o.Canvas.MarginX,
		"canvas.margin_y":            &o.Canvas.MarginY,
		"canvas.min_width":           &o.Canvas.MinWidth,
		"canvas.min_height":          &o.Canvas.MinHeight,
		"canvas.sequence_min_width":  &o.Canvas.SequenceMinWidth,
		"canvas.sequence_margin_y":   &o.Canvas.SequenceMarginY,
	}
}

// Load reads path, or $HOME/.asciimaid.yaml when path is empty, and applies
// environment overrides on top. A missing home config is not an error; a
// missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()
	v := viper.New()

	for key, ptr := range intKeys(&cfg.Render) {
		v.SetDefault(key, *ptr)
	}
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		cfg.File = v.ConfigFileUsed()
	}

	for key, ptr := range intKeys(&cfg.Render) {
		*ptr = v.GetInt(key)
		if *ptr < 0 {
			return nil, fmt.Errorf("%w: %s = %d", ErrInvalidValue, key, *ptr)
		}
	}
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.File = v.GetString("log.file")

	return cfg, nil
}
