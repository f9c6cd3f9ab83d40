// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"gioui.org/ruler"
)

// options are the command line settings of the demo.
type options struct {
	configPath string
	logLevel   string
	// limit, when positive, vetoes values above it.
	limit float64

	cfg ruler.Config
}

func defaultConfig() ruler.Config {
	return ruler.Config{
		Min:               0,
		Max:               1000,
		Step:              10,
		MajorTickInterval: 10,
		Unit:              "¥",
		Anchor:            ruler.AnchorCenter,
		CenterMin:         true,
	}
}

func parseOptions(args []string) (*options, error) {
	o := &options{cfg: defaultConfig()}
	fs := pflag.NewFlagSet("ruler", pflag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "YAML file with the ruler configuration")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.Float64Var(&o.limit, "limit", 0, "refuse values above `limit` while dragging")
	lo := fs.Float64("min", 0, "minimum value")
	hi := fs.Float64("max", 0, "maximum value")
	step := fs.Float64("step", 0, "distance between ticks")
	major := fs.Int("major", 0, "ticks per labeled tick")
	def := fs.Float64("default", 0, "initial value")
	unit := fs.String("unit", "", "label suffix")
	anchor := fs.String("anchor", "", "indicator position (leading, center)")
	centerMin := fs.Bool("center-min", false, "pad the tape so the minimum reaches a centered indicator")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.configPath != "" {
		cfg, err := loadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		o.cfg = cfg
	}
	if fs.Changed("min") {
		o.cfg.Min = *lo
	}
	if fs.Changed("max") {
		o.cfg.Max = *hi
	}
	if fs.Changed("step") {
		o.cfg.Step = *step
	}
	if fs.Changed("major") {
		o.cfg.MajorTickInterval = *major
	}
	if fs.Changed("default") {
		o.cfg.Default = ruler.Float(*def)
	}
	if fs.Changed("unit") {
		o.cfg.Unit = *unit
	}
	if fs.Changed("anchor") {
		if err := o.cfg.Anchor.UnmarshalText([]byte(*anchor)); err != nil {
			return nil, err
		}
	}
	if fs.Changed("center-min") {
		o.cfg.CenterMin = *centerMin
	}
	return o, nil
}

// loadConfig reads a ruler configuration from a YAML file.
func loadConfig(path string) (ruler.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ruler.Config{}, errors.Wrap(err, "read ruler config")
	}
	return decodeConfig(data)
}

func decodeConfig(data []byte) (ruler.Config, error) {
	var cfg ruler.Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return ruler.Config{}, errors.Wrap(err, "decode ruler config")
	}
	if err := cfg.Validate(); err != nil {
		return ruler.Config{}, errors.WithStack(err)
	}
	return cfg, nil
}

func buildLogger(level string) (logr.Logger, error) {
	var zl zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zl = zapcore.DebugLevel
	case "info", "":
		zl = zapcore.InfoLevel
	case "warn", "warning":
		zl = zapcore.WarnLevel
	case "error":
		zl = zapcore.ErrorLevel
	default:
		return logr.Logger{}, errors.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zl)
	z, err := zcfg.Build()
	if err != nil {
		return logr.Logger{}, errors.Wrap(err, "build logger")
	}
	return zapr.NewLogger(z), nil
}
