// Package config loads the optional debcrates TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"

	"github.com/ethanolivertroy/debcrates/internal/log"
	"github.com/ethanolivertroy/debcrates/internal/models"
)

// Formats accepted for OutputFormat
var Formats = []string{"terminal", "table", "json"}

// fileConfig mirrors config.toml
type fileConfig struct {
	Format        string            `toml:"format"`
	IndexCommand  string            `toml:"index_command"`
	StatusCommand string            `toml:"status_command"`
	FamilyMarker  string            `toml:"family_marker"`
	Exceptions    map[string]string `toml:"exceptions"`
	Verbose       bool              `toml:"verbose"`
}

// DefaultPath returns $XDG_CONFIG_HOME/debcrates/config.toml
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "debcrates", "config.toml")
}

// Load applies the config file at path on top of cfg. When explicit is
// false a missing file is not an error.
func Load(fs afero.Fs, path string, explicit bool, cfg *models.Config) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expanding config path %q: %w", path, err)
	}

	data, err := afero.ReadFile(fs, expanded)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			log.Debugf("no config file at %s", expanded)
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	meta, err := toml.Decode(string(data), &fc)
	if err != nil {
		return fmt.Errorf("parsing config file %s: %w", expanded, err)
	}
	for _, key := range meta.Undecoded() {
		log.Warnf("config %s: unknown key %q", expanded, key.String())
	}

	log.Debugf("loaded config from %s", expanded)
	fc.applyTo(cfg)
	return nil
}

func (fc fileConfig) applyTo(cfg *models.Config) {
	if fc.Format != "" {
		cfg.OutputFormat = fc.Format
	}
	if fc.IndexCommand != "" {
		cfg.IndexCommand = fc.IndexCommand
	}
	if fc.StatusCommand != "" {
		cfg.StatusCommand = fc.StatusCommand
	}
	if fc.FamilyMarker != "" {
		cfg.FamilyMarker = fc.FamilyMarker
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
	if len(fc.Exceptions) > 0 && cfg.Exceptions == nil {
		cfg.Exceptions = make(map[string]string, len(fc.Exceptions))
	}
	for pkg, crate := range fc.Exceptions {
		cfg.Exceptions[pkg] = crate
	}
}

// Validate reports every problem in cfg at once
func Validate(cfg *models.Config) error {
	var result error

	if !validFormat(cfg.OutputFormat) {
		result = multierror.Append(result, fmt.Errorf("unknown output format %q (want one of %s)",
			cfg.OutputFormat, strings.Join(Formats, ", ")))
	}
	if cfg.IndexFile == "" && strings.TrimSpace(cfg.IndexCommand) == "" {
		result = multierror.Append(result, errors.New("index command is empty"))
	}
	if cfg.StatusFile == "" && strings.TrimSpace(cfg.StatusCommand) == "" {
		result = multierror.Append(result, errors.New("status command is empty"))
	}
	if cfg.FamilyMarker == "" {
		result = multierror.Append(result, errors.New("family marker is empty"))
	}
	for pkg, crate := range cfg.Exceptions {
		if strings.TrimSpace(pkg) == "" || strings.TrimSpace(crate) == "" {
			result = multierror.Append(result, fmt.Errorf("invalid exception %q = %q", pkg, crate))
		}
	}

	return result
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
