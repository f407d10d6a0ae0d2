// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultThreshold   = 100
	DefaultConcurrency = 1
)

type ImapConfig struct {
	Host     string
	User     string
	Password string

	HamTrainFolders  []string
	SpamTrainFolders []string
	CheckFolders     []string
}

func (i *ImapConfig) enabled() bool {
	return len(i.HamTrainFolders) > 0 || len(i.SpamTrainFolders) > 0 || len(i.CheckFolders) > 0
}

type Config struct {
	HamTrainDirs  []string
	SpamTrainDirs []string
	CheckDirs     []string

	Threshold   int
	Concurrency int

	// Database is the sqlite file evaluation results are recorded in, empty disables recording.
	Database        string
	RecordDocuments bool
	DryRun          bool

	Imap ImapConfig

	Loglevel *string
}

func defaultConfig() *Config {
	return &Config{
		Threshold:   DefaultThreshold,
		Concurrency: DefaultConcurrency,
	}
}

func ReadConfig(filename string) (*Config, error) {
	config := defaultConfig()

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// ParseConfig reads a configuration from a toml document.
func ParseConfig(data string) (*Config, error) {
	config := defaultConfig()

	_, err := toml.Decode(data, config)
	if err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// ImapEnabled reports whether any IMAP folder is configured.
func (c *Config) ImapEnabled() bool {
	return c.Imap.enabled()
}

// Validate is exported so command line overrides can be checked again.
func (c *Config) Validate() error {
	if len(c.HamTrainDirs) == 0 && len(c.Imap.HamTrainFolders) == 0 {
		return errors.New("no ham training data, set HamTrainDirs or Imap.HamTrainFolders")
	}

	if len(c.SpamTrainDirs) == 0 && len(c.Imap.SpamTrainFolders) == 0 {
		return errors.New("no spam training data, set SpamTrainDirs or Imap.SpamTrainFolders")
	}

	if err := validateNonEmptyStrings(c.HamTrainDirs, "HamTrainDirs must not contain empty paths"); err != nil {
		return err
	}
	if err := validateNonEmptyStrings(c.SpamTrainDirs, "SpamTrainDirs must not contain empty paths"); err != nil {
		return err
	}
	if err := validateNonEmptyStrings(c.CheckDirs, "CheckDirs must not contain empty paths"); err != nil {
		return err
	}

	if c.Threshold < 1 {
		return fmt.Errorf("Threshold must be at least 1, got %d", c.Threshold)
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("Concurrency must be at least 1, got %d", c.Concurrency)
	}

	if c.RecordDocuments && len(strings.TrimSpace(c.Database)) == 0 {
		return errors.New("RecordDocuments needs a Database to record into")
	}

	if c.Imap.enabled() {
		if err := validateNonEmptyStringField(c.Imap.Host, "Imap.Host must not be empty, set to host:port of the imap server"); err != nil {
			return err
		}

		if err := validateNonEmptyStringField(c.Imap.User, "Imap.User must not be empty, set to username on the imap server"); err != nil {
			return err
		}

		if err := validateNonEmptyStringField(c.Imap.Password, "Imap.Password must not be empty, set to password of Imap.User on the imap server"); err != nil {
			return err
		}
	}

	return nil
}

func validateNonEmptyStrings(fields []string, err string) error {
	for _, f := range fields {
		if e := validateNonEmptyStringField(f, err); e != nil {
			return e
		}
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
