// Package config provides the configuration loader for lunchcal.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file lunchcal looks for.
const FileName = "lunchcal.yaml"

// Storage backends.
const (
	BackendFS = "fs"
	BackendS3 = "s3"
)

// Defaults applied when the file leaves a field empty.
const (
	defaultListen = ":8080"
	defaultRoot   = "data"
	defaultModel  = "gemini-2.0-flash-exp"
	defaultSMTP   = 587
)

// Config is the resolved runtime configuration: defaults applied, secrets
// expanded from the environment, backend validated.
type Config struct {
	Listen    string
	Storage   StorageDTO
	Generator GeneratorDTO
	Scraper   ScraperDTO
	FontPath  string
	SMTP      SMTPDTO
}

// Load finds and loads the configuration. When path is empty the working
// directory and its parents are searched for lunchcal.yaml.
func Load(path string) (*Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		path, err = findConfiguration(cwd)
		if err != nil {
			return nil, err
		}
	}
	return LoadFile(path)
}

// LoadFile loads the configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}
	return resolve(&file)
}

// findConfiguration walks from cwd to the filesystem root looking for the
// configuration file.
func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func resolve(file *File) (*Config, error) {
	cfg := &Config{
		Listen:    file.Server.Listen,
		Storage:   file.Storage,
		Generator: file.Generator,
		Scraper:   file.Scraper,
		FontPath:  file.Calendar.FontPath,
		SMTP:      file.SMTP,
	}

	if cfg.Listen == "" {
		cfg.Listen = defaultListen
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendFS
	}
	if cfg.Storage.Root == "" {
		cfg.Storage.Root = defaultRoot
	}
	if cfg.Generator.Model == "" {
		cfg.Generator.Model = defaultModel
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = defaultSMTP
	}

	// Secrets may be spelled ${VAR} and live in the environment.
	cfg.Generator.APIKey = os.ExpandEnv(cfg.Generator.APIKey)
	cfg.Scraper.APIKey = os.ExpandEnv(cfg.Scraper.APIKey)
	cfg.SMTP.From = os.ExpandEnv(cfg.SMTP.From)
	cfg.SMTP.Password = os.ExpandEnv(cfg.SMTP.Password)

	if cfg.Storage.Backend != BackendFS && cfg.Storage.Backend != BackendS3 {
		return nil, zerr.With(domain.ErrUnknownStorageBackend, "backend", cfg.Storage.Backend)
	}

	return cfg, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
