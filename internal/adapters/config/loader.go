// Package config provides the settings loader for todostack.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.trai.ch/todostack/internal/core/domain"
	"go.trai.ch/todostack/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultFilename is the config file looked up when none is given.
const DefaultFilename = "todostack.yaml"

// DefaultEnvFile is the dotenv file loaded before environment lookup.
const DefaultEnvFile = ".env"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader. Precedence, low to high: built-in
// defaults, the YAML config file, the environment (including .env).
type Loader struct {
	logger  ports.Logger
	envFile string
}

// NewLoader creates a new Loader reading DefaultEnvFile from the working directory.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger:  logger,
		envFile: DefaultEnvFile,
	}
}

// WithEnvFile returns a copy of the loader that reads the given dotenv file.
// An empty path disables dotenv loading.
func (l *Loader) WithEnvFile(path string) *Loader {
	return &Loader{logger: l.logger, envFile: path}
}

// Load resolves settings. A missing config file or .env file is not an error.
func (l *Loader) Load(path string) (domain.Settings, error) {
	if err := l.loadEnvFile(); err != nil {
		return domain.Settings{}, err
	}

	v := viper.New()
	setDefaults(v, domain.DefaultSettings())

	if path != "" {
		if err := readConfigFile(v, path); err != nil {
			return domain.Settings{}, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s domain.Settings
	if err := v.Unmarshal(&s); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to decode settings")
	}

	if err := validate(s); err != nil {
		return domain.Settings{}, err
	}

	if used := v.ConfigFileUsed(); used != "" {
		l.logger.Info("loaded settings from " + used)
	}
	return s, nil
}

// loadEnvFile exports the dotenv file into the process environment.
// Variables already set win over the file.
func (l *Loader) loadEnvFile() error {
	if l.envFile == "" {
		return nil
	}
	if _, err := os.Stat(l.envFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(l.envFile); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to load env file"), "path", l.envFile)
	}
	return nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to stat config file"), "path", path)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	return nil
}

func validate(s domain.Settings) error {
	required := []struct {
		key   string
		value string
	}{
		{"engine", s.Engine},
		{"compose.path", s.Compose.Path},
		{"web.service", s.Web.Service},
		{"web.image", s.Web.Image},
		{"db.service", s.DB.Service},
		{"db.image", s.DB.Image},
		{"db.volume", s.DB.Volume},
		{"network.name", s.Network.Name},
		{"network.driver", s.Network.Driver},
		{"deploy.image", s.Deploy.Image},
		{"deploy.container", s.Deploy.Container},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, r.key+" must not be empty"), "key", r.key)
		}
	}

	if s.Web.Service == s.DB.Service {
		return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "web.service and db.service must differ"), "service", s.Web.Service)
	}
	if _, err := domain.ParsePortMapping(s.Web.Ports); err != nil {
		return zerr.Wrap(err, "web.ports")
	}
	if _, err := domain.ParsePortMapping(s.Deploy.Ports); err != nil {
		return zerr.Wrap(err, "deploy.ports")
	}
	return nil
}
