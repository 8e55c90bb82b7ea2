// Package settings loads application-level preferences: logging, download
// destination and gallery ordering. Gallery content lives in manifests
// (internal/config); this package only covers how the CLI behaves.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	vlerrors "github.com/alexisbeaulieu97/vlightbox/pkg/errors"
)

const (
	// AppName names the config directory and the environment prefix.
	AppName = "vlightbox"
	// FileName is the settings file name without extension.
	FileName = "config"
)

// Settings is the resolved application configuration.
type Settings struct {
	Log      LogSettings      `mapstructure:"log"`
	Download DownloadSettings `mapstructure:"download"`
	Gallery  GallerySettings  `mapstructure:"gallery"`
}

// LogSettings controls the logger built at startup.
type LogSettings struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json logfmt zerolog"`
	File   string `mapstructure:"file"`
}

// DownloadSettings controls where saved images go.
type DownloadSettings struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// GallerySettings controls how sources are turned into galleries.
type GallerySettings struct {
	Sort     string `mapstructure:"sort" validate:"oneof=natural simple"`
	CloneDir string `mapstructure:"clone_dir" validate:"required"`
}

// LoadOptions points Load at explicit locations, mostly for tests.
type LoadOptions struct {
	// File is used exclusively when set and must exist.
	File string
	// Dir overrides the platform config directory.
	Dir string
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		cache = os.TempDir()
	}
	return Settings{
		Log:      LogSettings{Level: "info", Format: "text"},
		Download: DownloadSettings{Dir: filepath.Join(home, "Downloads")},
		Gallery: GallerySettings{
			Sort:     "natural",
			CloneDir: filepath.Join(cache, AppName, "galleries"),
		},
	}
}

// Dir returns $XDG_CONFIG_HOME/vlightbox or the platform equivalent.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// Load merges defaults, the optional settings file and VLIGHTBOX_* variables.
func Load(opts LoadOptions) (Settings, string, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("download.dir", defaults.Download.Dir)
	v.SetDefault("gallery.sort", defaults.Gallery.Sort)
	v.SetDefault("gallery.clone_dir", defaults.Gallery.CloneDir)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	used := ""
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return Settings{}, "", vlerrors.NewParseError(opts.File, 0, err)
		}
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, "", vlerrors.NewParseError(opts.File, 0, err)
		}
		used = opts.File
	} else {
		dir := opts.Dir
		if dir == "" {
			resolved, err := Dir()
			if err != nil {
				return Settings{}, "", err
			}
			dir = resolved
		}
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, "", vlerrors.NewParseError(filepath.Join(dir, FileName+".yaml"), 0, err)
			}
		} else {
			used = v.ConfigFileUsed()
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, "", vlerrors.NewParseError(used, 0, err)
	}
	s.Normalize()

	if err := Validate(s); err != nil {
		return Settings{}, "", err
	}
	return s, used, nil
}

// Validate checks enumerated values and required paths.
func Validate(s Settings) error {
	if err := validator.New().Struct(s); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
			fe := ves[0]
			field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Settings."))
			return vlerrors.NewValidationError(field, fmt.Sprintf("invalid value %q", fe.Value()), err)
		}
		return vlerrors.NewValidationError("settings", err.Error(), err)
	}
	return nil
}

// Normalize lower-cases enumerated values and expands a leading ~ in paths.
// It is safe to call again after flag overrides.
func (s *Settings) Normalize() {
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	s.Log.Format = strings.ToLower(strings.TrimSpace(s.Log.Format))
	s.Gallery.Sort = strings.ToLower(strings.TrimSpace(s.Gallery.Sort))
	s.Download.Dir = expandHome(s.Download.Dir)
	s.Gallery.CloneDir = expandHome(s.Gallery.CloneDir)
	s.Log.File = expandHome(s.Log.File)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
