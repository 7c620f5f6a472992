// Package config loads the tonal configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tonal/internal/template"
)

const (
	// AppName is the directory name used under the XDG config home.
	AppName = "tonal"

	// ConfigFileName is the default configuration file name.
	ConfigFileName = "config.toml"

	// EnvConfigPath overrides the default configuration file location.
	EnvConfigPath = "TONAL_CONFIG"
)

// WallpaperTool names a supported wallpaper setter.
type WallpaperTool string

const (
	WallpaperSwaybg   WallpaperTool = "swaybg"
	WallpaperSwww     WallpaperTool = "swww"
	WallpaperNitrogen WallpaperTool = "nitrogen"
	WallpaperFeh      WallpaperTool = "feh"
)

// ValidWallpaperTools returns every supported wallpaper tool.
func ValidWallpaperTools() []WallpaperTool {
	return []WallpaperTool{WallpaperSwaybg, WallpaperSwww, WallpaperNitrogen, WallpaperFeh}
}

// Apps selects which applications are reloaded after rendering.
// A nil field counts as enabled.
type Apps struct {
	Kitty    *bool `toml:"kitty" yaml:"kitty" json:"kitty"`
	Waybar   *bool `toml:"waybar" yaml:"waybar" json:"waybar"`
	GtkTheme *bool `toml:"gtk_theme" yaml:"gtk_theme" json:"gtk_theme"`
	Dunst    *bool `toml:"dunst" yaml:"dunst" json:"dunst"`
}

// Enabled returns the names of the enabled apps in a fixed order.
func (a *Apps) Enabled() []string {
	if a == nil {
		a = &Apps{}
	}

	on := func(b *bool) bool { return b == nil || *b }

	var apps []string
	if on(a.Kitty) {
		apps = append(apps, "kitty")
	}
	if on(a.Waybar) {
		apps = append(apps, "waybar")
	}
	if on(a.GtkTheme) {
		apps = append(apps, "gtk_theme")
	}
	if on(a.Dunst) {
		apps = append(apps, "dunst")
	}
	return apps
}

// Settings is the [config] table.
type Settings struct {
	ReloadApps     bool          `toml:"reload_apps" yaml:"reload_apps" json:"reload_apps"`
	ReloadAppsList *Apps         `toml:"reload_apps_list" yaml:"reload_apps_list" json:"reload_apps_list"`
	SetWallpaper   bool          `toml:"set_wallpaper" yaml:"set_wallpaper" json:"set_wallpaper"`
	WallpaperTool  WallpaperTool `toml:"wallpaper_tool" yaml:"wallpaper_tool" json:"wallpaper_tool"`
	SwwwOptions    []string      `toml:"swww_options" yaml:"swww_options" json:"swww_options"`
	FehOptions     []string      `toml:"feh_options" yaml:"feh_options" json:"feh_options"`
	RunAfter       [][]string    `toml:"run_after" yaml:"run_after" json:"run_after"`
	Prefix         string        `toml:"prefix" yaml:"prefix" json:"prefix"`
}

// Template is one [templates.<name>] table.
type Template struct {
	InputPath  string `toml:"input_path" yaml:"input_path" json:"input_path"`
	OutputPath string `toml:"output_path" yaml:"output_path" json:"output_path"`
}

// Config is the whole configuration file.
type Config struct {
	Settings  Settings            `toml:"config" yaml:"config" json:"config"`
	Templates map[string]Template `toml:"templates" yaml:"templates" json:"templates"`

	path string
}

// DefaultPath returns the configuration file location, honouring EnvConfigPath.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFileName)
}

// Load reads the configuration from path. An empty path loads DefaultPath,
// falling back to an empty configuration when that file does not exist.
// An explicitly given path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified config file, intended to be read
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{Templates: map[string]Template{}}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.path = path

	return cfg, nil
}

// Parse decodes configuration data. ext selects the format (".toml", ".yaml",
// ".yml" or ".json"); anything else is treated as TOML.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	}

	if cfg.Templates == nil {
		cfg.Templates = map[string]Template{}
	}
	// Older configs spell tools as enum variants ("Swww").
	cfg.Settings.WallpaperTool = WallpaperTool(strings.ToLower(string(cfg.Settings.WallpaperTool)))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for missing or unknown values.
func (c *Config) Validate() error {
	if c.Settings.WallpaperTool != "" {
		valid := false
		for _, tool := range ValidWallpaperTools() {
			if c.Settings.WallpaperTool == tool {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown wallpaper_tool %q (valid tools: %v)", c.Settings.WallpaperTool, ValidWallpaperTools())
		}
	}

	for i, cmd := range c.Settings.RunAfter {
		if len(cmd) == 0 || cmd[0] == "" {
			return fmt.Errorf("run_after command %d is empty", i)
		}
	}

	for _, name := range c.templateNames() {
		tmpl := c.Templates[name]
		if tmpl.InputPath == "" {
			return fmt.Errorf("template %q: input_path is required", name)
		}
		if tmpl.OutputPath == "" {
			return fmt.Errorf("template %q: output_path is required", name)
		}
	}

	return nil
}

// Path returns the file the configuration was loaded from, or "" for the built-in default.
func (c *Config) Path() string {
	return c.path
}

// Definitions returns the templates ordered by name.
func (c *Config) Definitions() []template.Definition {
	names := c.templateNames()
	defs := make([]template.Definition, 0, len(names))
	for _, name := range names {
		tmpl := c.Templates[name]
		defs = append(defs, template.Definition{
			Name:       name,
			InputPath:  tmpl.InputPath,
			OutputPath: tmpl.OutputPath,
		})
	}
	return defs
}

func (c *Config) templateNames() []string {
	names := make([]string, 0, len(c.Templates))
	for name := range c.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
