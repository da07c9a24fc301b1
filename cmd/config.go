package cmd

import (
	"errors"
	"fmt"
	"strings"

	"db-scaffold/internal/engine"
	"db-scaffold/internal/typemap"

	"github.com/spf13/viper"
)

// ErrNoActiveDatabase is returned when the databases list has no entry marked active.
var ErrNoActiveDatabase = errors.New("no active database found in config (set active: true)")

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig(v *viper.Viper) (*DBConfig, error) {
	var configs []DBConfig

	if err := v.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, ErrNoActiveDatabase
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	if activeConfig.Driver == "" {
		activeConfig.Driver = detectDriver(activeConfig.DSN)
	}
	return activeConfig, nil
}

// ResolveDBConfig picks the active entry of the databases list and falls back
// to database.dsn (flag --dsn) when none is active.
func ResolveDBConfig(v *viper.Viper) (*DBConfig, error) {
	// An explicit --dsn wins over the config file.
	if flagDSN != "" {
		return dsnConfig(v), nil
	}

	cfg, err := GetActiveDBConfig(v)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, ErrNoActiveDatabase) {
		return nil, err
	}

	if v.GetString("database.dsn") == "" {
		return nil, fmt.Errorf("database.dsn is required (via flag or config): %w", err)
	}
	return dsnConfig(v), nil
}

func dsnConfig(v *viper.Viper) *DBConfig {
	connStr := v.GetString("database.dsn")
	driver := v.GetString("database.driver")
	if driver == "" {
		driver = detectDriver(connStr)
	}
	return &DBConfig{Name: "CLI", Driver: driver, DSN: connStr, Active: true}
}

// detectDriver guesses the database/sql driver name from a DSN.
func detectDriver(connStr string) string {
	lower := strings.ToLower(connStr)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"),
		strings.Contains(lower, "sslmode"):
		return "postgres"
	case strings.HasPrefix(lower, "sqlserver://"):
		return "sqlserver"
	case strings.HasPrefix(lower, "oracle://"):
		return "oracle"
	default:
		return "mysql"
	}
}

type categoryConfig struct {
	Category string   `mapstructure:"category"`
	Types    []string `mapstructure:"types"`
}

// LoadSettings reads the settings.* keys over the built-in defaults.
func LoadSettings(v *viper.Viper) (engine.Settings, error) {
	s := engine.DefaultSettings()

	setString(v, "settings.model.namespace", &s.Model.Namespace)
	setStrings(v, "settings.model.ignore", &s.Model.Ignore)
	setStrings(v, "settings.model.sections", &s.Model.Sections)

	setString(v, "settings.controller.namespace", &s.Controller.Namespace)
	setStrings(v, "settings.controller.ignore", &s.Controller.Ignore)
	setStrings(v, "settings.controller.sections", &s.Controller.Sections)

	setStrings(v, "settings.view.ignore", &s.View.Ignore)
	setStrings(v, "settings.view.sub_names", &s.View.SubNames)
	setString(v, "settings.view.layout_master", &s.View.LayoutMaster)
	setString(v, "settings.view.layout_content", &s.View.LayoutContent)

	if v.IsSet("settings.samples") {
		s.Samples = v.GetBool("settings.samples")
	}
	if v.IsSet("settings.seed") {
		s.Seed = v.GetInt64("settings.seed")
	}

	var err error
	if s.Semantic, err = loadCategories(v, "settings.type_map"); err != nil {
		return s, err
	}
	if s.Files, err = loadCategories(v, "settings.stub_map"); err != nil {
		return s, err
	}
	return s, nil
}

// loadCategories returns nil when key is unset so the builder keeps its default table.
func loadCategories(v *viper.Viper, key string) (*typemap.Table, error) {
	if !v.IsSet(key) {
		return nil, nil
	}
	var raw []categoryConfig
	if err := v.UnmarshalKey(key, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	entries := make([]typemap.Entry, 0, len(raw))
	for _, c := range raw {
		if c.Category == "" {
			return nil, fmt.Errorf("%s: entry without category", key)
		}
		entries = append(entries, typemap.Entry{Category: c.Category, Types: c.Types})
	}
	return typemap.New(entries...), nil
}

func setString(v *viper.Viper, key string, dst *string) {
	if v.IsSet(key) {
		*dst = v.GetString(key)
	}
}

func setStrings(v *viper.Viper, key string, dst *[]string) {
	if v.IsSet(key) {
		*dst = v.GetStringSlice(key)
	}
}
