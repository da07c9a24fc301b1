package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"db-scaffold/internal/dialect"
	"db-scaffold/internal/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile    string
	flagDSN    string
	DB         *sql.DB
	DriverName string
	SchemaName string
	Log        = zap.NewNop()
)

var RootCmd = &cobra.Command{
	Use:   "db-scaffold",
	Short: "Generate Laravel models, controllers and views from a live database schema",
	Long: `
     _ _                           __  __       _     _
  __| | |__        ___  ___ __ _ / _|/ _| ___ | | __| |
 / _' | '_ \ ____/ __|/ __/ _' | |_| |_ / _ \| |/ _' |
| (_| | |_) |____\__ \ (_| (_| |  _|  _| (_) | | (_| |
 \__,_|_.__/     |___/\___\__,_|_| |_|  \___/|_|\__,_|

DB SCAFFOLD - Laravel CRUD scaffolding from your tables
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(viper.GetBool("verbose"))
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		Log = logger

		config, err := ResolveDBConfig(viper.GetViper())
		if err != nil {
			return err
		}
		DriverName = config.Driver
		Log.Debug("connecting", zap.String("name", config.Name), zap.String("driver", config.Driver))

		DB, err = sql.Open(DriverName, config.DSN)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		if err := DB.PingContext(cmd.Context()); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		SchemaName, err = currentSchema(cmd.Context(), DB, DriverName)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if DB != nil {
			DB.Close()
		}
		_ = Log.Sync()
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./db-scaffold.yaml)")
	RootCmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "Database Source Name (DSN)")
	RootCmd.PersistentFlags().String("driver", "", "database/sql driver: mysql, postgres, sqlserver, oracle (detected from the DSN when empty)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")

	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))
	viper.BindPFlag("database.driver", RootCmd.PersistentFlags().Lookup("driver"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// executable directory first, then the working directory
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		viper.AddConfigPath(".")

		viper.SetConfigName("db-scaffold")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// currentSchema returns the schema to introspect for the open connection.
func currentSchema(ctx context.Context, db *sql.DB, driver string) (string, error) {
	if driver != "mysql" {
		return dialect.DefaultSchema(driver), nil
	}
	var name sql.NullString
	if err := db.QueryRowContext(ctx, "SELECT DATABASE()").Scan(&name); err != nil {
		return "", fmt.Errorf("failed to get database name: %w", err)
	}
	if name.String == "" {
		return "", fmt.Errorf("no database selected in DSN")
	}
	return name.String, nil
}

// newSource returns the live catalog reader for the open connection.
func newSource() *schema.Source {
	return schema.NewSource(DB, dialect.GetDialect(DriverName), SchemaName)
}
