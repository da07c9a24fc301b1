package cmd

import (
	"errors"
	"fmt"

	"db-scaffold/internal/engine"
	"db-scaffold/internal/fragment"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type generateOptions struct {
	table string
	model string
	theme string
	force bool
	print bool
}

func init() {
	RootCmd.AddCommand(
		newGenerateCmd(engine.KindModel, "model <Name>", "Create an Eloquent model class from a table"),
		newGenerateCmd(engine.KindController, "controller <Name>", "Create a resource controller from a table"),
		newGenerateCmd(engine.KindView, "view <Model>", "Create the index, create, update and read views of a table"),
	)

	viper.SetDefault("settings.base_path", ".")
}

func newGenerateCmd(kind engine.Kind, use, short string) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBuilder(newSource())
			if err != nil {
				return err
			}

			req := engine.Request{Name: args[0], Table: opts.table, Model: opts.model, Theme: opts.theme}
			if req.Theme == "" {
				req.Theme = viper.GetString("settings.theme")
			}

			artifacts, err := b.Generate(cmd.Context(), kind, req)
			if err != nil {
				return err
			}

			if opts.print {
				for _, a := range artifacts {
					fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", ArtifactPath(a), a.Text)
				}
				return nil
			}

			w := NewWriter(afero.NewOsFs(), viper.GetString("settings.base_path"), opts.force, cmd.OutOrStdout())
			var errs []error
			for _, a := range artifacts {
				if _, err := w.Write(a); err != nil {
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().StringVar(&opts.table, "table", "", "table to read (derived from the name when empty)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite existing files")
	cmd.Flags().BoolVar(&opts.print, "print", false, "print to stdout instead of writing files")
	switch kind {
	case engine.KindController:
		cmd.Flags().StringVar(&opts.model, "model", "", "model class the controller uses")
	case engine.KindView:
		cmd.Flags().StringVar(&opts.theme, "theme", "", "view theme under themes/ (overrides settings.theme)")
	}
	return cmd
}

// newBuilder wires the configured settings and stubs to source.
func newBuilder(source engine.ColumnSource) (*engine.Builder, error) {
	settings, err := LoadSettings(viper.GetViper())
	if err != nil {
		return nil, err
	}

	stubs := viper.GetString("settings.stubs")
	if stubs != "" {
		Log.Debug("using stub overlay", zap.String("dir", stubs))
	}
	loader := fragment.NewStore(fragment.Overlay(stubs), fragment.WithLogger(Log))
	return engine.NewBuilder(source, loader, settings, engine.WithLogger(Log)), nil
}
