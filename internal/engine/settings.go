package engine

import (
	"db-scaffold/internal/column"
	"db-scaffold/internal/typemap"
)

// Kind is the type of artifact being generated.
type Kind string

const (
	KindModel      Kind = "model"
	KindController Kind = "controller"
	KindView       Kind = "view"
)

// Kinds lists every artifact kind in generation order.
var Kinds = []Kind{KindModel, KindController, KindView}

type ModelSettings struct {
	Namespace string
	Ignore    []string
	Sections  []string
}

type ControllerSettings struct {
	Namespace string
	Ignore    []string
	Sections  []string
}

type ViewSettings struct {
	Ignore        []string
	SubNames      []string
	LayoutMaster  string
	LayoutContent string
}

// Settings is the per-kind configuration of a Builder.
type Settings struct {
	Model      ModelSettings
	Controller ControllerSettings
	View       ViewSettings

	// Semantic and Files override the default category tables when set.
	Semantic *typemap.Table
	Files    *typemap.Table

	// Samples fills the placeholder tag with generated example values.
	Samples bool
	Seed    int64
}

var timestamps = []string{"id", "updated_at", "created_at", "deleted_at"}

// DefaultSettings returns the stock Laravel-style configuration.
func DefaultSettings() Settings {
	return Settings{
		Model: ModelSettings{
			Namespace: "App",
			Ignore:    append(append([]string(nil), timestamps...), "password"),
			Sections:  []string{"contents"},
		},
		Controller: ControllerSettings{
			Namespace: `App\Http\Controllers`,
			Ignore:    append([]string(nil), timestamps...),
			Sections: []string{
				"construct", "index", "create-view", "create",
				"read", "update-view", "update", "delete",
			},
		},
		View: ViewSettings{
			Ignore:        append([]string(nil), timestamps...),
			SubNames:      []string{"index", "create", "update", "read"},
			LayoutMaster:  "layouts.master",
			LayoutContent: "content",
		},
		Samples: true,
		Seed:    1,
	}
}

// ColumnBuilder returns a fresh descriptor builder. Each one owns its faker,
// so samples restart from Seed on every run.
func (s Settings) ColumnBuilder() *column.Builder {
	cb := column.NewBuilder()
	if s.Semantic != nil {
		cb.Semantic = s.Semantic
	}
	if s.Files != nil {
		cb.Files = s.Files
	}
	if s.Samples {
		cb.Faker = column.NewFaker(s.Seed)
	}
	return cb
}
