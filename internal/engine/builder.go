package engine

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"db-scaffold/internal/column"
	"db-scaffold/internal/compose"
	"db-scaffold/internal/fragment"
	"db-scaffold/internal/naming"
	"db-scaffold/internal/schema"
	"db-scaffold/internal/tag"

	"go.uber.org/zap"
)

// ErrMissingTableName is returned when neither an explicit table nor a
// usable class name is given. Nothing is generated in that case.
var ErrMissingTableName = errors.New("table name could not be resolved")

// ColumnSource returns the ordered column metadata of a table.
type ColumnSource interface {
	Columns(ctx context.Context, table string) ([]schema.Column, error)
}

// Request names what to generate.
type Request struct {
	// Name is the class to generate (model, controller) or the model the
	// views belong to. Any namespace prefix is ignored.
	Name string
	// Table overrides the table derived from Name.
	Table string
	// Model is the model class a controller refers to; defaults to the
	// singular table name in StudlyCase.
	Model string
	// Theme selects themes/{Theme}/view when that directory exists.
	Theme string
}

// Artifact is one generated text.
type Artifact struct {
	Kind  Kind
	Class string // class basename; for views the model basename
	Name  string // view sub-name; empty for models and controllers
	Table string
	Text  string
}

// Builder produces artifacts for one table at a time. It keeps no state
// between calls and may be shared.
type Builder struct {
	source   ColumnSource
	loader   fragment.Loader
	composer *compose.Composer
	settings Settings
	log      *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the Builder's logger. A nil logger discards output.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l == nil {
			l = zap.NewNop()
		}
		b.log = l
	}
}

func NewBuilder(source ColumnSource, loader fragment.Loader, settings Settings, opts ...Option) *Builder {
	b := &Builder{
		source:   source,
		loader:   loader,
		settings: settings,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.composer = compose.New(loader, b.log)
	return b
}

// Generate dispatches to Model, Controller or View.
func (b *Builder) Generate(ctx context.Context, kind Kind, req Request) ([]Artifact, error) {
	switch kind {
	case KindModel:
		a, err := b.Model(ctx, req)
		if err != nil {
			return nil, err
		}
		return []Artifact{a}, nil
	case KindController:
		a, err := b.Controller(ctx, req)
		if err != nil {
			return nil, err
		}
		return []Artifact{a}, nil
	case KindView:
		return b.View(ctx, req)
	default:
		return nil, fmt.Errorf("unknown artifact kind %q", kind)
	}
}

// Model builds the model class for the request's table.
func (b *Builder) Model(ctx context.Context, req Request) (Artifact, error) {
	table := TableName(KindModel, req.Name, req.Table)
	if table == "" {
		return Artifact{}, fmt.Errorf("model %q: %w", req.Name, ErrMissingTableName)
	}
	cols, err := b.descriptors(ctx, table)
	if err != nil {
		return Artifact{}, err
	}

	s := b.settings.Model
	outer := tag.FromPairs("table", `"`+table+`"`)
	contents := b.composer.Flat(string(KindModel), s.Sections, cols, column.NewIgnore(s.Ignore...), outer)

	class := b.className(req.Name, naming.Studly(naming.Singular(table)))
	return Artifact{
		Kind:  KindModel,
		Class: class,
		Table: table,
		Text:  b.wrap(KindModel, s.Namespace, class, contents),
	}, nil
}

// Controller builds the resource controller for the request's table.
func (b *Builder) Controller(ctx context.Context, req Request) (Artifact, error) {
	table := TableName(KindController, req.Name, req.Table)
	if table == "" {
		return Artifact{}, fmt.Errorf("controller %q: %w", req.Name, ErrMissingTableName)
	}
	cols, err := b.descriptors(ctx, table)
	if err != nil {
		return Artifact{}, err
	}

	n := resolveNames(table, req.Model)
	outer := tag.FromPairs(
		"proper_name", n.proper,
		"simple_name", n.simple,
		"model_name", n.model,
		"table_name", n.table,
	)
	s := b.settings.Controller
	contents := b.composer.Flat(string(KindController), s.Sections, cols, column.NewIgnore(s.Ignore...), outer)

	class := b.className(req.Name, n.model+"Controller")
	return Artifact{
		Kind:  KindController,
		Class: class,
		Table: table,
		Text:  b.wrap(KindController, s.Namespace, class, contents),
	}, nil
}

// View builds one artifact per configured sub-name, in order. A sub-name
// whose stub is missing still yields an artifact, with empty text.
func (b *Builder) View(ctx context.Context, req Request) ([]Artifact, error) {
	table := TableName(KindView, req.Name, req.Table)
	if table == "" {
		return nil, fmt.Errorf("view %q: %w", req.Name, ErrMissingTableName)
	}
	cols, err := b.descriptors(ctx, table)
	if err != nil {
		return nil, err
	}

	s := b.settings.View
	n := resolveNames(table, naming.ClassBasename(req.Name))
	dir := b.viewDir(req.Theme)
	ignore := column.NewIgnore(s.Ignore...)
	outer := tag.FromPairs(
		"&proper_name", n.proper,
		"&simple_name", n.simple,
		"&model_name", n.model,
		"&table_name", n.table,
		"&layout_master", s.LayoutMaster,
		"&layout_content", s.LayoutContent,
	)

	class := b.className(req.Name, naming.Studly(n.simple))
	artifacts := make([]Artifact, 0, len(s.SubNames))
	for _, sub := range s.SubNames {
		b.log.Debug("composing view", zap.String("table", table), zap.String("view", sub))
		artifacts = append(artifacts, Artifact{
			Kind:  KindView,
			Class: class,
			Name:  sub,
			Table: table,
			Text:  b.composeView(dir, sub, cols, ignore, outer),
		})
	}
	return artifacts, nil
}

func (b *Builder) composeView(dir, sub string, cols []column.Descriptor, ignore column.Ignore, outer tag.Map) string {
	p := path.Join(dir, sub+".stub")
	stub, ok := b.loader.Load(p)
	if !ok {
		b.log.Debug("view stub not found", zap.String("path", p))
		return ""
	}
	paired := b.composer.Paired(dir, sub, cols, ignore, outer)
	text := tag.Substitute(strings.TrimSpace(stub)+"\n", tag.Merge(outer, paired))
	b.warnUnresolved(p, text)
	return text
}

// viewDir returns themes/{theme}/view when it exists, else the default view set.
func (b *Builder) viewDir(theme string) string {
	const fallback = "view"
	if theme == "" {
		return fallback
	}
	dir := path.Join("themes", theme, "view")
	if !b.loader.Dir(dir) {
		b.log.Warn("theme not found, using default views", zap.String("theme", theme))
		return fallback
	}
	return dir
}

// wrap places contents into {kind}/base.stub. Without a base stub the
// contents are the artifact.
func (b *Builder) wrap(kind Kind, namespace, class, contents string) string {
	p := path.Join(string(kind), "base.stub")
	base, ok := b.loader.Load(p)
	if !ok {
		b.log.Debug("base stub not found, emitting contents only", zap.String("path", p))
		b.warnUnresolved(p, contents)
		return contents
	}
	text := tag.Substitute(base, tag.FromPairs(
		"namespace", namespace,
		"class", class,
		"contents", contents,
	))
	b.warnUnresolved(p, text)
	return text
}

func (b *Builder) className(name, fallback string) string {
	if base := naming.ClassBasename(strings.TrimSpace(name)); base != "" {
		return base
	}
	return fallback
}

func (b *Builder) descriptors(ctx context.Context, table string) ([]column.Descriptor, error) {
	cols, err := b.source.Columns(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	if len(cols) == 0 {
		b.log.Warn("table has no columns", zap.String("table", table))
	}
	return b.settings.ColumnBuilder().BuildAll(cols), nil
}

func (b *Builder) warnUnresolved(p, text string) {
	if left := tag.Unresolved(text); len(left) > 0 {
		b.log.Warn("placeholders left unresolved", zap.String("stub", p), zap.Strings("tags", left))
	}
}
