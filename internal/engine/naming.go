package engine

import (
	"strings"

	"db-scaffold/internal/naming"
)

// TableName resolves the table an artifact is generated from: the explicit
// override when given, else the lower-cased, pluralized class basename
// (BlogPost -> blogposts; pass an override for snake_case tables).
// Controllers drop "controller" from the class name first
// (UserController -> users). It returns "" when nothing can be derived.
func TableName(kind Kind, name, override string) string {
	if t := strings.TrimSpace(override); t != "" {
		return t
	}

	base := strings.ToLower(naming.ClassBasename(strings.TrimSpace(name)))
	if kind == KindController {
		base = strings.ReplaceAll(base, "controller", "")
	}
	base = strings.Trim(base, "_")
	if base == "" {
		return ""
	}
	return naming.Plural(base)
}

// names are the naming tags shared by every artifact of one table.
type names struct {
	table  string
	simple string
	proper string
	model  string
}

func resolveNames(table, model string) names {
	simple := naming.Singular(table)
	if model == "" {
		model = naming.Studly(simple)
	}
	return names{
		table:  table,
		simple: simple,
		proper: naming.ProperName(simple),
		model:  model,
	}
}
