// Package compose stitches stub fragments into section text.
//
// Flat composition concatenates whole sections (models, controllers).
// Paired composition renders a heading and a body fragment for every column
// and hands the accumulated strings back as tags for a view stub.
package compose

import (
	"path"
	"strings"

	"db-scaffold/internal/column"
	"db-scaffold/internal/fragment"
	"db-scaffold/internal/tag"

	"go.uber.org/zap"
)

// Tag keys produced by paired composition.
const (
	TagFillable     = "&fillable"
	TagDataHeading  = "&data_heading"
	TagDataBody     = "&data_body"
	TagDataHeadBody = "&data_head_body"
	TagDataFile     = "&data_file"
)

// Composer loads fragments and substitutes tags into them.
type Composer struct {
	loader fragment.Loader
	log    *zap.Logger
}

// New returns a Composer reading fragments from loader. A nil logger is replaced by a no-op one.
func New(loader fragment.Loader, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{loader: loader, log: log}
}

// Fillable returns the quoted, comma-joined names of the columns not ignored:
// "name","bio".
func Fillable(cols []column.Descriptor, ignore column.Ignore) string {
	kept := column.Filter(cols, ignore)
	quoted := make([]string, len(kept))
	for i, c := range kept {
		quoted[i] = `"` + c.Name + `"`
	}
	return strings.Join(quoted, ",")
}

// load returns the fragment at dir/name, or "" when it is missing.
func (c *Composer) load(dir, name string) string {
	p := path.Join(dir, name)
	text, ok := c.loader.Load(p)
	if !ok {
		c.log.Debug("stub not found, using empty text", zap.String("path", p))
	}
	return text
}

// Sections concatenates dir/{section}.stub for every section present, in
// order, each trimmed of trailing whitespace and ended with a newline.
func (c *Composer) Sections(dir string, sections []string) string {
	var b strings.Builder
	for _, s := range sections {
		p := path.Join(dir, s+".stub")
		text, ok := c.loader.Load(p)
		if !ok {
			c.log.Debug("section skipped", zap.String("path", p))
			continue
		}
		b.WriteString(strings.TrimRight(text, " \t\r\n"))
		b.WriteByte('\n')
	}
	return b.String()
}

// Flat composes sections and substitutes outer merged with a "fillable" tag
// built from cols, in one pass.
func (c *Composer) Flat(dir string, sections []string, cols []column.Descriptor, ignore column.Ignore, outer tag.Map) string {
	body := c.Sections(dir, sections)
	tags := tag.Merge(outer, tag.FromPairs("fillable", Fillable(cols, ignore)))
	return tag.Substitute(body, tags)
}

// Paired renders view's heading and body fragments once per column that is
// not ignored and returns the accumulated text as tags:
//
//	&fillable        "name","bio"
//	&data_heading    heading_0 + heading_1 + ...
//	&data_body       body_0 + body_1 + ...
//	&data_head_body  heading_0 + body_0 + heading_1 + body_1 + ...
//
// Each column's file fragment (input.stub, textarea.stub, ...) is rendered
// with the column's own tags and exposed to its heading and body as &data_file.
func (c *Composer) Paired(dir, view string, cols []column.Descriptor, ignore column.Ignore, outer tag.Map) tag.Map {
	headingStub := c.load(dir, view+"_data_heading.stub")
	bodyStub := c.load(dir, view+"_data_body.stub")

	var headings, bodies, headBody strings.Builder
	for _, col := range column.Filter(cols, ignore) {
		colTags := col.Tags()
		dataFile := c.fileData(dir, col, colTags)

		tags := tag.Merge(colTags, outer, tag.FromPairs(TagDataFile, dataFile))
		heading := tag.Substitute(headingStub, tags)
		body := tag.Substitute(bodyStub, tags)

		headings.WriteString(heading)
		bodies.WriteString(body)
		headBody.WriteString(heading)
		headBody.WriteString(body)
	}

	return tag.FromPairs(
		TagFillable, Fillable(cols, ignore),
		TagDataHeading, strings.TrimSpace(headings.String()),
		TagDataBody, strings.TrimSpace(bodies.String()),
		TagDataHeadBody, strings.TrimSpace(headBody.String()),
	)
}

// fileData renders the column's own fragment; a column without a fragment
// category, or whose fragment is missing, renders as "".
func (c *Composer) fileData(dir string, col column.Descriptor, colTags tag.Map) string {
	name := col.FragmentName()
	if name == "" {
		c.log.Debug("no fragment for column type",
			zap.String("column", col.Name), zap.String("data_type", col.DataType))
		return ""
	}
	return tag.Substitute(strings.TrimSpace(c.load(dir, name)), colTags)
}
