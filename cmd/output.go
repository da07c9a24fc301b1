package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"db-scaffold/internal/engine"
	"db-scaffold/internal/naming"

	"github.com/fatih/color"
	"github.com/spf13/afero"
)

// ErrArtifactExists is returned when a target file exists and --force is not set.
var ErrArtifactExists = errors.New("artifact already exists")

// ArtifactPath returns the Laravel location of a, relative to the project root.
func ArtifactPath(a engine.Artifact) string {
	switch a.Kind {
	case engine.KindModel:
		return path.Join("app", a.Class+".php")
	case engine.KindController:
		return path.Join("app", "Http", "Controllers", a.Class+".php")
	default:
		return path.Join("resources", "views", naming.Snake(a.Class), a.Name+".blade.php")
	}
}

// Writer stores artifacts under a project root and reports each one.
type Writer struct {
	fs    afero.Fs
	base  string
	force bool
	out   io.Writer
}

func NewWriter(fs afero.Fs, base string, force bool, out io.Writer) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{fs: fs, base: base, force: force, out: out}
}

// Write stores a and returns its path. Empty artifacts are not written and
// return "". An existing file is kept unless force is set.
func (w *Writer) Write(a engine.Artifact) (string, error) {
	if a.Text == "" {
		return "", nil
	}
	target := filepath.Join(w.base, filepath.FromSlash(ArtifactPath(a)))

	exists, err := afero.Exists(w.fs, target)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", target, err)
	}
	if exists && !w.force {
		fmt.Fprintf(w.out, "%s %s\n", color.YellowString("exists "), target)
		return target, fmt.Errorf("%s: %w", target, ErrArtifactExists)
	}

	if err := w.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	if err := afero.WriteFile(w.fs, target, []byte(a.Text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	fmt.Fprintf(w.out, "%s %s\n", color.GreenString("created"), target)
	return target, nil
}

// WriteAll writes every artifact. Existing files are reported and skipped;
// any other error stops the run.
func (w *Writer) WriteAll(artifacts []engine.Artifact) (written int, err error) {
	for _, a := range artifacts {
		p, err := w.Write(a)
		switch {
		case errors.Is(err, ErrArtifactExists):
			continue
		case err != nil:
			return written, err
		case p != "":
			written++
		}
	}
	return written, nil
}
