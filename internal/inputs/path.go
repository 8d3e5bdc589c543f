package inputs

import (
	"path/filepath"
	"strings"
)

// Path is one file taking part in a match. It implements fuzip.Keyed.
type Path struct {
	path string
	key  []string
}

// NewPath derives the key of path according to opts.
func NewPath(path string, opts KeyOptions) *Path {
	return &Path{path: path, key: opts.Segment(keyName(path, opts.StripExtension))}
}

// keyName returns the base name, minus its final extension when strip is
// set. A leading dot is part of the stem, so ".bashrc" keeps its name.
func keyName(path string, strip bool) string {
	base := filepath.Base(path)
	if !strip {
		return base
	}
	ext := filepath.Ext(base)
	if ext == "" || ext == base || strings.TrimSuffix(base, ext) == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Key returns the precomputed comparison key.
func (p *Path) Key() []string { return p.key }

// Display returns the path as listed.
func (p *Path) Display() string { return p.path }

// Path returns the file path.
func (p *Path) Path() string { return p.path }

// Name returns the base name of the file.
func (p *Path) Name() string { return filepath.Base(p.path) }
