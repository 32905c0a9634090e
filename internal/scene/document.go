package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/football-asset-generator/internal/domain/scenegraph"
)

// Document is a scene file: a list of top-level nodes.
type Document struct {
	Nodes []*scenegraph.Node `yaml:"nodes"`
}

// Load reads the scene at path. A missing file yields an empty document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", path, err)
	}
	return &doc, nil
}

// Save writes doc to path through a temp file and rename.
func Save(path string, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Root returns the top-level node named name, creating it when missing.
func (d *Document) Root(name string) *scenegraph.Node {
	for _, n := range d.Nodes {
		if n != nil && n.Name == name {
			return n
		}
	}
	root := scenegraph.NewNode(name)
	d.Nodes = append(d.Nodes, root)
	return root
}
