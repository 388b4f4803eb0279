// Package precaution holds the static advice shown next to a prediction.
package precaution

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the user override inside the config directory.
const FileName = "precautions.yaml"

//go:embed defaults.yaml
var defaultYAML []byte

// ErrEmptyTable is returned for a file that defines neither labels nor
// universal tips.
var ErrEmptyTable = errors.New("precautions file defines no labels or universal tips")

// document is the on-disk layout of a precaution file.
type document struct {
	Labels    map[string][]string `yaml:"labels"`
	Universal []string            `yaml:"universal"`
	Note      string              `yaml:"note"`
}

// Table maps a predicted label to an ordered list of tips.
// A Table is read-only once built.
type Table struct {
	labels    map[string][]string
	universal []string
	note      string
}

// Default returns the built-in table.
func Default() *Table {
	doc, err := decode(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("precaution: invalid built-in table: %v", err))
	}
	return newTable(doc)
}

// DefaultYAML returns the built-in table as YAML, for seeding a config dir.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Parse decodes a table from YAML. A document without labels or universal
// tips is rejected. Missing universal tips or a missing note are taken from
// the built-in table.
func Parse(data []byte) (*Table, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}
	if len(doc.Labels) == 0 && len(doc.Universal) == 0 {
		return nil, fmt.Errorf("parsing precautions: %w", ErrEmptyTable)
	}

	def := Default()
	if len(doc.Universal) == 0 {
		doc.Universal = def.universal
	}
	if doc.Note == "" {
		doc.Note = def.note
	}
	return newTable(doc), nil
}

func decode(data []byte) (document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("parsing precautions: %w", err)
	}
	for label := range doc.Labels {
		if label == "" {
			return document{}, fmt.Errorf("parsing precautions: empty label")
		}
	}
	return doc, nil
}

func newTable(doc document) *Table {
	t := &Table{
		labels:    make(map[string][]string, len(doc.Labels)),
		universal: append([]string(nil), doc.Universal...),
		note:      doc.Note,
	}
	for label, tips := range doc.Labels {
		t.labels[label] = append([]string(nil), tips...)
	}
	return t
}

// Load reads a table from path. A missing file yields the built-in table.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading precautions file: %w", err)
	}
	return Parse(data)
}

// Lookup returns the tips for label, or nil when the label is unknown.
// Matching is exact, like the service's labels.
func (t *Table) Lookup(label string) []string {
	tips, ok := t.labels[label]
	if !ok {
		return nil
	}
	return append([]string(nil), tips...)
}

// Has reports whether label has its own tips.
func (t *Table) Has(label string) bool {
	_, ok := t.labels[label]
	return ok
}

// Universal returns the tips shown for every label.
func (t *Table) Universal() []string {
	return append([]string(nil), t.universal...)
}

// Note returns the closing line of the panel.
func (t *Table) Note() string {
	return t.note
}

// Labels returns all known labels, sorted.
func (t *Table) Labels() []string {
	labels := make([]string, 0, len(t.labels))
	for l := range t.labels {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
