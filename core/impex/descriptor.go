package impex

import (
	"fmt"
	"os"
	"path"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// Descriptor describes which documents an import run accepts and how their elements
// are resolved to handlers.
type Descriptor struct {
	// Name identifies the descriptor in logs and reports.
	Name string `yaml:"name"`
	// ContextNamespace is the namespace used to look up handlers.
	ContextNamespace string `yaml:"contextNamespace"`
	// FilePattern is a regular expression matched against document base names.
	FilePattern string `yaml:"filePattern"`
	// Elements restricts the accepted element names. Empty accepts every registered one.
	Elements []string `yaml:"elements"`

	pattern *regexp.Regexp
}

// DefaultDescriptor returns the descriptor used when no descriptor file is configured.
func DefaultDescriptor(cfg Config) *Descriptor {
	d := &Descriptor{
		Name:             "default",
		ContextNamespace: cfg.ContextNamespace,
		FilePattern:      `\.xml$`,
	}
	d.pattern = regexp.MustCompile(d.FilePattern)
	return d
}

// LoadDescriptor reads a YAML descriptor. An empty path yields DefaultDescriptor.
// A descriptor without a namespace inherits the configured one.
func LoadDescriptor(cfg Config) (*Descriptor, error) {
	if cfg.DescriptorPath == "" {
		return DefaultDescriptor(cfg), nil
	}

	data, err := os.ReadFile(cfg.DescriptorPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor %s: %w", cfg.DescriptorPath, err)
	}
	return ParseDescriptor(data, cfg)
}

// ParseDescriptor decodes a YAML descriptor.
func ParseDescriptor(data []byte, cfg Config) (*Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor: %w", err)
	}

	if d.ContextNamespace == "" {
		d.ContextNamespace = cfg.ContextNamespace
	}
	if d.FilePattern == "" {
		d.FilePattern = `\.xml$`
	}

	pattern, err := regexp.Compile(d.FilePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid descriptor file pattern %q: %w", d.FilePattern, err)
	}
	d.pattern = pattern

	return &d, nil
}

// MatchFile reports whether a document, given by its object key or path, is accepted.
func (d *Descriptor) MatchFile(name string) bool {
	if d.pattern == nil {
		d.pattern = regexp.MustCompile(d.FilePattern)
	}
	return d.pattern.MatchString(path.Base(name))
}

// Accepts reports whether an element name may be imported.
func (d *Descriptor) Accepts(element string) bool {
	return len(d.Elements) == 0 || slices.Contains(d.Elements, element)
}

// Identity returns the handler identity for an element under this descriptor.
func (d *Descriptor) Identity(element string) Identity {
	return Identity{Namespace: d.ContextNamespace, Element: element}
}
