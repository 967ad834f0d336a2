package record

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultFormat = "JSON"

// FieldNames maps the parts of a node onto record keys.
type FieldNames struct {
	ID       string `yaml:"id-field,omitempty"`
	Content  string `yaml:"content-field,omitempty"`
	Children string `yaml:"children-field,omitempty"`
}

type Config struct {
	Fields FieldNames `yaml:"fields,omitempty"`
	Format string     `yaml:"option-format,omitempty"`
	Indent int        `yaml:"option-indent,omitempty"`
}

func DefaultFieldNames() FieldNames {
	return FieldNames{ID: "id", Content: "content", Children: "children"}
}

func DefaultConfig() *Config {
	return &Config{Fields: DefaultFieldNames(), Format: DefaultFormat}
}

// withDefaults fills in any empty name with its default.
func (f FieldNames) withDefaults() FieldNames {
	defaults := DefaultFieldNames()
	if f.ID == "" {
		f.ID = defaults.ID
	}
	if f.Content == "" {
		f.Content = defaults.Content
	}
	if f.Children == "" {
		f.Children = defaults.Children
	}
	return f
}

// Validate rejects mappings where two parts share a key.
func (f FieldNames) Validate() error {
	if f.ID == "" || f.Content == "" || f.Children == "" {
		return fmt.Errorf("%w: empty name in %+v", ErrBadFieldNames, f)
	}
	if f.ID == f.Content || f.ID == f.Children || f.Content == f.Children {
		return fmt.Errorf("%w: duplicate name in %+v", ErrBadFieldNames, f)
	}
	return nil
}

// resolve returns a copy of c with defaults filled in, rejecting field
// names that would collide. A nil config resolves to DefaultConfig.
func (c *Config) resolve() (*Config, error) {
	if c == nil {
		return DefaultConfig(), nil
	}
	resolved := *c
	resolved.Fields = resolved.Fields.withDefaults()
	if resolved.Format == "" {
		resolved.Format = DefaultFormat
	}
	if err := resolved.Fields.Validate(); err != nil {
		return nil, err
	}
	return &resolved, nil
}

// LoadConfig reads a YAML config file. Missing settings take their
// defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return config.resolve()
}
