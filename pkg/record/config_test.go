package record

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		data string
		want *Config
	}{
		{
			name: "empty uses defaults",
			data: "",
			want: DefaultConfig(),
		},
		{
			name: "custom names",
			data: "fields:\n  id-field: key\n  content-field: value\n  children-field: kids\noption-format: YAML\noption-indent: 4\n",
			want: &Config{
				Fields: FieldNames{ID: "key", Content: "value", Children: "kids"},
				Format: "YAML",
				Indent: 4,
			},
		},
		{
			name: "partial names",
			data: "fields:\n  children-field: nodes\n",
			want: &Config{
				Fields: FieldNames{ID: "id", Content: "content", Children: "nodes"},
				Format: DefaultFormat,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.data))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConfigRejectsDuplicateNames(t *testing.T) {
	_, err := ParseConfig([]byte("fields:\n  id-field: content\n"))
	if !errors.Is(err, ErrBadFieldNames) {
		t.Errorf("Expected ErrBadFieldNames, got %v", err)
	}
}

func TestParseConfigRejectsBadYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("fields: [")); err == nil {
		t.Errorf("Expected a YAML error")
	}
}

func TestLoadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(filename, []byte("fields:\n  id-field: name\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	config, err := LoadConfig(filename)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if config.Fields.ID != "name" {
		t.Errorf("Expected id field 'name', got %q", config.Fields.ID)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
