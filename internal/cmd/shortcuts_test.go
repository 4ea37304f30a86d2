package cmd

import (
	"testing"

	pathnavigator "github.com/philip928lin/PathNavigator"
)

func TestRegistryFormat(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		explicit string
		expected string
		wantErr  bool
	}{
		{
			name:     "json extension",
			path:     "shortcuts.json",
			expected: formatJSON,
		},
		{
			name:     "yaml extension",
			path:     "shortcuts.yaml",
			expected: formatYAML,
		},
		{
			name:     "yml extension",
			path:     "shortcuts.yml",
			expected: formatYAML,
		},
		{
			name:     "toml extension",
			path:     "shortcuts.toml",
			expected: formatTOML,
		},
		{
			name:     "no extension defaults to json",
			path:     "shortcuts",
			expected: formatJSON,
		},
		{
			name:     "uppercase extension",
			path:     "SHORTCUTS.TOML",
			expected: formatTOML,
		},
		{
			name:     "explicit format wins over extension",
			path:     "shortcuts.json",
			explicit: "yaml",
			expected: formatYAML,
		},
		{
			name:     "unknown explicit format",
			path:     "shortcuts.json",
			explicit: "xml",
			wantErr:  true,
		},
		{
			name:    "unknown extension",
			path:    "shortcuts.ini",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := registryFormat(tt.path, tt.explicit)
			if tt.wantErr {
				if err == nil {
					t.Errorf("registryFormat(%q, %q) expected error, got %q", tt.path, tt.explicit, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("registryFormat(%q, %q) unexpected error: %v", tt.path, tt.explicit, err)
			}
			if result != tt.expected {
				t.Errorf("registryFormat(%q, %q) = %q, expected %q", tt.path, tt.explicit, result, tt.expected)
			}
		})
	}
}

func TestParseImportMode(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		expected pathnavigator.ImportMode
		wantErr  bool
	}{
		{
			name:     "empty means all",
			mode:     "",
			expected: pathnavigator.ImportAll,
		},
		{
			name:     "all",
			mode:     "all",
			expected: pathnavigator.ImportAll,
		},
		{
			name:     "files",
			mode:     "files",
			expected: pathnavigator.ImportFiles,
		},
		{
			name:     "folders",
			mode:     "folders",
			expected: pathnavigator.ImportFolders,
		},
		{
			name:     "dirs alias",
			mode:     "dirs",
			expected: pathnavigator.ImportFolders,
		},
		{
			name:    "unknown mode",
			mode:    "symlinks",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseImportMode(tt.mode)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseImportMode(%q) expected error, got %v", tt.mode, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseImportMode(%q) unexpected error: %v", tt.mode, err)
			}
			if result != tt.expected {
				t.Errorf("parseImportMode(%q) = %v, expected %v", tt.mode, result, tt.expected)
			}
		})
	}
}
