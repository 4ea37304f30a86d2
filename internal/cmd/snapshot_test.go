package cmd

import (
	"testing"

	pathnavigator "github.com/philip928lin/PathNavigator"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected pathnavigator.Compression
		wantErr  bool
	}{
		{
			name:     "empty means none",
			value:    "",
			expected: pathnavigator.CompressNone,
		},
		{
			name:     "none",
			value:    "none",
			expected: pathnavigator.CompressNone,
		},
		{
			name:     "gzip",
			value:    "gzip",
			expected: pathnavigator.CompressGzip,
		},
		{
			name:     "gz alias",
			value:    "gz",
			expected: pathnavigator.CompressGzip,
		},
		{
			name:     "zstd",
			value:    "zstd",
			expected: pathnavigator.CompressZstd,
		},
		{
			name:     "zst alias",
			value:    "zst",
			expected: pathnavigator.CompressZstd,
		},
		{
			name:    "unknown codec",
			value:   "brotli",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseCompression(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseCompression(%q) expected error, got %v", tt.value, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCompression(%q) unexpected error: %v", tt.value, err)
			}
			if result != tt.expected {
				t.Errorf("parseCompression(%q) = %v, expected %v", tt.value, result, tt.expected)
			}
		})
	}
}
