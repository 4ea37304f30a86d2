package pathnavigator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// The persistence contract is a flat {originalName: pathString} document.
// Save refuses to clobber an existing file unless overwrite is set; Load
// re-canonicalizes names on the way in, with overwrite applying to registry
// entries instead of the file.

// SaveJSON writes the registry to path as indented JSON.
func (r *Registry) SaveJSON(path string, overwrite bool) error {
	data, err := sonic.MarshalIndent(r.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode shortcuts: %w", err)
	}
	return r.writeFile(path, data, overwrite)
}

// LoadJSON merges the shortcuts stored at path into the registry.
func (r *Registry) LoadJSON(path string, overwrite bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load shortcuts: %w", err)
	}
	var m map[string]string
	if err := sonic.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return r.Import(m, overwrite)
}

// SaveYAML writes the registry to path as a YAML mapping.
func (r *Registry) SaveYAML(path string, overwrite bool) error {
	data, err := yaml.Marshal(r.Export())
	if err != nil {
		return fmt.Errorf("encode shortcuts: %w", err)
	}
	return r.writeFile(path, data, overwrite)
}

// LoadYAML merges the shortcuts stored at path into the registry.
func (r *Registry) LoadYAML(path string, overwrite bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load shortcuts: %w", err)
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return r.Import(m, overwrite)
}

// SaveTOML writes the registry to path as a TOML table.
func (r *Registry) SaveTOML(path string, overwrite bool) error {
	data, err := toml.Marshal(r.Export())
	if err != nil {
		return fmt.Errorf("encode shortcuts: %w", err)
	}
	return r.writeFile(path, data, overwrite)
}

// LoadTOML merges the shortcuts stored at path into the registry.
func (r *Registry) LoadTOML(path string, overwrite bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load shortcuts: %w", err)
	}
	var m map[string]string
	if err := toml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return r.Import(m, overwrite)
}

func (r *Registry) writeFile(path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("save shortcuts: %s exists", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("save shortcuts: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save shortcuts: %w", err)
	}
	r.log.Debug("shortcuts saved", zap.String("path", path), zap.Int("count", len(r.entries)))
	return nil
}
