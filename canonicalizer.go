package pathnavigator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// privatePrefix reserves a namespace for internal bookkeeping. Names that
// start with it are rejected, never rewritten.
const privatePrefix = "_pn_"

// goKeywords are reserved for both component kinds.
var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer",
	"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
	"interface", "map", "package", "range", "return", "select", "struct",
	"switch", "type", "var",
}

// nodeReserved are the folder-side accessor names. Canonical keys must not
// shadow them. Comparison is exact, so capitalized variants stay usable.
var nodeReserved = []string{
	"resolve", "list", "ls", "makedir", "mkdir", "remove", "delete",
	"exists", "path", "join", "get", "set", "tree", "chdir", "name",
	"parent", "subs", "files", "sc", "shortcuts", "reload", "refresh",
	"walk", "root", "nav",
}

// registryReserved are the shortcut-registry accessor names.
var registryReserved = []string{
	"add", "remove", "clear", "ls", "list", "get", "set", "export",
	"import", "load", "save", "entries", "names",
}

// Canonicalizer converts arbitrary entry names into identifier-safe,
// non-reserved keys and remembers every original so the conversion can be
// reversed. Two distinct originals never share a key: the later one is
// disambiguated with a numeric suffix. Mappings accumulate for the lifetime
// of the owning component and are never pruned.
type Canonicalizer struct {
	toCanonical map[string]string
	toOriginal  map[string]string
	reserved    map[string]struct{}
}

func newCanonicalizer(reservedNames []string) *Canonicalizer {
	reserved := make(map[string]struct{}, len(goKeywords)+len(reservedNames))
	for _, w := range goKeywords {
		reserved[w] = struct{}{}
	}
	for _, w := range reservedNames {
		reserved[w] = struct{}{}
	}
	return &Canonicalizer{
		toCanonical: make(map[string]string),
		toOriginal:  make(map[string]string),
		reserved:    reserved,
	}
}

func newNodeCanonicalizer() *Canonicalizer     { return newCanonicalizer(nodeReserved) }
func newRegistryCanonicalizer() *Canonicalizer { return newCanonicalizer(registryReserved) }

// IsValid reports whether name is already a legal key: an identifier
// ([A-Za-z_][A-Za-z0-9_]*) that is neither reserved nor private-prefixed.
func (c *Canonicalizer) IsValid(name string) bool {
	if name == "" || strings.HasPrefix(name, privatePrefix) {
		return false
	}
	if _, ok := c.reserved[name]; ok {
		return false
	}
	for i, r := range name {
		if isWordRune(r) && !(i == 0 && r >= '0' && r <= '9') {
			continue
		}
		return false
	}
	return true
}

// Canonical returns the key for name, converting and recording it on first
// sight. Conversion replaces every non-identifier rune with an underscore,
// prefixes an underscore when the result starts with a digit, appends an
// underscore when the result lands on a reserved word, and appends the
// lowest free numeric suffix when the result is already bound to a
// different original. Repeat calls with the same original return the
// recorded key.
func (c *Canonicalizer) Canonical(name string) (string, error) {
	if name == "" {
		return "", errors.New("empty name")
	}
	if strings.HasPrefix(name, privatePrefix) {
		return "", fmt.Errorf("%q: %w", name, ErrReservedPrefix)
	}
	if key, ok := c.toCanonical[name]; ok {
		return key, nil
	}

	key := name
	if !c.IsValid(name) {
		key = rewrite(name)
		if _, ok := c.reserved[key]; ok {
			key += "_"
		}
	}

	base := key
	for n := 2; ; n++ {
		bound, taken := c.toOriginal[key]
		if !taken || bound == name {
			break
		}
		key = base + strconv.Itoa(n)
	}

	c.toCanonical[name] = key
	c.toOriginal[key] = name
	return key, nil
}

// OriginalOf returns the original name recorded for key. Unknown keys pass
// through unchanged; they are treated as already-original.
func (c *Canonicalizer) OriginalOf(key string) string {
	if orig, ok := c.toOriginal[key]; ok {
		return orig
	}
	return key
}

// keyFor maps a recorded original name to its key without converting or
// recording anything. Unknown names pass through unchanged.
func (c *Canonicalizer) keyFor(name string) string {
	if key, ok := c.toCanonical[name]; ok {
		return key
	}
	return name
}

func rewrite(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 1)
	for i, r := range name {
		if i == 0 && r >= '0' && r <= '9' {
			b.WriteByte('_')
			b.WriteRune(r)
			continue
		}
		if isWordRune(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
