package pathnavigator

// Kind tags the outcome of a Resolve lookup.
type Kind int

const (
	// KindNotFound means the key matched neither a subfolder nor a file.
	KindNotFound Kind = iota
	// KindFolder means the key matched a tracked subfolder.
	KindFolder
	// KindFile means the key matched a tracked file.
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "folder"
	case KindFile:
		return "file"
	default:
		return "not found"
	}
}

// Entry is the tagged result of a Resolve lookup. The payload matching Kind
// is set; the other is zero.
type Entry struct {
	Kind   Kind
	Folder *Folder // set when Kind == KindFolder
	Path   string  // absolute file path, set when Kind == KindFile
}

// Found reports whether the lookup matched a tracked folder or file.
func (e Entry) Found() bool { return e.Kind != KindNotFound }

// Child describes one tracked directory entry for display: the original
// filesystem name alongside the canonical key used to resolve it.
type Child struct {
	Name  string // original entry name
	Key   string // canonical key, equal to Name when no rewrite was needed
	IsDir bool
}
