package pathnavigator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"
)

// Info describes one tracked entry: identity, size, mode, timestamps, and
// the detected MIME type for files.
type Info struct {
	Name      string
	Key       string
	Path      string
	Size      int64
	SizeHuman string
	Mode      fs.FileMode
	Modified  time.Time
	IsDir     bool
	MIME      string // empty for directories
}

// Describe stats the child tracked under key. A miss triggers one refresh
// and retry before failing with ErrNotFound. MIME detection reads the file
// head; detection failures leave MIME empty rather than failing the call.
func (f *Folder) Describe(key string) (Info, error) {
	key, ent := f.resolveKey(key)
	if !ent.Found() {
		if err := f.nav.Refresh(); err != nil {
			return Info{}, fmt.Errorf("refresh: %w", err)
		}
		key, ent = f.resolveKey(key)
	}

	var path string
	switch ent.Kind {
	case KindFolder:
		path = ent.Folder.Path()
	case KindFile:
		path = ent.Path
	default:
		return Info{}, fmt.Errorf("%q in %s: %w", key, f.Path(), ErrNotFound)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("stat %s: %w", path, err)
	}

	info := Info{
		Name:      f.nav.canon.OriginalOf(key),
		Key:       key,
		Path:      path,
		Size:      stat.Size(),
		SizeHuman: FormatBytes(stat.Size()),
		Mode:      stat.Mode(),
		Modified:  stat.ModTime(),
		IsDir:     stat.IsDir(),
	}
	if !stat.IsDir() {
		if mtype, err := mimetype.DetectFile(path); err == nil {
			info.MIME = mtype.String()
		}
	}
	return info, nil
}

// TotalSize sums the sizes of every file below this folder and returns the
// byte total with the file count. The scan runs on the filesystem, not the
// tracked tree, so untracked entries count too.
func (f *Folder) TotalSize(ctx context.Context) (int64, int, error) {
	var mu sync.Mutex
	var total int64
	var count int

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, f.Path(), func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		mu.Lock()
		total += info.Size()
		count++
		mu.Unlock()
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("size %s: %w", f.Path(), err)
	}
	return total, count, nil
}

// FormatBytes renders a byte count in human-readable form.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), units[exp])
}
