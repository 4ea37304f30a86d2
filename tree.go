package pathnavigator

import (
	"fmt"
	"io"
	"strings"
)

// TreeOptions controls Tree rendering. The zero value renders the whole
// subtree, files included, capped at defaultTreeLines lines.
type TreeOptions struct {
	// MaxLevel bounds rendering depth. Non-positive means unlimited.
	MaxLevel int
	// DirsOnly omits files.
	DirsOnly bool
	// LineLimit caps the number of entry lines. Zero means the default.
	LineLimit int
	// PerLevelLimit caps entries rendered per directory, subfolders and
	// files counted separately. Zero means unlimited.
	PerLevelLimit int
}

const defaultTreeLines = 1000

const (
	treeSpace  = "    "
	treeBranch = "│   "
	treeTee    = "├── "
	treeLast   = "└── "
)

// Tree writes a box-drawing rendering of this folder's tracked subtree,
// subfolders before files, using original entry names. A summary line with
// directory and file counts closes the output; truncation markers flag
// anything the limits cut off.
func (f *Folder) Tree(w io.Writer, opts TreeOptions) error {
	r := &treeRender{
		lineLimit:     opts.LineLimit,
		perLevelLimit: opts.PerLevelLimit,
		dirsOnly:      opts.DirsOnly,
	}
	if r.lineLimit <= 0 {
		r.lineLimit = defaultTreeLines
	}
	maxLevel := opts.MaxLevel
	if maxLevel <= 0 {
		maxLevel = -1
	}

	r.b.WriteString(f.name)
	r.b.WriteByte('\n')
	r.walk(f, "", maxLevel)
	if r.truncated {
		fmt.Fprintf(&r.b, "...line limit %d reached\n", r.lineLimit)
	}
	fmt.Fprintf(&r.b, "\n%d directories", r.dirs)
	if r.files > 0 {
		fmt.Fprintf(&r.b, ", %d files", r.files)
	}
	r.b.WriteByte('\n')

	_, err := io.WriteString(w, r.b.String())
	return err
}

type treeRender struct {
	b             strings.Builder
	lines         int
	lineLimit     int
	perLevelLimit int
	dirsOnly      bool
	dirs          int
	files         int
	truncated     bool
}

func (r *treeRender) line(s string) bool {
	if r.lines >= r.lineLimit {
		r.truncated = true
		return false
	}
	r.b.WriteString(s)
	r.b.WriteByte('\n')
	r.lines++
	return true
}

func (r *treeRender) walk(f *Folder, prefix string, level int) {
	if level == 0 || r.truncated {
		return
	}
	folders, files := f.List()
	if r.dirsOnly {
		files = nil
	}

	total := len(folders) + len(files)
	for i, c := range folders {
		pointer, extension := treeTee, treeBranch
		if i == total-1 {
			pointer, extension = treeLast, treeSpace
		}
		if r.perLevelLimit > 0 && i >= r.perLevelLimit {
			if i == r.perLevelLimit {
				r.line(prefix + pointer + fmt.Sprintf("...limit reached (total: %d subfolders)", len(folders)))
			}
			continue
		}
		if !r.line(prefix + pointer + c.Name) {
			return
		}
		r.dirs++
		if sub, ok := f.subs[c.Key]; ok {
			r.walk(sub, prefix+extension, level-1)
		}
	}
	for i, c := range files {
		pointer := treeTee
		if len(folders)+i == total-1 {
			pointer = treeLast
		}
		if r.perLevelLimit > 0 && i >= r.perLevelLimit {
			if i == r.perLevelLimit {
				r.line(prefix + pointer + fmt.Sprintf("...limit reached (total: %d files)", len(files)))
			}
			continue
		}
		if !r.line(prefix + pointer + c.Name) {
			return
		}
		r.files++
	}
}
