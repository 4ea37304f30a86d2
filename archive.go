package pathnavigator

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression selects the snapshot compression layer.
type Compression int

const (
	CompressNone Compression = iota
	CompressGzip
	CompressZstd
)

func (c Compression) String() string {
	switch c {
	case CompressGzip:
		return "gzip"
	case CompressZstd:
		return "zstd"
	default:
		return "none"
	}
}

// SnapshotInfo summarizes a written snapshot.
type SnapshotInfo struct {
	Output string
	Files  int
	Bytes  int64 // uncompressed file bytes written
}

// Snapshot tars the filesystem subtree below this folder into output,
// optionally compressed. Entry names are relative to the folder; symlinks
// and other irregular entries are skipped. The walk honors ctx
// cancellation.
func (f *Folder) Snapshot(ctx context.Context, output string, comp Compression) (SnapshotInfo, error) {
	src := f.Path()
	out, err := os.Create(output)
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("create %s: %w", output, err)
	}
	defer out.Close()

	var body io.Writer = out
	var finish func() error
	switch comp {
	case CompressGzip:
		gz := gzip.NewWriter(out)
		body, finish = gz, gz.Close
	case CompressZstd:
		zw, zerr := zstd.NewWriter(out)
		if zerr != nil {
			return SnapshotInfo{}, fmt.Errorf("zstd writer: %w", zerr)
		}
		body, finish = zw, zw.Close
	}
	tw := tar.NewWriter(body)

	// fastwalk runs the callback concurrently; the tar stream and the
	// counters share one lock.
	var mu sync.Mutex
	var files int
	var written int64
	conf := fastwalk.Config{Follow: false}

	err = fastwalk.Walk(&conf, src, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil || p == src {
			return nil
		}
		if !d.IsDir() && !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return nil
		}
		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return nil
		}
		header.Name = rel
		if d.IsDir() {
			header.Name += "/"
		}

		var file *os.File
		if !d.IsDir() {
			// Open before the header goes out so a vanished file skips
			// cleanly instead of leaving a short tar entry.
			if file, err = os.Open(p); err != nil {
				return nil
			}
			defer file.Close()
		}

		mu.Lock()
		defer mu.Unlock()
		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if file == nil {
			return nil
		}
		n, err := io.Copy(tw, file)
		if err != nil {
			return err
		}
		written += n
		files++
		return nil
	})
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("snapshot %s: %w", src, err)
	}

	if err := tw.Close(); err != nil {
		return SnapshotInfo{}, fmt.Errorf("finalize snapshot: %w", err)
	}
	if finish != nil {
		if err := finish(); err != nil {
			return SnapshotInfo{}, fmt.Errorf("finalize snapshot: %w", err)
		}
	}
	return SnapshotInfo{Output: output, Files: files, Bytes: written}, nil
}
