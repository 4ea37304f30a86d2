package pathnavigator

import (
	"archive/tar"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readSnapshot opens a snapshot and returns entry name -> content, with
// directory entries mapped to "".
func readSnapshot(t *testing.T, path string, comp Compression) map[string]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var body io.Reader = f
	switch comp {
	case CompressGzip:
		gz, err := gzip.NewReader(f)
		require.NoError(t, err)
		defer gz.Close()
		body = gz
	case CompressZstd:
		zr, err := zstd.NewReader(f)
		require.NoError(t, err)
		defer zr.Close()
		body = zr
	}

	entries := make(map[string]string)
	tr := tar.NewReader(body)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if hdr.Typeflag == tar.TypeDir {
			entries[hdr.Name] = ""
			continue
		}
		content, err := io.ReadAll(tr)
		require.NoError(t, err)
		entries[hdr.Name] = string(content)
	}
	return entries
}

func TestSnapshot(t *testing.T) {
	nav, _ := seedTree(t)
	out := filepath.Join(t.TempDir(), "snap.tar")

	info, err := nav.Snapshot(context.Background(), out, CompressNone)
	require.NoError(t, err)
	assert.Equal(t, out, info.Output)
	assert.Equal(t, 3, info.Files)
	assert.Equal(t, int64(3*len("content")), info.Bytes)

	entries := readSnapshot(t, out, CompressNone)
	require.Len(t, entries, 6)
	for _, dir := range []string{"a-b/", "data/", "data/raw files/"} {
		assert.Contains(t, entries, dir)
	}
	for _, file := range []string{"a.b", "notes.txt", "data/report.csv"} {
		assert.Equal(t, "content", entries[file])
	}
}

func TestSnapshotCompressed(t *testing.T) {
	for _, comp := range []Compression{CompressGzip, CompressZstd} {
		t.Run(comp.String(), func(t *testing.T) {
			nav, _ := seedTree(t)
			out := filepath.Join(t.TempDir(), "snap.tar."+comp.String())

			info, err := nav.Snapshot(context.Background(), out, comp)
			require.NoError(t, err)
			assert.Equal(t, 3, info.Files)

			entries := readSnapshot(t, out, comp)
			assert.Equal(t, "content", entries["data/report.csv"])
		})
	}
}

func TestSnapshotSubfolder(t *testing.T) {
	nav, _ := seedTree(t)
	out := filepath.Join(t.TempDir(), "data.tar")

	data := nav.Resolve("data").Folder
	require.NotNil(t, data)

	info, err := data.Snapshot(context.Background(), out, CompressNone)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Files)

	entries := readSnapshot(t, out, CompressNone)
	assert.Contains(t, entries, "report.csv")
	assert.Contains(t, entries, "raw files/")
}

func TestSnapshotCanceled(t *testing.T) {
	nav, _ := seedTree(t)
	out := filepath.Join(t.TempDir(), "snap.tar")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := nav.Snapshot(ctx, out, CompressNone)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressNone.String())
	assert.Equal(t, "gzip", CompressGzip.String())
	assert.Equal(t, "zstd", CompressZstd.String())
}
