package testcard

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestCatalogRoundTrip(t *testing.T) {
	db, err := NewCatalogDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	e := Entry{
		Filename: "checkerboard_64.png",
		Pattern:  "checkerboard",
		Width:    64,
		Height:   64,
		Format:   "png",
		Bytes:    123,
		SHA1:     "DA39A3EE5E6B4B0D3255BFEF95601890AFD80709",
	}
	require.NoError(t, db.putEntry(e))

	// Re-catalogue the same file, replacing the old row.
	e.Bytes = 456
	require.NoError(t, db.putEntry(e))

	entries, err := db.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, e, entries[0])

	sha, err := db.FindSHA1(e.Filename)
	require.NoError(t, err)
	assert.Equal(t, e.SHA1, sha)

	sha, err = db.FindSHA1("missing.png")
	require.NoError(t, err)
	assert.Empty(t, sha)
}

func TestPlanFilenamesUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for _, j := range plan {
		_, ok := seen[j.filename]
		assert.False(t, ok, "duplicate plan entry %s", j.filename)
		seen[j.filename] = struct{}{}
	}
}

func TestGenerateAndVerify(t *testing.T) {
	dir := t.TempDir()

	db, err := NewCatalogDB(filepath.Join(dir, "testcard.db"))
	require.NoError(t, err)
	defer db.Close()

	tc := New(db, discard())
	require.NoError(t, tc.Generate(filepath.Join(dir, "images")))

	entries, err := db.Entries()
	require.NoError(t, err)
	require.Len(t, entries, len(plan))

	for _, j := range plan {
		info, err := os.Stat(filepath.Join(dir, "images", j.filename))
		require.NoError(t, err, j.filename)
		assert.NotZero(t, info.Size(), j.filename)
	}

	require.NoError(t, tc.Verify())
}

func TestVerifyDetectsMismatch(t *testing.T) {
	dir := t.TempDir()

	db, err := NewCatalogDB(filepath.Join(dir, "testcard.db"))
	require.NoError(t, err)
	defer db.Close()

	tc := New(db, discard())
	require.NoError(t, tc.Generate(filepath.Join(dir, "images")))

	require.NoError(t, db.putEntry(Entry{
		Filename: plan[0].filename,
		Pattern:  plan[0].desc.Kind.String(),
		Width:    plan[0].desc.Width,
		Height:   plan[0].desc.Height,
		Format:   "png",
		Bytes:    1,
		SHA1:     "0000000000000000000000000000000000000000",
	}))

	assert.Error(t, tc.Verify())
}

func TestReport(t *testing.T) {
	dir := t.TempDir()

	db, err := NewCatalogDB(filepath.Join(dir, "testcard.db"))
	require.NoError(t, err)
	defer db.Close()

	tc := New(db, discard())
	require.NoError(t, tc.Generate(filepath.Join(dir, "images")))

	b := new(bytes.Buffer)
	require.NoError(t, tc.Report(b))

	out := b.String()
	assert.Contains(t, out, "checkerboard_64.png")
	assert.Contains(t, out, "qr_like.bmp")
}
