package testcard

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/johanns/testcard/pattern"
	"github.com/johanns/testcard/rasterfmt"
)

// render produces the encoded bytes and digest for one plan entry.
func (t *TestCard) render(j job) ([]byte, string, error) {
	desc := j.desc
	if t.Font != "" {
		desc.FontPath = t.Font
	}

	m, err := pattern.Generate(desc)
	if err != nil {
		return nil, "", err
	}

	f, err := rasterfmt.ParsePath(j.filename)
	if err != nil {
		return nil, "", err
	}

	var o *rasterfmt.Options
	if j.quality > 0 {
		o = &rasterfmt.Options{Quality: j.quality}
	}

	h := sha1.New()
	b := new(bytes.Buffer)
	if err := rasterfmt.Encode(io.MultiWriter(b, h), m, f, o); err != nil {
		return nil, "", err
	}

	return b.Bytes(), fmt.Sprintf("%X", h.Sum(nil)), nil
}

// Generate renders every plan entry into dir and catalogues the
// result. Images are produced one at a time; each buffer is confined
// to its own generation.
func (t *TestCard) Generate(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, j := range plan {
		b, sha, err := t.render(j)
		if err != nil {
			return fmt.Errorf("%s: %w", j.filename, err)
		}

		if err := os.WriteFile(filepath.Join(dir, j.filename), b, 0644); err != nil {
			return err
		}

		f, err := rasterfmt.ParsePath(j.filename)
		if err != nil {
			return err
		}

		if err := t.db.putEntry(Entry{
			Filename: j.filename,
			Pattern:  j.desc.Kind.String(),
			Width:    j.desc.Width,
			Height:   j.desc.Height,
			Format:   f.String(),
			Bytes:    int64(len(b)),
			SHA1:     sha,
		}); err != nil {
			return err
		}

		t.logger.Printf("wrote %s (%s, %dx%d, %d bytes)\n", j.filename, j.desc.Kind, j.desc.Width, j.desc.Height, len(b))
	}

	return nil
}

// Verify re-renders the plan in memory and compares every digest with
// the catalogue.
func (t *TestCard) Verify() error {
	var mismatches int
	for _, j := range plan {
		_, sha, err := t.render(j)
		if err != nil {
			return fmt.Errorf("%s: %w", j.filename, err)
		}

		want, err := t.db.FindSHA1(j.filename)
		if err != nil {
			return err
		}

		switch {
		case want == "":
			t.logger.Printf("%s is not catalogued\n", j.filename)
			mismatches++
		case want != sha:
			t.logger.Printf("%s digest mismatch: have %s, want %s\n", j.filename, sha, want)
			mismatches++
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%d of %d images do not match the catalogue", mismatches, len(plan))
	}

	return nil
}

// Report writes a summary of the catalogue to w, one line per file.
func (t *TestCard) Report(w io.Writer) error {
	entries, err := t.db.Entries()
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Fprintf(w, "  - %-30s %-12s %3dx%-3d (%6.2f KB)\n",
			e.Filename, e.Pattern, e.Width, e.Height, float64(e.Bytes)/1024)
	}
	fmt.Fprintf(w, "%d images catalogued\n", len(entries))

	return nil
}
