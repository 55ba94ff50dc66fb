// Package discover finds ROM images in a directory.
package discover

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
)

var DefaultExtensions = []string{"smc", "sfc", "nes", "gen", "md", "gb", "gba"}

type Entry struct {
	Name string
	Size int64
}

// List returns the regular files in dir whose extension is one of exts,
// sorted by name. Extension matching ignores case.
func List(dir string, exts []string) ([]Entry, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read rom dir: %w", err)
	}
	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		want[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}
	out := make([]Entry, 0, len(ents))
	for _, de := range ents {
		if !de.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(de.Name()), "."))
		if !want[ext] {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{Name: de.Name(), Size: info.Size()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Fingerprint returns a short BLAKE2b-256 digest of the file contents, used
// to tell ROM dumps with the same name apart.
func Fingerprint(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open rom: %w", err)
	}
	defer fh.Close()
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, fh); err != nil {
		return "", fmt.Errorf("hash rom: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)[:6]), nil
}
