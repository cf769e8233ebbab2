package metadata

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	gerrors "github.com/cppwinrt-go/cppwinrt/internal/errors"
)

// LoadCache walks inputs and references (each a metadata database file or a
// directory of them) and merges them into one Cache. Namespaces discovered
// under inputs are projectable; namespaces discovered only under references
// are resolvable but excluded from ProjectableNamespaces.
func LoadCache(inputs, references []string) (*Cache, error) {
	c := newCache()

	if err := loadPaths(c, inputs, true); err != nil {
		return nil, err
	}
	if err := loadPaths(c, references, false); err != nil {
		return nil, err
	}
	return c, nil
}

func loadPaths(c *Cache, paths []string, projectable bool) error {
	for _, p := range paths {
		files, err := expandPath(p)
		if err != nil {
			return gerrors.Wrap(gerrors.Metadata, "failed to enumerate "+p, err)
		}
		for _, f := range files {
			if err := loadFile(c, f, projectable); err != nil {
				return err
			}
		}
	}
	return nil
}

// expandPath returns f itself if it is a file, or every regular file
// directly and transitively under it if it is a directory.
func expandPath(p string) ([]string, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{p}, nil
	}

	var files []string
	err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func loadFile(c *Cache, path string, projectable bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return gerrors.Wrap(gerrors.Metadata, "failed to read metadata file "+path, err)
	}

	decoded, err := maybeDecompress(raw)
	if err != nil {
		return gerrors.Wrap(gerrors.Metadata, "failed to decompress metadata file "+path, err)
	}

	var doc document
	if err := json.Unmarshal(decoded, &doc); err != nil {
		return gerrors.Wrap(gerrors.Metadata, "failed to parse metadata file "+path, err)
	}

	c.databases = append(c.databases, path)
	for ns, bundle := range doc.Namespaces {
		existing, ok := c.namespaces[ns]
		if !ok {
			c.namespaces[ns] = bundle
		} else {
			mergeBundle(existing, bundle)
		}
		if projectable {
			c.projectable[ns] = true
		} else if _, seen := c.projectable[ns]; !seen {
			c.projectable[ns] = false
		}
	}
	return nil
}

// maybeDecompress transparently handles both gzip-compressed and plain
// JSON metadata files, since -input/-reference accept either.
func maybeDecompress(raw []byte) ([]byte, error) {
	if len(raw) >= 2 && raw[0] == 0x1f && raw[1] == 0x8b {
		r, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	}
	return raw, nil
}

func mergeBundle(dst, src *Members) {
	dst.Enums = append(dst.Enums, src.Enums...)
	dst.Interfaces = append(dst.Interfaces, src.Interfaces...)
	dst.Classes = append(dst.Classes, src.Classes...)
	dst.Structs = append(dst.Structs, src.Structs...)
	dst.Delegates = append(dst.Delegates, src.Delegates...)
	dst.Contracts = append(dst.Contracts, src.Contracts...)
}
