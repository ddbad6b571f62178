package otface

import (
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/otface/core"
)

// FindFont searches the system's font directories for a font file with
// the given name (with or without extension) and returns its path.
func FindFont(name string) (string, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "font %s not found on system", name)
	}
	trace().Debugf("found font file %s", path)
	return path, nil
}

// LoadFace locates a font by name, reads it, and parses face number
// index. The whole file is read into memory; the returned Face borrows
// that buffer, which is returned alongside for lifetime management.
func LoadFace(name string, index int) (*Face, []byte, error) {
	path, err := FindFont(name)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, core.WrapError(err, core.EMISSING, "cannot read font %s",
			filepath.Base(path))
	}
	f, err := Parse(data, index)
	if err != nil {
		return nil, nil, err
	}
	return f, data, nil
}
