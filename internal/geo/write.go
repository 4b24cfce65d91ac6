package geo

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// WriteOptions control how a feature collection is rendered to disk.
type WriteOptions struct {
	// Compact emits a minified single-line document instead of pretty JSON.
	Compact bool
	// Indent is the number of spaces per level for pretty output.
	// Zero selects the default of 4.
	Indent int
}

// Encode renders the collection as UTF-8 JSON. Non-ASCII text (German
// addresses, umlauts in column values) is written as is, not escaped.
func Encode(fc FeatureCollection, opts WriteOptions) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if !opts.Compact {
		indent := opts.Indent
		if indent <= 0 {
			indent = 4
		}
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(fc); err != nil {
		return nil, err
	}

	data := buf.Bytes()
	if opts.Compact {
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)

		minified, err := m.Bytes("application/json", data)
		if err != nil {
			return nil, err
		}
		data = minified
	}

	return data, nil
}

// Save marshals the feature collection and writes it to path.
// The document goes to a temporary file in the destination directory first
// and is renamed into place, so a failed run never leaves a truncated file.
func Save(path string, fc FeatureCollection, opts WriteOptions) error {
	data, err := Encode(fc, opts)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}
