package trove

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when an import file does not exist.
var ErrNotFound = errors.New("file not found")

// ErrParse is returned when a file (or edited entry) is not valid JSON.
var ErrParse = errors.New("invalid JSON")

// Load reads the trove file at path. A missing or unparsable file yields
// an empty trove; load never fails the caller. Top-level values that are
// not objects, or objects that do not decode to an entry, are dropped.
// The second return value is the number of dropped records, so callers
// can log them.
func Load(path string) (*Trove, int) {
	f, err := os.Open(path)
	if err != nil {
		return New(), 0
	}
	defer f.Close()

	t, dropped, err := decodeOrdered(f)
	if err != nil {
		return New(), 0
	}
	return t, dropped
}

// Save serializes the full trove to path, creating parent directories as
// needed. The write goes to a temp file in the same directory followed
// by a rename, so a crash mid-write never corrupts a readable trove.
func (t *Trove) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating trove directory: %w", err)
	}

	data, err := t.encode()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".trove-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing trove: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

// ImportMerge reads a whole trove from path and merges it into t.
// Incoming entries overwrite same-name entries in place; new names are
// appended in import-file order. On any error no mutation occurs.
// Returns the number of entries read from the import file.
func (t *Trove) ImportMerge(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	in, _, err := decodeOrdered(f)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrParse, path)
	}

	for _, name := range in.order {
		t.Set(name, in.entries[name])
	}
	return in.Len(), nil
}

// ExportAll writes the entire trove, unfiltered, to path in the same
// serialized form as the store file itself.
func (t *Trove) ExportAll(path string) error {
	data, err := t.encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// encode serializes the trove as an indented JSON object with keys in
// insertion order. encoding/json sorts map keys, so the object is
// assembled by hand around per-entry marshalling.
func (t *Trove) encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range t.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  ")
		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("encoding name %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteString(": ")
		val, err := json.MarshalIndent(t.entries[name], "  ", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding entry %q: %w", name, err)
		}
		buf.Write(val)
	}
	if len(t.order) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// decodeOrdered reads a JSON object of entries, keeping key order.
// json.Unmarshal into a map would lose it, so the object is walked with
// a token decoder.
func decodeOrdered(r io.Reader) (*Trove, int, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, 0, fmt.Errorf("reading trove: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, 0, fmt.Errorf("top-level value is not an object")
	}

	t := New()
	dropped := 0
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, 0, fmt.Errorf("reading entry name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, 0, fmt.Errorf("entry name is not a string")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, 0, fmt.Errorf("reading entry %q: %w", name, err)
		}

		e, ok := decodeEntry(raw)
		if !ok {
			dropped++
			continue
		}
		t.Set(name, e)
	}

	if _, err := dec.Token(); err != nil {
		return nil, 0, fmt.Errorf("reading trove: %w", err)
	}
	return t, dropped, nil
}

// decodeEntry validates a raw record at the deserialization boundary.
// Only JSON objects whose fields decode cleanly become entries.
func decodeEntry(raw json.RawMessage) (Entry, bool) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Entry{}, false
	}
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return Entry{}, false
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return e, true
}

// ParseEntry decodes a single edited entry record. Used by the editor
// bridge to validate post-edit content before it replaces a stored
// entry; a failure here must leave the trove untouched.
func ParseEntry(data []byte) (Entry, error) {
	e, ok := decodeEntry(data)
	if !ok {
		return Entry{}, fmt.Errorf("%w: not a valid entry record", ErrParse)
	}
	return e, nil
}
