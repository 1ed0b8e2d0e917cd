// Package trove implements the command store: an insertion-ordered
// collection of named shell commands persisted as a single JSON file.
package trove

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Entry is one stored command. The name is not part of the entry itself;
// it is the key under which the entry lives in the trove.
type Entry struct {
	Tags        []string `json:"tags"`
	Command     string   `json:"command"`
	Description string   `json:"description"`
}

// Record carries an entry together with its name, for list output.
type Record struct {
	Name        string   `json:"name"`
	Tags        []string `json:"tags"`
	Command     string   `json:"command"`
	Description string   `json:"description"`
}

// Trove is an insertion-ordered mapping from command name to Entry.
// Iteration order is the order in which names were first added; this
// order is preserved through save/load round trips and is part of the
// list contract.
type Trove struct {
	entries map[string]Entry
	order   []string
}

// New returns an empty trove.
func New() *Trove {
	return &Trove{entries: make(map[string]Entry)}
}

// Len returns the number of entries.
func (t *Trove) Len() int {
	return len(t.order)
}

// Names returns the entry names in insertion order.
func (t *Trove) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Set inserts or overwrites the entry under name. An existing name keeps
// its position; a new name is appended.
func (t *Trove) Set(name string, e Entry) {
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if _, ok := t.entries[name]; !ok {
		t.order = append(t.order, name)
	}
	t.entries[name] = e
}

// Add inserts or overwrites the entry under name. Last write wins;
// there is no uniqueness error.
func (t *Trove) Add(name string, tags []string, command, description string) {
	t.Set(name, Entry{Tags: tags, Command: command, Description: description})
}

// Get returns the entry under name, if present.
func (t *Trove) Get(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Remove deletes the entry under name. It reports whether an entry was
// actually removed; removing an absent name is a no-op.
func (t *Trove) Remove(name string) bool {
	if _, ok := t.entries[name]; !ok {
		return false
	}
	delete(t.entries, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// RemoveNamespace deletes every entry whose name starts with prefix
// (case-sensitive). Returns the number of entries removed.
func (t *Trove) RemoveNamespace(prefix string) int {
	removed := 0
	kept := t.order[:0]
	for _, name := range t.order {
		if strings.HasPrefix(name, prefix) {
			delete(t.entries, name)
			removed++
			continue
		}
		kept = append(kept, name)
	}
	t.order = kept
	return removed
}

// Records returns entries as records in insertion order. A non-empty
// filter keeps only entries where the filter appears as a
// case-insensitive substring of the name or of any tag.
func (t *Trove) Records(filter string) []Record {
	records := make([]Record, 0, len(t.order))
	for _, name := range t.order {
		e := t.entries[name]
		if filter != "" && !matches(name, e.Tags, filter) {
			continue
		}
		tags := make([]string, len(e.Tags))
		copy(tags, e.Tags)
		records = append(records, Record{
			Name:        name,
			Tags:        tags,
			Command:     e.Command,
			Description: e.Description,
		})
	}
	return records
}

// ListJSON returns the filtered records as an indented JSON array.
func (t *Trove) ListJSON(filter string) (string, error) {
	data, err := json.MarshalIndent(t.Records(filter), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding records: %w", err)
	}
	return string(data), nil
}

// ListSimple returns the filtered entry names, one per line.
func (t *Trove) ListSimple(filter string) string {
	records := t.Records(filter)
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return strings.Join(names, "\n")
}

func matches(name string, tags []string, filter string) bool {
	f := strings.ToLower(filter)
	if strings.Contains(strings.ToLower(name), f) {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), f) {
			return true
		}
	}
	return false
}
