package trove

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	tr, dropped := Load(filepath.Join(t.TempDir(), "trove.json"))
	if tr.Len() != 0 {
		t.Errorf("Load() on missing file returned %d entries, want 0", tr.Len())
	}
	if dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
}

func TestLoad_UnparsableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trove.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	tr, _ := Load(path)
	if tr.Len() != 0 {
		t.Errorf("Load() on unparsable file returned %d entries, want 0", tr.Len())
	}
}

func TestLoad_DropsNonObjectRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trove.json")
	content := `{
  "good": {"tags": ["a"], "command": "ls", "description": "list"},
  "a-string": "not an entry",
  "a-number": 42,
  "a-list": ["nope"],
  "bad-shape": {"tags": "not-a-list", "command": "x", "description": ""},
  "also-good": {"tags": [], "command": "pwd", "description": ""}
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tr, dropped := Load(path)
	if tr.Len() != 2 {
		t.Errorf("Load() kept %d entries, want 2", tr.Len())
	}
	if dropped != 4 {
		t.Errorf("dropped = %d, want 4", dropped)
	}
	if _, ok := tr.Get("good"); !ok {
		t.Error("good entry missing after load")
	}
	if _, ok := tr.Get("a-string"); ok {
		t.Error("non-object record survived load")
	}
}

func TestSaveLoad_RoundTripPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "trove.json")

	tr := New()
	tr.Add("zebra", []string{"z"}, "z-cmd", "zd")
	tr.Add("apple", nil, "a-cmd", "")
	tr.Add("mango", []string{"m", "m"}, "m-cmd", "md")

	if err := tr.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, dropped := Load(path)
	if dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
	if !reflect.DeepEqual(loaded.Names(), []string{"zebra", "apple", "mango"}) {
		t.Errorf("Names() after round trip = %v, want [zebra apple mango]", loaded.Names())
	}
	e, _ := loaded.Get("mango")
	if !reflect.DeepEqual(e.Tags, []string{"m", "m"}) {
		t.Errorf("Tags = %v, want duplicate tags preserved", e.Tags)
	}
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "trove.json")

	if err := New().Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("trove file not created: %v", err)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trove.json")

	tr := New()
	tr.Add("a", nil, "cmd", "")
	if err := tr.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "trove.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory contents = %v, want only trove.json", names)
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")

	orig := New()
	orig.Add("deploy", []string{"ops"}, "kubectl apply", "prod deploy")
	orig.Add("log", nil, "git log", "")

	if err := orig.ExportAll(path); err != nil {
		t.Fatalf("ExportAll() error = %v", err)
	}

	fresh := New()
	n, err := fresh.ImportMerge(path)
	if err != nil {
		t.Fatalf("ImportMerge() error = %v", err)
	}
	if n != 2 {
		t.Errorf("ImportMerge() read %d entries, want 2", n)
	}
	if !reflect.DeepEqual(fresh.Records(""), orig.Records("")) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", fresh.Records(""), orig.Records(""))
	}
}

func TestImportMerge_OverwritesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")

	incoming := New()
	incoming.Add("b", nil, "new-b", "")
	incoming.Add("c", nil, "new-c", "")
	if err := incoming.ExportAll(path); err != nil {
		t.Fatal(err)
	}

	tr := New()
	tr.Add("a", nil, "old-a", "")
	tr.Add("b", nil, "old-b", "")

	if _, err := tr.ImportMerge(path); err != nil {
		t.Fatalf("ImportMerge() error = %v", err)
	}

	e, _ := tr.Get("b")
	if e.Command != "new-b" {
		t.Errorf("b.Command = %q, want new-b (incoming overwrites)", e.Command)
	}
	e, _ = tr.Get("a")
	if e.Command != "old-a" {
		t.Errorf("a.Command = %q, want old-a (untouched)", e.Command)
	}
	// Existing names keep their position, new names append
	if !reflect.DeepEqual(tr.Names(), []string{"a", "b", "c"}) {
		t.Errorf("Names() = %v, want [a b c]", tr.Names())
	}
}

func TestImportMerge_MissingFile(t *testing.T) {
	tr := New()
	tr.Add("a", nil, "cmd", "")

	_, err := tr.ImportMerge(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ImportMerge() error = %v, want ErrNotFound", err)
	}
	if tr.Len() != 1 {
		t.Errorf("trove mutated on failed import: Len() = %d, want 1", tr.Len())
	}
}

func TestImportMerge_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"a": {`), 0644); err != nil {
		t.Fatal(err)
	}

	tr := New()
	tr.Add("keep", []string{"t"}, "cmd", "d")
	before := tr.Records("")

	_, err := tr.ImportMerge(path)
	if !errors.Is(err, ErrParse) {
		t.Errorf("ImportMerge() error = %v, want ErrParse", err)
	}
	if !reflect.DeepEqual(tr.Records(""), before) {
		t.Error("trove mutated on malformed import")
	}
}

func TestImportMerge_TopLevelArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arr.json")
	if err := os.WriteFile(path, []byte(`[{"name": "a"}]`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := New().ImportMerge(path)
	if !errors.Is(err, ErrParse) {
		t.Errorf("ImportMerge() on array error = %v, want ErrParse", err)
	}
}

func TestParseEntry(t *testing.T) {
	e, err := ParseEntry([]byte(`{"tags": ["a"], "command": "ls", "description": "d"}`))
	if err != nil {
		t.Fatalf("ParseEntry() error = %v", err)
	}
	if e.Command != "ls" {
		t.Errorf("Command = %q, want ls", e.Command)
	}

	for _, bad := range []string{`"just a string"`, `[1,2]`, `{broken`, ``} {
		if _, err := ParseEntry([]byte(bad)); !errors.Is(err, ErrParse) {
			t.Errorf("ParseEntry(%q) error = %v, want ErrParse", bad, err)
		}
	}
}
