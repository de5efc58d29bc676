package content

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestMarshalLoadRoundTrip(t *testing.T) {
	want := Default()
	b, err := want.Marshal("")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Load(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got.Data(), want.Data()) {
		t.Error("round trip changed the records")
	}
}

func TestMarshalSection(t *testing.T) {
	b, err := Default().Marshal(SectionNav)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "label: About") || !strings.Contains(out, `href: '#about'`) {
		t.Errorf("nav yaml:\n%s", out)
	}

	if _, err := Default().Marshal("profile"); err != nil {
		t.Errorf("Marshal(profile): %v", err)
	}
	if _, err := Default().Marshal("blog"); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("Marshal(blog) error = %v, want ErrUnknownSection", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("posts: []\n"))
	if err == nil {
		t.Fatal("unknown key should fail")
	}
}

func TestLoadValidates(t *testing.T) {
	_, err := Load(strings.NewReader("nav:\n  - label: Blog\n    href: /blog\n"))
	if err == nil || !strings.Contains(err.Error(), "invalid records") {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestLoadFile(t *testing.T) {
	b, err := Default().Marshal("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(s.Projects()) != 4 {
		t.Errorf("projects = %d", len(s.Projects()))
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
