package graphics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func memFactory(_ string, width, height float64) (Surface, error) {
	s, err := NewImageSurface(FormatARGB32, int(width), int(height))
	if err != nil {
		return nil, err
	}
	return s, nil
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("Test", 50, memFactory)

	entry, ok := r.Lookup("test")
	if !ok {
		t.Fatal("registered format not found")
	}
	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", 10, memFactory)
	if _, ok := r.Lookup("temp"); !ok {
		t.Fatal("format should exist before unregister")
	}
	r.Unregister("temp")
	if _, ok := r.Lookup("temp"); ok {
		t.Error("format should not exist after unregister")
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, memFactory)
	r.Register("high", 100, memFactory)
	r.Register("mid-b", 50, memFactory)
	r.Register("mid-a", 50, memFactory)

	want := []string{"high", "mid-a", "mid-b", "low"}
	got := r.List()
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if NewRegistry().List() != nil {
		t.Error("empty registry should list nil")
	}
}

func TestRegistryLookupReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Register("x", 1, memFactory)
	e, _ := r.Lookup("x")
	e.Priority = 99
	if e2, _ := r.Lookup("x"); e2.Priority != 1 {
		t.Error("modifying a looked up entry changed the registry")
	}
}

func TestRegistryOpenUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Open("tiff", "out.tiff", 10, 10)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Open() error = %v, want ErrUnknownFormat", err)
	}
	var ufe *UnknownFormatError
	if !errors.As(err, &ufe) || ufe.Name != "tiff" {
		t.Errorf("Open() error = %#v, want UnknownFormatError{tiff}", err)
	}
}

func TestBuiltinFormats(t *testing.T) {
	names := List()
	if len(names) < 2 || names[0] != "svg" {
		t.Fatalf("List() = %v, want svg first", names)
	}
	for _, name := range []string{"png", "svg"} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("built-in format %s not registered", name)
		}
	}
}

func TestOpenPNGWritesOnClose(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.png")
	s, err := Open("png", name, 10.5, 10)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Width() != 11 {
		t.Errorf("Width() = %v, want 11", s.Width())
	}
	if err := s.Fill(White); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() != 0 {
		t.Errorf("png should be created empty by Open, stat = %v, %v", fi, err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		t.Errorf("png not written on Close: %v, %v", fi, err)
	}
}

func TestOpenPNGFailure(t *testing.T) {
	s, err := Open("png", filepath.Join(t.TempDir(), "missing", "x.png"), 10, 10)
	if err == nil {
		t.Fatal("Open() into a missing directory should fail")
	}
	if s != nil {
		t.Errorf("Open() returned a non-nil surface %T on error", s)
	}
}

func TestOpenFileByExtension(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenFile(filepath.Join(dir, "page.SVG"), 20, 20)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	if _, ok := s.(*SVGSurface); !ok {
		t.Errorf("OpenFile(.SVG) = %T, want *SVGSurface", s)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenFile(filepath.Join(dir, "noext"), 20, 20); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("OpenFile(noext) error = %v, want ErrUnknownFormat", err)
	}
}

func TestOpenSVGFailure(t *testing.T) {
	s, err := Open("svg", filepath.Join(t.TempDir(), "missing", "x.svg"), 10, 10)
	if err == nil {
		t.Fatal("Open() into a missing directory should fail")
	}
	if s != nil {
		t.Errorf("Open() returned a non-nil surface %T on error", s)
	}
}
