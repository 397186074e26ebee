package graphics

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Factory creates a surface of the given size that writes to filename.
type Factory func(filename string, width, height float64) (Surface, error)

// RegistryEntry is a registered surface format.
type RegistryEntry struct {
	// Name is the unique identifier of the format. It doubles as the file
	// extension OpenFile matches.
	Name string

	// Priority orders List, highest first.
	Priority int

	// Factory creates surfaces of this format.
	Factory Factory
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry maps format names to surface factories.
//
// Example registration:
//
//	func init() {
//	    graphics.Register("pdf", 20, pdfFactory)
//	}
//
// Example usage:
//
//	s, err := graphics.Open("svg", "out.svg", 600, 400)
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates an empty registry.
// Most code should use the global registry via Register and Open.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*RegistryEntry)}
}

// Register adds a format to the global registry. Registering a name that
// already exists replaces the previous entry.
func Register(name string, priority int, factory Factory) {
	globalRegistry.Register(name, priority, factory)
}

// Unregister removes a format from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns the registered format names, highest priority first.
func List() []string {
	return globalRegistry.List()
}

// Lookup returns a copy of the named entry of the global registry.
func Lookup(name string) (*RegistryEntry, bool) {
	return globalRegistry.Lookup(name)
}

// Open creates a surface of the named format writing to filename.
func Open(name, filename string, width, height float64) (Surface, error) {
	return globalRegistry.Open(name, filename, width, height)
}

// OpenFile creates a surface whose format is the extension of filename.
func OpenFile(filename string, width, height float64) (Surface, error) {
	return globalRegistry.OpenFile(filename, width, height)
}

// Register adds a format to this registry.
func (r *Registry) Register(name string, priority int, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	r.entries[strings.ToLower(name)] = &RegistryEntry{
		Name:     strings.ToLower(name),
		Priority: priority,
		Factory:  factory,
	}
}

// Unregister removes a format from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, strings.ToLower(name))
}

// List returns the format names, highest priority first. Equal priorities
// are ordered by name.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return nil
	}
	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns a copy of the named entry.
func (r *Registry) Lookup(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// Open creates a surface of the named format writing to filename.
func (r *Registry) Open(name, filename string, width, height float64) (Surface, error) {
	entry, ok := r.Lookup(name)
	if !ok {
		return nil, &UnknownFormatError{Name: name}
	}
	s, err := entry.Factory(filename, width, height)
	if err != nil {
		return nil, err
	}
	Logger().Debug("surface opened", "format", entry.Name, "file", filename)
	return s, nil
}

// OpenFile creates a surface whose format is the extension of filename.
func (r *Registry) OpenFile(filename string, width, height float64) (Surface, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	return r.Open(ext, filename, width, height)
}

// UnknownFormatError indicates a format name missing from the registry.
// It matches ErrUnknownFormat with errors.Is.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return "graphics: unknown surface format: " + e.Name
}

func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}

// init registers the built-in formats.
func init() {
	Register("png", 10, func(filename string, width, height float64) (Surface, error) {
		s, err := NewImageSurface(FormatARGB32, int(math.Ceil(width)), int(math.Ceil(height)))
		if err != nil {
			return nil, err
		}
		// The file is created now so an unwritable path fails here; the
		// pixels are encoded into it on Close.
		f, err := os.Create(filename) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("graphics: create %s: %w", filename, err)
		}
		s.onClose = func(s *ImageSurface) error {
			return s.writePNGFile(f)
		}
		return s, nil
	})
	Register("svg", 20, func(filename string, width, height float64) (Surface, error) {
		s, err := NewSVGSurface(filename, width, height)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
