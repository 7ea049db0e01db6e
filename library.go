package docsearch

// Library maps a library identifier to its documentation domain.
// Domain is used verbatim in a "site:" search clause.
type Library struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// DefaultLibraries returns the libraries supported out of the box.
func DefaultLibraries() []Library {
	return []Library{
		{Name: "langchain", Domain: "python.langchain.com/docs"},
		{Name: "llama-index", Domain: "docs.llamaindex.ai/en/stable"},
		{Name: "openai", Domain: "platform.openai.com/docs"},
		{Name: "uv", Domain: "docs.astral.sh/uv"},
	}
}

// Registry is a closed, read-only set of libraries.
// It is safe for concurrent use once constructed.
type Registry struct {
	libraries []Library
	domains   map[string]string
}

// NewRegistry creates a registry from the given libraries.
// Names must be unique and neither names nor domains may be empty.
func NewRegistry(libraries ...Library) (*Registry, error) {
	r := &Registry{
		libraries: make([]Library, 0, len(libraries)),
		domains:   make(map[string]string, len(libraries)),
	}
	for _, lib := range libraries {
		if lib.Name == "" {
			return nil, Errorf(EINVALID, "library name required")
		}
		if lib.Domain == "" {
			return nil, Errorf(EINVALID, "library %q domain required", lib.Name)
		}
		if _, ok := r.domains[lib.Name]; ok {
			return nil, Errorf(EINVALID, "duplicate library %q", lib.Name)
		}
		r.domains[lib.Name] = lib.Domain
		r.libraries = append(r.libraries, lib)
	}
	return r, nil
}

// DefaultRegistry returns a registry holding DefaultLibraries.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultLibraries()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve returns the documentation domain for a library.
// Returns an *UnknownLibraryError if the library is not registered.
func (r *Registry) Resolve(name string) (string, error) {
	domain, ok := r.domains[name]
	if !ok {
		return "", &UnknownLibraryError{Library: name, Supported: r.Names()}
	}
	return domain, nil
}

// Names returns library identifiers in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.libraries))
	for i, lib := range r.libraries {
		names[i] = lib.Name
	}
	return names
}

// Libraries returns a copy of the registered libraries in registration order.
func (r *Registry) Libraries() []Library {
	out := make([]Library, len(r.libraries))
	copy(out, r.libraries)
	return out
}

// ScopedQuery restricts a search query to a documentation domain.
func ScopedQuery(domain, query string) string {
	return "site:" + domain + " " + query
}
