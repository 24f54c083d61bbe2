package xmlbind

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"extension-binder/binding"
	"extension-binder/internal/plan"
)

// ClassMapping is the resolved schema mapping of one bound class.
type ClassMapping = plan.ClassMapping

// Registry holds class bindings and lazily resolves and caches their
// mappings. A mapping is built at most once per class at a time, and a
// successful build is kept until Invalidate, Reset or the replacement of a
// class. Failed builds are not cached. A Registry is safe for concurrent use.
type Registry struct {
	log    zerolog.Logger
	config *binding.Config

	classes  sync.Map // binding.TypeID -> *binding.Class
	mappings sync.Map // binding.TypeID -> *ClassMapping
	group    singleflight.Group

	// mu orders publication of a build against invalidation. A build started
	// before the generation moved is returned to its caller but not cached.
	mu         sync.Mutex
	generation atomic.Uint64

	resolutions atomic.Int64
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// WithConfig sets the extension configuration applied to classes built by
// reflection in MappingFor.
func WithConfig(cfg *binding.Config) Option {
	return func(r *Registry) {
		r.config = cfg
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process wide Registry used by the package level helpers.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// Register adds or replaces the binding of a class. Replacing a class drops
// every cached mapping, since mappings of other classes may embed a copy of
// the replaced one.
func (r *Registry) Register(c *binding.Class) error {
	if c == nil {
		return fmt.Errorf("register: %w", binding.ErrNilObject)
	}

	if prev, loaded := r.classes.Swap(c.ID, c); loaded && prev != c {
		r.log.Debug().Str("type", c.ID.String()).Msg("class replaced, dropping cached mappings")
		r.Reset()
	}

	return nil
}

// Class returns the registered binding of a type.
func (r *Registry) Class(id binding.TypeID) (*binding.Class, bool) {
	v, ok := r.classes.Load(id)
	if !ok {
		return nil, false
	}

	return v.(*binding.Class), true
}

// Mapping returns the mapping of a registered class, resolving it on first use.
func (r *Registry) Mapping(id binding.TypeID) (*ClassMapping, error) {
	if m, ok := r.cached(id); ok {
		return m, nil
	}

	c, ok := r.Class(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, id)
	}

	return r.build(c)
}

// MappingFor returns the mapping of a Go struct type. Types that were not
// registered are bound by reflection with the registry configuration.
func (r *Registry) MappingFor(t reflect.Type) (*ClassMapping, error) {
	if t == nil {
		return nil, ErrNilInstance
	}

	id := binding.IDOf(t)
	if m, ok := r.cached(id); ok {
		return m, nil
	}

	c, ok := r.Class(id)
	if !ok {
		reflected, err := binding.Reflect(t, r.config)
		if err != nil {
			return nil, err
		}

		v, _ := r.classes.LoadOrStore(id, reflected)
		c = v.(*binding.Class)
	}

	return r.build(c)
}

// Invalidate drops the cached mapping of a class. Mappings that embed a copy
// of it keep their copy; use Reset to drop those too.
func (r *Registry) Invalidate(id binding.TypeID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation.Add(1)
	r.mappings.Delete(id)
}

// Reset drops every cached mapping. Registered classes are kept.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation.Add(1)
	r.mappings.Clear()
}

// Resolutions returns how many times a mapping was resolved.
func (r *Registry) Resolutions() int64 {
	return r.resolutions.Load()
}

func (r *Registry) cached(id binding.TypeID) (*ClassMapping, bool) {
	v, ok := r.mappings.Load(id)
	if !ok {
		return nil, false
	}

	return v.(*ClassMapping), true
}

func (r *Registry) build(c *binding.Class) (*ClassMapping, error) {
	v, err, _ := r.group.Do(c.ID.String(), func() (any, error) {
		if m, ok := r.cached(c.ID); ok {
			return m, nil
		}

		r.resolutions.Add(1)
		generation := r.generation.Load()

		resolver := plan.NewResolver(r.cached)
		m, err := resolver.Resolve(c)

		for _, d := range resolver.Diagnostics().Warnings {
			r.log.Warn().Str("type", d.Type).Str("field", d.Field).Str("code", d.Code).Msg(d.Message)
		}

		if err != nil {
			r.log.Error().Err(err).Str("type", c.ID.String()).Msg("mapping resolution failed")
			return nil, err
		}

		if !r.publish(c.ID, m, generation) {
			r.log.Debug().Str("type", c.ID.String()).Msg("cache invalidated during resolution, mapping not kept")
			return m, nil
		}

		r.log.Debug().Str("type", c.ID.String()).Int("elements", len(m.Slots)).Msg("mapping resolved")

		return m, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*ClassMapping), nil
}

// publish caches m unless the cache was invalidated since generation.
func (r *Registry) publish(id binding.TypeID, m *ClassMapping, generation uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.generation.Load() != generation {
		return false
	}

	r.mappings.Store(id, m)

	return true
}

// Marshal converts v using the mapping of its type.
func (r *Registry) Marshal(v any) (*etree.Element, error) {
	if v == nil {
		return nil, ErrNilInstance
	}

	m, err := r.MappingFor(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}

	return Marshal(v, m)
}

// Encode marshals v into an indented XML document with a declaration.
func (r *Registry) Encode(v any) ([]byte, error) {
	root, err := r.Marshal(v)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(root)
	doc.Indent(2)

	return doc.WriteToBytes()
}

// Unmarshal builds a new instance of t from el and returns a pointer to it.
func (r *Registry) Unmarshal(el *etree.Element, t reflect.Type) (any, error) {
	m, err := r.MappingFor(t)
	if err != nil {
		return nil, err
	}

	return Unmarshal(el, m)
}

// Decode parses an XML document into a new T.
func Decode[T any](r *Registry, data []byte) (*T, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("decode: %w: document has no root element", ErrSchemaViolation)
	}

	v, err := r.Unmarshal(root, reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	out, ok := v.(*T)
	if !ok {
		return nil, fmt.Errorf("decode: class constructor returned %T", v)
	}

	return out, nil
}
