// Package registry maps ABI type strings to coder factories.
//
// Each entry pairs a label with a Matcher and an encoder and/or decoder
// factory. A lookup normalizes and parses the type string, requires exactly
// one matching entry, and caches the coder it builds. Coders are immutable,
// so cached coders are shared between callers.
//
// A Registry is safe for concurrent use. Registering or unregistering an
// entry discards the cache.
package registry

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/JacksonBernier523/eth-abi/coder"
	"github.com/JacksonBernier523/eth-abi/errors"
	"github.com/JacksonBernier523/eth-abi/grammar"
)

var _ coder.Registry = (*Registry)(nil)

type direction string

const (
	encoders direction = "encoder"
	decoders direction = "decoder"
)

type entry struct {
	match   Matcher
	factory coder.Factory
	label   string
}

type cacheKey struct {
	dir     direction
	typeStr string
}

type Registry struct {
	log    *zap.Logger
	cache  *sync.Map // cacheKey -> coder.Coder
	tables map[direction][]entry
	mu     sync.RWMutex
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry's logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{
		log:    zap.NewNop(),
		cache:  &sync.Map{},
		tables: make(map[direction][]entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds an entry for both directions. Either factory may be nil to
// register only the other direction.
func (r *Registry) Register(label string, match Matcher, encoder, decoder coder.Factory) error {
	if encoder == nil && decoder == nil {
		return errors.Registration(label, "no factory given")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkEntry(label, match); err != nil {
		return err
	}
	if encoder != nil && r.has(encoders, label) {
		return errors.Registration(label, "encoder label already registered")
	}
	if decoder != nil && r.has(decoders, label) {
		return errors.Registration(label, "decoder label already registered")
	}

	if encoder != nil {
		r.tables[encoders] = append(r.tables[encoders], entry{label: label, match: match, factory: encoder})
	}
	if decoder != nil {
		r.tables[decoders] = append(r.tables[decoders], entry{label: label, match: match, factory: decoder})
	}
	r.cache = &sync.Map{}

	r.log.Debug("registered coder entry",
		zap.String("label", label),
		zap.Bool("encoder", encoder != nil),
		zap.Bool("decoder", decoder != nil))
	return nil
}

// RegisterEncoder adds an encoder-only entry.
func (r *Registry) RegisterEncoder(label string, match Matcher, f coder.Factory) error {
	if f == nil {
		return errors.Registration(label, "no factory given")
	}
	return r.Register(label, match, f, nil)
}

// RegisterDecoder adds a decoder-only entry.
func (r *Registry) RegisterDecoder(label string, match Matcher, f coder.Factory) error {
	if f == nil {
		return errors.Registration(label, "no factory given")
	}
	return r.Register(label, match, nil, f)
}

// Unregister removes the entries labelled label from both directions and
// reports whether any existed.
func (r *Registry) Unregister(label string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := false
	for dir, table := range r.tables {
		kept := slices.DeleteFunc(slices.Clone(table), func(e entry) bool { return e.label == label })
		if len(kept) != len(table) {
			removed = true
			r.tables[dir] = kept
		}
	}
	if removed {
		r.cache = &sync.Map{}
		r.log.Debug("unregistered coder entry", zap.String("label", label))
	}
	return removed
}

// Encoder returns the encoder for typeStr.
func (r *Registry) Encoder(typeStr string) (coder.Coder, error) {
	return r.lookup(encoders, typeStr)
}

// Decoder returns the decoder for typeStr.
func (r *Registry) Decoder(typeStr string) (coder.Coder, error) {
	return r.lookup(decoders, typeStr)
}

// HasEncoder reports whether exactly one encoder entry matches typeStr.
// It does not build the encoder.
func (r *Registry) HasEncoder(typeStr string) bool {
	return r.resolves(encoders, typeStr)
}

// HasDecoder reports whether exactly one decoder entry matches typeStr.
func (r *Registry) HasDecoder(typeStr string) bool {
	return r.resolves(decoders, typeStr)
}

// Labels returns the registered labels, sorted.
func (r *Registry) Labels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var labels []string
	for _, table := range r.tables {
		for _, e := range table {
			labels = append(labels, e.label)
		}
	}
	slices.Sort(labels)
	return slices.Compact(labels)
}

// Copy returns an independent registry with the same entries and an empty
// cache.
func (r *Registry) Copy() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cp := &Registry{
		log:    r.log,
		cache:  &sync.Map{},
		tables: make(map[direction][]entry, len(r.tables)),
	}
	for dir, table := range r.tables {
		cp.tables[dir] = slices.Clone(table)
	}
	return cp
}

func (r *Registry) lookup(dir direction, typeStr string) (coder.Coder, error) {
	normalized := grammar.Normalize(typeStr)
	key := cacheKey{dir: dir, typeStr: normalized}

	r.mu.RLock()
	cache := r.cache
	if c, ok := cache.Load(key); ok {
		r.mu.RUnlock()
		return c.(coder.Coder), nil
	}
	e, err := r.find(dir, typeStr, normalized)
	r.mu.RUnlock()

	if err != nil {
		r.log.Debug("no coder for type",
			zap.String("direction", string(dir)),
			zap.String("type", typeStr),
			zap.Error(err))
		return nil, err
	}

	// The factory may call back into the registry for item types, so it
	// runs without the lock held.
	c, err := e.factory(typeStr, r)
	if err != nil {
		return nil, err
	}

	actual, _ := cache.LoadOrStore(key, c)
	return actual.(coder.Coder), nil
}

func (r *Registry) resolves(dir direction, typeStr string) bool {
	normalized := grammar.Normalize(typeStr)

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, err := r.find(dir, typeStr, normalized)
	return err == nil
}

// find must be called with r.mu held.
func (r *Registry) find(dir direction, typeStr, normalized string) (entry, error) {
	parsed, err := grammar.Parse(normalized)
	if err != nil {
		return entry{}, annotate(err, typeStr, normalized)
	}

	var matches []entry
	for _, e := range r.tables[dir] {
		if e.match(parsed) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return entry{}, errors.NotFound(string(dir), typeStr, normalized)
	case 1:
		return matches[0], nil
	default:
		labels := make([]string, len(matches))
		for i, m := range matches {
			labels[i] = m.label
		}
		return entry{}, errors.Ambiguous(string(dir), typeStr, normalized, labels)
	}
}

// has must be called with r.mu held.
func (r *Registry) has(dir direction, label string) bool {
	return slices.ContainsFunc(r.tables[dir], func(e entry) bool { return e.label == label })
}

func (r *Registry) checkEntry(label string, match Matcher) error {
	if label == "" {
		return errors.Registration(label, "empty label")
	}
	if match == nil {
		return errors.Registration(label, "nil matcher")
	}
	return nil
}

func annotate(err error, typeStr, normalized string) error {
	e, ok := err.(*errors.Error)
	if !ok {
		return err
	}
	annotated := *e
	annotated.TypeStr = typeStr
	if normalized != typeStr {
		annotated.Normalized = normalized
	}
	return &annotated
}
