package coder

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/JacksonBernier523/eth-abi/errors"
)

// Attr declares one configurable setting of a coder class.
type Attr[C any] struct {
	def        any
	typ        reflect.Type
	set        func(c *C, v any) bool
	get        func(c *C) any
	name       string
	hasDefault bool
}

// Setting declares an attribute with a class-level default.
func Setting[C, V any](name string, def V, field func(*C) *V) Attr[C] {
	a := Field(name, field)
	a.def = def
	a.hasDefault = true
	return a
}

// Field declares an attribute without a default; unless configured it keeps
// the zero value. A nil setting value resets the field to its zero value.
func Field[C, V any](name string, field func(*C) *V) Attr[C] {
	return Attr[C]{
		name: name,
		typ:  reflect.TypeFor[V](),
		set: func(c *C, v any) bool {
			if v == nil {
				var zero V
				*field(c) = zero
				return true
			}
			tv, ok := v.(V)
			if !ok {
				return false
			}
			*field(c) = tv
			return true
		},
		get: func(c *C) any {
			return *field(c)
		},
	}
}

func (a Attr[C]) Name() string {
	return a.name
}

// Default returns the class-level default and whether one is declared.
func (a Attr[C]) Default() (any, bool) {
	return a.def, a.hasDefault
}

// Class is the construction contract of one coder class: its name and its
// declared settings surface.
type Class[C any] struct {
	index map[string]int
	name  string
	attrs []Attr[C]
}

// NewClass declares a coder class. It panics on duplicate attribute names or
// defaults that do not fit their field.
func NewClass[C any](name string, attrs ...Attr[C]) *Class[C] {
	cl := &Class[C]{
		name:  name,
		attrs: slices.Clone(attrs),
		index: make(map[string]int, len(attrs)),
	}

	scratch := new(C)
	for i, a := range cl.attrs {
		if _, dup := cl.index[a.name]; dup {
			panic(fmt.Sprintf("coder: duplicate setting %q on %s", a.name, name))
		}
		if a.hasDefault && !a.set(scratch, a.def) {
			panic(fmt.Sprintf("coder: default %v for %s.%s is not a %s", a.def, name, a.name, a.typ))
		}
		cl.index[a.name] = i
	}
	return cl
}

func (cl *Class[C]) Name() string {
	return cl.name
}

// Has reports whether the class declares a setting called name.
func (cl *Class[C]) Has(name string) bool {
	_, ok := cl.index[name]
	return ok
}

// Names returns the declared setting names in declaration order.
func (cl *Class[C]) Names() []string {
	names := make([]string, len(cl.attrs))
	for i, a := range cl.attrs {
		names[i] = a.name
	}
	return names
}

// Defaults returns the class-level defaults.
func (cl *Class[C]) Defaults() Settings {
	out := make(Settings)
	for _, a := range cl.attrs {
		if a.hasDefault {
			out[a.name] = a.def
		}
	}
	return out
}

// New constructs a coder from settings. Keys must be declared by the class.
// Defaults are applied first, then the supplied values, then the coder's
// Validate hook runs. On error no coder is returned.
func (cl *Class[C]) New(settings Settings) (*C, error) {
	keys := slices.Sorted(maps.Keys(settings))
	for _, key := range keys {
		if !cl.Has(key) {
			return nil, errors.UnknownSetting(cl.name, key)
		}
	}

	c := new(C)
	for _, a := range cl.attrs {
		if a.hasDefault {
			a.set(c, a.def)
		}
	}
	for _, key := range keys {
		a := cl.attrs[cl.index[key]]
		if !a.set(c, settings[key]) {
			return nil, errors.SettingType(cl.name, key, settings[key], a.typ.String())
		}
	}

	if v, ok := any(c).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, cl.configurationError(err)
		}
	}

	if h, ok := any(c).(metaHolder); ok {
		*h.meta() = Meta{class: cl, settings: cl.snapshot(c)}
	}
	return c, nil
}

// MustNew is like New but panics on error. Use for package-level coders.
func (cl *Class[C]) MustNew(settings Settings) *C {
	c, err := cl.New(settings)
	if err != nil {
		panic(err)
	}
	return c
}

func (cl *Class[C]) snapshot(c *C) Settings {
	out := make(Settings, len(cl.attrs))
	for _, a := range cl.attrs {
		out[a.name] = a.get(c)
	}
	return out
}

func (cl *Class[C]) configurationError(err error) error {
	if e, ok := err.(*errors.Error); ok && e.Kind == errors.KindConfiguration {
		annotated := *e
		if annotated.Coder == "" {
			annotated.Coder = cl.name
		}
		return &annotated
	}
	return errors.InvalidSettings(cl.name, err)
}
