package coder

import (
	"maps"

	"github.com/invopop/jsonschema"
)

// Coder is a constructed encoder or decoder for one ABI type.
type Coder interface {
	// IsDynamic reports whether the encoded size is not statically fixed.
	IsDynamic() bool
	// ClassName returns the name of the class that constructed the coder.
	ClassName() string
	// Settings returns a copy of the effective settings.
	Settings() Settings
}

// Settings maps setting names to values supplied at construction.
type Settings map[string]any

// Validator is implemented by coders whose settings must be checked in
// combination. Class.New calls Validate after all settings are applied.
type Validator interface {
	Validate() error
}

// Registry resolves nested type strings to coders. Array coders use it to
// obtain their item coder.
type Registry interface {
	Encoder(typeStr string) (Coder, error)
	Decoder(typeStr string) (Coder, error)
}

// Factory builds a coder from a raw type string.
type Factory func(typeStr string, reg Registry) (Coder, error)

type classInfo interface {
	Name() string
	Schema() *jsonschema.Schema
}

type metaHolder interface {
	meta() *Meta
}

// Meta records which class built a coder and with which settings.
// Coder implementations embed it; Class.New fills it in.
type Meta struct {
	class    classInfo
	settings Settings
}

func (m *Meta) meta() *Meta {
	return m
}

func (m *Meta) ClassName() string {
	if m.class == nil {
		return ""
	}
	return m.class.Name()
}

func (m *Meta) Settings() Settings {
	return maps.Clone(m.settings)
}

// SchemaOf returns the settings schema of the class that built c, or nil when
// c was not built by a Class.
func SchemaOf(c Coder) *jsonschema.Schema {
	h, ok := c.(metaHolder)
	if !ok || h.meta().class == nil {
		return nil
	}
	return h.meta().class.Schema()
}
