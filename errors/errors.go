package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse     Phase = "parse"     // type string grammar
	PhaseValidate  Phase = "validate"  // descriptor validation
	PhaseConfigure Phase = "configure" // coder settings
	PhaseFactory   Phase = "factory"   // type string to coder
	PhaseRegistry  Phase = "registry"  // registry lookup and registration
	PhaseBridge    Phase = "bridge"    // WIT mapping
)

// Kind categorizes the error
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindTypeString    Kind = "type_string"
	KindDescriptor    Kind = "descriptor"
	KindSyntax        Kind = "syntax"
	KindNotFound      Kind = "not_found"
	KindAmbiguous     Kind = "ambiguous"
	KindRegistration  Kind = "registration"
	KindUnsupported   Kind = "unsupported"
	KindInvalidInput  Kind = "invalid_input"
)

// Sentinels for errors.Is. They match on Kind only.
var (
	ErrConfiguration = &Error{Kind: KindConfiguration}
	ErrTypeString    = &Error{Kind: KindTypeString}
	ErrDescriptor    = &Error{Kind: KindDescriptor}
	ErrSyntax        = &Error{Kind: KindSyntax}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrUnsupported   = &Error{Kind: KindUnsupported}
)

// Error is the structured error type used throughout the library
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	Coder      string // coder class name
	TypeStr    string // type string as supplied by the caller
	Normalized string // normalized type string, only when it differs from TypeStr
	Setting    string // offending setting name
	Detail     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Coder != "" {
		b.WriteString(" in ")
		b.WriteString(e.Coder)
	}

	if e.TypeStr != "" {
		b.WriteString(" for type ")
		b.WriteString(e.TypeRepr())
	}

	if e.Setting != "" {
		b.WriteString(" at setting ")
		b.WriteString(fmt.Sprintf("%q", e.Setting))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// TypeRepr renders the type string for diagnostics, adding the normalized
// form when normalization changed it.
func (e *Error) TypeRepr() string {
	repr := fmt.Sprintf("'%s'", e.TypeStr)
	if e.Normalized != "" && e.Normalized != e.TypeStr {
		repr += fmt.Sprintf(" (normalized to '%s')", e.Normalized)
	}
	return repr
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Kind must match; Phase must
// match only when the target sets one.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase != "" && t.Phase != e.Phase {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return stderrors.Is(err, &Error{Kind: kind})
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Coder sets the coder class name
func (b *Builder) Coder(name string) *Builder {
	b.err.Coder = name
	return b
}

// TypeStr sets the supplied type string and its normalized form.
// The normalized form is dropped when it equals the supplied one.
func (b *Builder) TypeStr(typeStr, normalized string) *Builder {
	b.err.TypeStr = typeStr
	if normalized != typeStr {
		b.err.Normalized = normalized
	}
	return b
}

// Setting sets the offending setting name
func (b *Builder) Setting(name string) *Builder {
	b.err.Setting = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownSetting creates a configuration error for a settings key the class
// does not declare.
func UnknownSetting(coder, key string) *Error {
	return &Error{
		Phase:   PhaseConfigure,
		Kind:    KindConfiguration,
		Coder:   coder,
		Setting: key,
		Detail: fmt.Sprintf("property %s not found on %s; %s only accepts settings declared by the class",
			key, coder, coder),
	}
}

// SettingType creates a configuration error for a value of the wrong Go type
func SettingType(coder, key string, value any, want string) *Error {
	return &Error{
		Phase:   PhaseConfigure,
		Kind:    KindConfiguration,
		Coder:   coder,
		Setting: key,
		Value:   value,
		Detail:  fmt.Sprintf("value of type %T cannot be assigned, want %s", value, want),
	}
}

// InvalidSettings creates a configuration error for a combination of settings
// rejected by a coder's validation hook.
func InvalidSettings(coder string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfigure,
		Kind:   KindConfiguration,
		Coder:  coder,
		Detail: "invalid combination of settings",
		Cause:  cause,
	}
}

// Configuration creates a configuration error with a free-form detail.
// Coders return it from their validation hooks.
func Configuration(detail string, args ...any) *Error {
	return New(PhaseConfigure, KindConfiguration).Detail(detail, args...).Build()
}

// TypeString creates a type string error raised by a coder class factory
func TypeString(coder, typeStr, normalized, detail string) *Error {
	return New(PhaseFactory, KindTypeString).
		Coder(coder).
		TypeStr(typeStr, normalized).
		Detail("%s", detail).
		Build()
}

// InvalidDescriptor creates a descriptor validation error
func InvalidDescriptor(typeStr, detail string) *Error {
	return &Error{
		Phase:   PhaseValidate,
		Kind:    KindDescriptor,
		TypeStr: typeStr,
		Detail:  fmt.Sprintf("For '%s' type: %s", typeStr, detail),
	}
}

// Syntax creates a type string syntax error
func Syntax(typeStr string, column int, detail string) *Error {
	return &Error{
		Phase:   PhaseParse,
		Kind:    KindSyntax,
		TypeStr: typeStr,
		Value:   column,
		Detail:  fmt.Sprintf("column %d: %s", column, detail),
	}
}

// NotFound creates a registry lookup error for a type no entry matches
func NotFound(what, typeStr, normalized string) *Error {
	return New(PhaseRegistry, KindNotFound).
		TypeStr(typeStr, normalized).
		Detail("no %s registered", what).
		Build()
}

// Ambiguous creates a registry lookup error for a type several entries match
func Ambiguous(what, typeStr, normalized string, labels []string) *Error {
	return New(PhaseRegistry, KindAmbiguous).
		TypeStr(typeStr, normalized).
		Value(labels).
		Detail("multiple %s entries match: %s", what, strings.Join(labels, ", ")).
		Build()
}

// Registration creates a registration error
func Registration(label, detail string) *Error {
	return &Error{
		Phase:  PhaseRegistry,
		Kind:   KindRegistration,
		Value:  label,
		Detail: fmt.Sprintf("register %q: %s", label, detail),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, typeStr, what string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnsupported,
		TypeStr: typeStr,
		Detail:  what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
