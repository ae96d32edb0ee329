// Package adapter contains infrastructure adapters for the classmark CLI.
package adapter

import (
	m "classmark.dev/pkg/classmark/internal/model"
)

// BuildMode reports how much of the class a factory materializes.
type BuildMode string

const (
	// BuildFull materializes complete class bodies.
	BuildFull BuildMode = "full"
	// BuildMetadata materializes declarations only, without bodies.
	BuildMetadata BuildMode = "metadata"
)

// ClassBuilderFactory is the capability set the host pipeline supplies for
// constructing class artifacts. The interception layer implements the same
// interface so it is transparently usable anywhere the original was.
type ClassBuilderFactory interface {
	// NewBuilder produces a builder for one class-compilation unit. Builders
	// are never shared across units.
	NewBuilder(origin m.Origin) ClassBuilder

	// AsText renders a builder's output as a textual listing. The builder
	// must have been obtained from this same factory.
	AsText(builder ClassBuilder) (string, error)

	// AsBytes renders a builder's output as a serialized class artifact.
	AsBytes(builder ClassBuilder) ([]byte, error)

	// BuildMode reports the factory's build mode.
	BuildMode() BuildMode

	// Close releases resources held by the factory.
	Close() error
}

// ClassBuilder receives the per-class event stream from the front end. Each
// mutating operation returns an error; failures from the underlying chain
// propagate unchanged through any decorating layers.
type ClassBuilder interface {
	// BeginClass starts a class definition with its structural metadata.
	BeginClass(origin m.Origin, info m.ClassInfo) error

	// NewMethod starts a method definition and returns the handle for
	// further per-method events.
	NewMethod(origin m.Origin, info m.MethodInfo) (MethodBuilder, error)

	// NewField records a field definition.
	NewField(origin m.Origin, info m.FieldInfo) error

	// NewAnnotation attaches a class-level annotation entry.
	NewAnnotation(descriptor string, visible bool) error

	// Source records the originating source file name.
	Source(file string) error

	// Done finishes the class definition.
	Done() error
}

// MethodBuilder receives per-method events after a method definition starts.
type MethodBuilder interface {
	// NewAnnotation attaches an annotation entry to the method.
	NewAnnotation(descriptor string, visible bool) error

	// Done finishes the method definition.
	Done() error
}

// Event op names used in builder journals.
const (
	OpBeginClass       = "begin-class"
	OpMethod           = "method"
	OpField            = "field"
	OpAnnotation       = "annotation"
	OpMethodAnnotation = "method-annotation"
	OpSource           = "source"
	OpDone             = "done"
)

// Event is one journaled builder operation. The recording builder appends an
// Event per call so a run with interception can be compared entry by entry
// against a run without it.
type Event struct {
	Op         string
	Origin     m.Origin
	Class      m.ClassInfo
	Method     m.MethodInfo
	Field      m.FieldInfo
	Annotation m.Annotation
	SourceFile string
	// MethodName ties method-annotation events back to their method.
	MethodName string
}
