package domain

import (
	"fmt"

	"classmark.dev/pkg/classmark/internal/adapter"
	m "classmark.dev/pkg/classmark/internal/model"
)

// classContext is the per-class state of one annotating builder: the class
// declaration currently open, if the origin carried one, plus the class name
// for diagnostics. Informational only; classification does not depend on it.
type classContext struct {
	declaration *m.Declaration
	name        string
}

// annotatingClassBuilder decorates one ClassBuilder. The embedded delegate
// forwards every operation that is not explicitly overridden, so the
// interface can grow without this type drifting out of sync. Exactly two
// events are intercepted: class-definition start (observational) and
// method-definition start (classification plus marking).
type annotatingClassBuilder struct {
	adapter.ClassBuilder

	session *Session
	context classContext
}

// BeginClass records the originating class declaration as the current
// context and forwards the event unchanged.
func (b *annotatingClassBuilder) BeginClass(origin m.Origin, info m.ClassInfo) error {
	b.context = classContext{name: info.Name}

	if declaration := origin.Declaration; declaration != nil && declaration.Kind == m.DeclClass {
		b.context.declaration = declaration
	}

	return b.ClassBuilder.BeginClass(origin, info)
}

// NewMethod forwards the event to obtain the method handle, classifies the
// origin, and attaches the marker annotation when a rule fires. A failed
// annotation write aborts the build; the class must never come out
// half-annotated silently.
func (b *annotatingClassBuilder) NewMethod(origin m.Origin, info m.MethodInfo) (adapter.MethodBuilder, error) {
	method, err := b.ClassBuilder.NewMethod(origin, info)
	if err != nil {
		return nil, err
	}

	rule := Classify(origin)
	if rule == RuleNone {
		return method, nil
	}

	b.session.sink.Report(m.SeverityLog, fmt.Sprintf(
		"marking %s.%s%s as compiler generated: %s",
		b.context.name, info.Name, info.Descriptor, rule,
	))

	if err := method.NewAnnotation(b.session.MarkerDescriptor(), b.session.Visible()); err != nil {
		return nil, fmt.Errorf(
			"failed to attach marker %s to %s.%s%s: %w",
			b.session.Marker(), b.context.name, info.Name, info.Descriptor, err,
		)
	}

	return method, nil
}
