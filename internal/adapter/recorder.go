package adapter

import (
	"fmt"

	"classmark.dev/pkg/classmark/internal/model"
	"classmark.dev/pkg/classmark/pkg"
)

// RecordingFactory is a concrete ClassBuilderFactory that assembles classes
// in memory. It backs the CLI and the test suite so the interception layer
// can be exercised without a host compiler.
type RecordingFactory struct {
	mode   BuildMode
	closed bool
}

// NewRecordingFactory constructs a RecordingFactory with the given build mode.
func NewRecordingFactory(mode BuildMode) *RecordingFactory {
	return &RecordingFactory{mode: mode}
}

// NewBuilder produces a fresh recording builder for one class unit.
func (f *RecordingFactory) NewBuilder(origin model.Origin) ClassBuilder {
	return &RecordingClassBuilder{
		origin: origin,
		tape:   pkg.NewTape[Event](),
	}
}

// AsText renders the builder's assembled class as a textual listing.
func (f *RecordingFactory) AsText(builder ClassBuilder) (string, error) {
	recording, err := asRecording(builder)
	if err != nil {
		return "", err
	}

	return renderText(&recording.class), nil
}

// AsBytes serializes the builder's assembled class into the recorder's
// deterministic binary format.
func (f *RecordingFactory) AsBytes(builder ClassBuilder) ([]byte, error) {
	recording, err := asRecording(builder)
	if err != nil {
		return nil, err
	}

	return renderBytes(&recording.class)
}

// BuildMode reports the factory's build mode.
func (f *RecordingFactory) BuildMode() BuildMode {
	return f.mode
}

// Close marks the factory as released. Builders obtained earlier stay usable;
// new builders must not be requested.
func (f *RecordingFactory) Close() error {
	f.closed = true
	return nil
}

func asRecording(builder ClassBuilder) (*RecordingClassBuilder, error) {
	recording, ok := builder.(*RecordingClassBuilder)
	if !ok {
		return nil, fmt.Errorf("builder %T was not produced by this factory", builder)
	}

	return recording, nil
}

// RecordingClassBuilder assembles a model.Class from the event stream and
// journals every event onto a tape for transparency checks.
type RecordingClassBuilder struct {
	origin model.Origin
	class  model.Class
	tape   pkg.Tape[Event]
	begun  bool
	done   bool
}

// Origin returns the declaration origin the builder was created for.
func (b *RecordingClassBuilder) Origin() model.Origin {
	return b.origin
}

// Class returns the assembled class.
func (b *RecordingClassBuilder) Class() *model.Class {
	return &b.class
}

// Tape returns the journal of events received so far.
func (b *RecordingClassBuilder) Tape() pkg.Tape[Event] {
	return b.tape
}

// BeginClass records the structural metadata of the class definition.
func (b *RecordingClassBuilder) BeginClass(origin model.Origin, info model.ClassInfo) error {
	if b.begun {
		return fmt.Errorf("class %s already begun", b.class.Info.Name)
	}

	b.begun = true
	b.class.Info = info

	return b.tape.Append(Event{Op: OpBeginClass, Origin: origin, Class: info})
}

// NewMethod records a method definition and returns its handle.
func (b *RecordingClassBuilder) NewMethod(origin model.Origin, info model.MethodInfo) (MethodBuilder, error) {
	if err := b.requireOpen(); err != nil {
		return nil, err
	}

	b.class.Methods = append(b.class.Methods, model.Method{Info: info})

	if err := b.tape.Append(Event{Op: OpMethod, Origin: origin, Method: info}); err != nil {
		return nil, err
	}

	return &recordingMethodBuilder{class: b, index: len(b.class.Methods) - 1}, nil
}

// NewField records a field definition.
func (b *RecordingClassBuilder) NewField(origin model.Origin, info model.FieldInfo) error {
	if err := b.requireOpen(); err != nil {
		return err
	}

	b.class.Fields = append(b.class.Fields, model.Field{Info: info})

	return b.tape.Append(Event{Op: OpField, Origin: origin, Field: info})
}

// NewAnnotation records a class-level annotation entry.
func (b *RecordingClassBuilder) NewAnnotation(descriptor string, visible bool) error {
	if err := b.requireOpen(); err != nil {
		return err
	}

	annotation := model.Annotation{Descriptor: descriptor, Visible: visible}
	b.class.Annotations = append(b.class.Annotations, annotation)

	return b.tape.Append(Event{Op: OpAnnotation, Annotation: annotation})
}

// Source records the originating source file name.
func (b *RecordingClassBuilder) Source(file string) error {
	if err := b.requireOpen(); err != nil {
		return err
	}

	b.class.SourceFile = file

	return b.tape.Append(Event{Op: OpSource, SourceFile: file})
}

// Done finishes the class definition.
func (b *RecordingClassBuilder) Done() error {
	if err := b.requireOpen(); err != nil {
		return err
	}

	b.done = true

	return b.tape.Append(Event{Op: OpDone})
}

func (b *RecordingClassBuilder) requireOpen() error {
	if !b.begun {
		return fmt.Errorf("class definition has not begun")
	}

	if b.done {
		return fmt.Errorf("class %s already finished", b.class.Info.Name)
	}

	return nil
}

// recordingMethodBuilder is the per-method handle returned by NewMethod. The
// method lives in the parent builder's slice; the handle resolves it by index
// so later appends do not invalidate it.
type recordingMethodBuilder struct {
	class *RecordingClassBuilder
	index int
}

// NewAnnotation attaches an annotation entry to the method.
func (mb *recordingMethodBuilder) NewAnnotation(descriptor string, visible bool) error {
	if descriptor == "" {
		return fmt.Errorf("empty annotation descriptor")
	}

	method := &mb.class.class.Methods[mb.index]
	annotation := model.Annotation{Descriptor: descriptor, Visible: visible}
	method.Annotations = append(method.Annotations, annotation)

	return mb.class.tape.Append(Event{
		Op:         OpMethodAnnotation,
		Annotation: annotation,
		MethodName: method.Info.Name,
	})
}

// Done finishes the method definition.
func (mb *recordingMethodBuilder) Done() error {
	return nil
}
