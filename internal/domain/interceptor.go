package domain

import (
	"classmark.dev/pkg/classmark/internal/adapter"
	m "classmark.dev/pkg/classmark/internal/model"
)

// InterceptingFactory decorates a ClassBuilderFactory so every builder it
// produces marks compiler-generated methods. Everything except NewBuilder
// forwards verbatim to the wrapped factory; this layer introduces no new
// failure modes of its own.
type InterceptingFactory struct {
	delegate adapter.ClassBuilderFactory
	session  *Session
}

// NewInterceptingFactory wraps delegate with the annotating layer. Wrapping
// composes at most once: intercepting an already-intercepted factory returns
// it unchanged.
func NewInterceptingFactory(delegate adapter.ClassBuilderFactory, session *Session) adapter.ClassBuilderFactory {
	if intercepting, ok := delegate.(*InterceptingFactory); ok {
		return intercepting
	}

	return &InterceptingFactory{delegate: delegate, session: session}
}

// NewBuilder returns the delegate's builder wrapped in an annotating class
// builder. Each builder owns its own class context.
func (f *InterceptingFactory) NewBuilder(origin m.Origin) adapter.ClassBuilder {
	return &annotatingClassBuilder{
		ClassBuilder: f.delegate.NewBuilder(origin),
		session:      f.session,
	}
}

// AsText forwards to the delegate after unwrapping the builder argument.
func (f *InterceptingFactory) AsText(builder adapter.ClassBuilder) (string, error) {
	return f.delegate.AsText(unwrap(builder))
}

// AsBytes forwards to the delegate after unwrapping the builder argument.
func (f *InterceptingFactory) AsBytes(builder adapter.ClassBuilder) ([]byte, error) {
	return f.delegate.AsBytes(unwrap(builder))
}

// BuildMode reports the delegate's build mode.
func (f *InterceptingFactory) BuildMode() adapter.BuildMode {
	return f.delegate.BuildMode()
}

// Close releases the delegate's resources.
func (f *InterceptingFactory) Close() error {
	return f.delegate.Close()
}

// unwrap recovers the underlying builder from an annotating wrapper. Callers
// must only pass builders obtained from this same factory; anything else is
// handed to the delegate as-is.
func unwrap(builder adapter.ClassBuilder) adapter.ClassBuilder {
	if annotating, ok := builder.(*annotatingClassBuilder); ok {
		return annotating.ClassBuilder
	}

	return builder
}
