// Package domain contains the core interception and classification logic.
package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"classmark.dev/pkg/classmark/internal/adapter"
	m "classmark.dev/pkg/classmark/internal/model"
)

// Session is the process-wide configuration of one interception run: the
// marker annotation to apply, its retention, the diagnostic sink and the
// name-encoding function. It is immutable once constructed.
type Session struct {
	marker  string
	visible bool
	sink    adapter.DiagnosticSink
	encode  func(string) string
}

// SessionOption customizes session construction.
type SessionOption func(*Session)

// WithNameEncoder replaces the default JVM-descriptor name encoding.
func WithNameEncoder(encode func(string) string) SessionOption {
	return func(s *Session) {
		s.encode = encode
	}
}

var sessionValidator = newSessionValidator()

func newSessionValidator() *validator.Validate {
	validate := validator.New()

	// Registration only fails for empty tags, which would be a programming
	// error here.
	if err := validate.RegisterValidation("fqname", validFQName); err != nil {
		panic(err)
	}

	return validate
}

// validFQName accepts dotted qualified type names such as
// "com.example.Generated".
func validFQName(fl validator.FieldLevel) bool {
	name := fl.Field().String()

	for _, segment := range strings.Split(name, ".") {
		if !validIdentifier(segment) {
			return false
		}
	}

	return true
}

func validIdentifier(segment string) bool {
	if segment == "" {
		return false
	}

	for i, r := range segment {
		if unicode.IsLetter(r) || r == '_' || r == '$' {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}

// NewSession builds a Session from the provided configuration. Invalid
// configuration is a fatal error, reported before any class is processed.
func NewSession(config m.Config, sink adapter.DiagnosticSink, options ...SessionOption) (*Session, error) {
	if err := sessionValidator.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid marker annotation name %q: %w", config.Marker, err)
	}

	if sink == nil {
		return nil, fmt.Errorf("missing diagnostic sink")
	}

	session := &Session{
		marker:  config.Marker,
		visible: config.Visible,
		sink:    sink,
		encode:  EncodeBinaryName,
	}

	for _, option := range options {
		option(session)
	}

	return session, nil
}

// Marker returns the configured fully qualified marker annotation name.
func (s *Session) Marker() string {
	return s.marker
}

// MarkerDescriptor returns the marker name in encoded descriptor form.
func (s *Session) MarkerDescriptor() string {
	return s.encode(s.marker)
}

// Visible reports whether the marker is retained in the serialized artifact.
func (s *Session) Visible() bool {
	return s.visible
}

// EncodeBinaryName turns a dotted qualified name into a JVM-style type
// descriptor: "com.example.Generated" becomes "Lcom/example/Generated;".
func EncodeBinaryName(name string) string {
	return "L" + strings.ReplaceAll(name, ".", "/") + ";"
}
