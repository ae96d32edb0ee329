// Package model defines the data structures for class interception and marking.
package model

// Path represents a file system path.
type Path string

// DeclarationKind categorizes the semantic declaration a class or method
// event originates from.
type DeclarationKind string

const (
	// DeclClass is a class-level declaration.
	DeclClass DeclarationKind = "class"
	// DeclFunction is an ordinary function or method declaration.
	DeclFunction DeclarationKind = "function"
	// DeclProperty is a property declaration; its accessor bodies are
	// generated by the compiler unless written out by hand.
	DeclProperty DeclarationKind = "property"
	// DeclParameter is a constructor parameter declaration, the source of
	// generated component accessors and default copies.
	DeclParameter DeclarationKind = "parameter"
	// DeclField is a backing field declaration.
	DeclField DeclarationKind = "field"
)

// Declaration is a back-reference into the front end's semantic model.
// Synthesized is set when the front end itself introduced the member
// (generated overloads, data-class equality/copy/hash and similar).
type Declaration struct {
	Name        string          `yaml:"name"`
	Kind        DeclarationKind `yaml:"kind"`
	Synthesized bool            `yaml:"synthesized,omitempty"`
}

// OriginKind tags how a structural event came to exist.
type OriginKind string

const (
	// OriginExplicit marks events backed by source code the programmer wrote.
	OriginExplicit OriginKind = "explicit"
	// OriginSynthetic marks events with no corresponding source at all,
	// such as bridge methods.
	OriginSynthetic OriginKind = "synthetic"
)

// Origin describes where a class- or method-definition event came from: an
// optional semantic declaration plus an origin-kind tag. It is read-only
// input to the classifier and is never mutated by this tool.
type Origin struct {
	Declaration *Declaration `yaml:"declaration,omitempty"`
	Kind        OriginKind   `yaml:"kind,omitempty"`
}

// HasDeclaration reports whether the origin carries a semantic back-reference.
func (o Origin) HasDeclaration() bool {
	return o.Declaration != nil
}
