package model

// Access holds JVM-style access flags for classes, methods and fields.
type Access uint32

// Access flag bits, matching the classfile convention.
const (
	AccessPublic    Access = 0x0001
	AccessPrivate   Access = 0x0002
	AccessProtected Access = 0x0004
	AccessStatic    Access = 0x0008
	AccessFinal     Access = 0x0010
	AccessBridge    Access = 0x0040
	AccessAbstract  Access = 0x0400
	AccessSynthetic Access = 0x1000
)

var accessNames = []struct {
	bit  Access
	name string
}{
	{AccessPublic, "public"},
	{AccessPrivate, "private"},
	{AccessProtected, "protected"},
	{AccessStatic, "static"},
	{AccessFinal, "final"},
	{AccessBridge, "bridge"},
	{AccessAbstract, "abstract"},
	{AccessSynthetic, "synthetic"},
}

// Names returns the human-readable modifier names for the set bits, in
// canonical order.
func (a Access) Names() []string {
	var names []string

	for _, entry := range accessNames {
		if a&entry.bit != 0 {
			names = append(names, entry.name)
		}
	}

	return names
}

// ParseAccess builds an Access mask from modifier names. Unknown names are
// ignored so documents stay forward compatible.
func ParseAccess(names []string) Access {
	var access Access

	for _, name := range names {
		for _, entry := range accessNames {
			if entry.name == name {
				access |= entry.bit
			}
		}
	}

	return access
}

// ClassInfo carries the structural metadata of a class-definition event.
type ClassInfo struct {
	Version    int
	Access     Access
	Name       string
	Signature  string
	SuperName  string
	Interfaces []string
}

// MethodInfo carries the structural metadata of a method-definition event.
type MethodInfo struct {
	Access     Access
	Name       string
	Descriptor string
	Signature  string
	Exceptions []string
}

// FieldInfo carries the structural metadata of a field-definition event.
type FieldInfo struct {
	Access     Access
	Name       string
	Descriptor string
	Signature  string
}

// Annotation is a single annotation entry: a type descriptor plus whether it
// is retained in the serialized artifact. Marker annotations carry no
// parameters.
type Annotation struct {
	Descriptor string
	Visible    bool
}

// Method is an assembled method inside a Class.
type Method struct {
	Info        MethodInfo
	Annotations []Annotation
}

// HasAnnotation reports whether the method carries an annotation with the
// given type descriptor.
func (m Method) HasAnnotation(descriptor string) bool {
	for _, annotation := range m.Annotations {
		if annotation.Descriptor == descriptor {
			return true
		}
	}

	return false
}

// Field is an assembled field inside a Class.
type Field struct {
	Info FieldInfo
}

// Class is the in-memory class artifact assembled by the recording builder.
type Class struct {
	Info        ClassInfo
	SourceFile  string
	Annotations []Annotation
	Fields      []Field
	Methods     []Method
}

// Method returns the first method with the given name, or nil.
func (c *Class) Method(name string) *Method {
	for i := range c.Methods {
		if c.Methods[i].Info.Name == name {
			return &c.Methods[i]
		}
	}

	return nil
}
