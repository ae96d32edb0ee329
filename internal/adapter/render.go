package adapter

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"classmark.dev/pkg/classmark/internal/model"
)

// renderText produces a javap-like listing of the assembled class. The
// output is deterministic: entries appear in arrival order.
func renderText(c *model.Class) string {
	var b strings.Builder

	if c.SourceFile != "" {
		fmt.Fprintf(&b, "// source: %s\n", c.SourceFile)
	}

	fmt.Fprintf(&b, "class %s", c.Info.Name)

	if c.Info.SuperName != "" {
		fmt.Fprintf(&b, " extends %s", c.Info.SuperName)
	}

	if len(c.Info.Interfaces) > 0 {
		fmt.Fprintf(&b, " implements %s", strings.Join(c.Info.Interfaces, ", "))
	}

	b.WriteString(" {\n")
	fmt.Fprintf(&b, "  version %d\n", c.Info.Version)

	if names := c.Info.Access.Names(); len(names) > 0 {
		fmt.Fprintf(&b, "  access %s\n", strings.Join(names, " "))
	}

	if c.Info.Signature != "" {
		fmt.Fprintf(&b, "  signature %s\n", c.Info.Signature)
	}

	for _, annotation := range c.Annotations {
		fmt.Fprintf(&b, "  @%s %s\n", annotation.Descriptor, retention(annotation))
	}

	for _, field := range c.Fields {
		fmt.Fprintf(&b, "  field %s%s %s\n", modifiers(field.Info.Access), field.Info.Name, field.Info.Descriptor)
	}

	for _, method := range c.Methods {
		fmt.Fprintf(&b, "  method %s%s%s", modifiers(method.Info.Access), method.Info.Name, method.Info.Descriptor)

		if len(method.Info.Exceptions) > 0 {
			fmt.Fprintf(&b, " throws %s", strings.Join(method.Info.Exceptions, ", "))
		}

		b.WriteString("\n")

		for _, annotation := range method.Annotations {
			fmt.Fprintf(&b, "    @%s %s\n", annotation.Descriptor, retention(annotation))
		}
	}

	b.WriteString("}\n")

	return b.String()
}

func modifiers(access model.Access) string {
	names := access.Names()
	if len(names) == 0 {
		return ""
	}

	return strings.Join(names, " ") + " "
}

func retention(annotation model.Annotation) string {
	if annotation.Visible {
		return "visible"
	}

	return "invisible"
}

// Binary format identifiers. The format is the recorder's own: a magic tag,
// a format version, then length-prefixed records in arrival order.
var binaryMagic = [4]byte{'C', 'M', 'R', 'K'}

const binaryFormatVersion uint16 = 1

// renderBytes serializes the assembled class deterministically. Invisible
// annotations are kept in the artifact but flagged non-retained, mirroring
// the split between runtime-visible and runtime-invisible annotation sets.
func renderBytes(c *model.Class) ([]byte, error) {
	var buf bytes.Buffer

	buf.Write(binaryMagic[:])
	writeUint16(&buf, binaryFormatVersion)

	writeString(&buf, c.Info.Name)
	writeUint32(&buf, uint32(c.Info.Version))
	writeUint32(&buf, uint32(c.Info.Access))
	writeString(&buf, c.Info.Signature)
	writeString(&buf, c.Info.SuperName)
	writeStrings(&buf, c.Info.Interfaces)
	writeString(&buf, c.SourceFile)

	writeAnnotations(&buf, c.Annotations)

	writeUint16(&buf, uint16(len(c.Fields)))

	for _, field := range c.Fields {
		writeUint32(&buf, uint32(field.Info.Access))
		writeString(&buf, field.Info.Name)
		writeString(&buf, field.Info.Descriptor)
		writeString(&buf, field.Info.Signature)
	}

	writeUint16(&buf, uint16(len(c.Methods)))

	for _, method := range c.Methods {
		writeUint32(&buf, uint32(method.Info.Access))
		writeString(&buf, method.Info.Name)
		writeString(&buf, method.Info.Descriptor)
		writeString(&buf, method.Info.Signature)
		writeStrings(&buf, method.Info.Exceptions)
		writeAnnotations(&buf, method.Annotations)
	}

	return buf.Bytes(), nil
}

func writeAnnotations(buf *bytes.Buffer, annotations []model.Annotation) {
	visible := make([]model.Annotation, 0, len(annotations))
	invisible := make([]model.Annotation, 0, len(annotations))

	for _, annotation := range annotations {
		if annotation.Visible {
			visible = append(visible, annotation)
		} else {
			invisible = append(invisible, annotation)
		}
	}

	for _, set := range [][]model.Annotation{visible, invisible} {
		writeUint16(buf, uint16(len(set)))

		for _, annotation := range set {
			writeString(buf, annotation.Descriptor)
		}
	}
}

func writeString(buf *bytes.Buffer, s string) {
	writeUint16(buf, uint16(len(s)))
	buf.WriteString(s)
}

func writeStrings(buf *bytes.Buffer, values []string) {
	writeUint16(buf, uint16(len(values)))

	for _, value := range values {
		writeString(buf, value)
	}
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var raw [2]byte

	binary.BigEndian.PutUint16(raw[:], v)
	buf.Write(raw[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var raw [4]byte

	binary.BigEndian.PutUint32(raw[:], v)
	buf.Write(raw[:])
}
