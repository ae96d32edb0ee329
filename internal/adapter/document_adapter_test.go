package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "classmark.dev/pkg/classmark/internal/model"
)

func TestYAMLDocumentAdapterParse(t *testing.T) {
	adapter := NewYAMLDocumentAdapter()

	t.Run("decodes a single document", func(t *testing.T) {
		content := []byte(`name: com/example/Data
version: 52
access: [public, final]
super: java/lang/Object
source: Data.kt
origin:
  kind: explicit
  declaration: {name: Data, kind: class}
methods:
  - name: copy
    descriptor: ()Lcom/example/Data;
    access: [public]
    origin:
      kind: explicit
      declaration: {name: copy, kind: function, synthesized: true}
`)

		documents, err := adapter.Parse(content)
		require.NoError(t, err)
		require.Len(t, documents, 1)

		document := documents[0]
		assert.Equal(t, "com/example/Data", document.Name)
		assert.Equal(t, 52, document.Version)
		assert.Equal(t, []string{"public", "final"}, document.Access)
		assert.Equal(t, "java/lang/Object", document.Super)
		assert.Equal(t, "Data.kt", document.Source)

		require.NotNil(t, document.Origin.Declaration)
		assert.Equal(t, m.DeclClass, document.Origin.Declaration.Kind)

		require.Len(t, document.Methods, 1)
		method := document.Methods[0]
		assert.Equal(t, "copy", method.Name)
		require.NotNil(t, method.Origin.Declaration)
		assert.True(t, method.Origin.Declaration.Synthesized)
	})

	t.Run("decodes multiple documents separated by ---", func(t *testing.T) {
		content := []byte("name: com/example/A\nversion: 52\n---\nname: com/example/B\nversion: 52\n")

		documents, err := adapter.Parse(content)
		require.NoError(t, err)
		require.Len(t, documents, 2)
		assert.Equal(t, "com/example/A", documents[0].Name)
		assert.Equal(t, "com/example/B", documents[1].Name)
	})

	t.Run("rejects a document without a name", func(t *testing.T) {
		_, err := adapter.Parse([]byte("version: 52\n"))
		require.ErrorContains(t, err, "missing name")
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := adapter.Parse([]byte("name: [unclosed\n"))
		require.ErrorContains(t, err, "failed to decode class document")
	})

	t.Run("empty content yields no documents", func(t *testing.T) {
		documents, err := adapter.Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, documents)
	})
}
