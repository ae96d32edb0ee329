package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "classmark.dev/pkg/classmark/internal/model"
)

func classOrigin(name string) m.Origin {
	return m.Origin{
		Declaration: &m.Declaration{Name: name, Kind: m.DeclClass},
		Kind:        m.OriginExplicit,
	}
}

func beginExample(t *testing.T, builder ClassBuilder) {
	t.Helper()

	err := builder.BeginClass(classOrigin("Example"), m.ClassInfo{
		Version:   52,
		Access:    m.AccessPublic,
		Name:      "com/example/Example",
		SuperName: "java/lang/Object",
	})
	require.NoError(t, err)
}

func TestRecordingClassBuilder(t *testing.T) {
	t.Run("assembles a class from the event stream", func(t *testing.T) {
		factory := NewRecordingFactory(BuildFull)
		builder := factory.NewBuilder(classOrigin("Example"))

		beginExample(t, builder)

		require.NoError(t, builder.Source("Example.kt"))
		require.NoError(t, builder.NewAnnotation("Lcom/example/Tag;", true))
		require.NoError(t, builder.NewField(m.Origin{}, m.FieldInfo{
			Access:     m.AccessPrivate,
			Name:       "x",
			Descriptor: "I",
		}))

		method, err := builder.NewMethod(m.Origin{}, m.MethodInfo{
			Access:     m.AccessPublic,
			Name:       "getX",
			Descriptor: "()I",
		})
		require.NoError(t, err)
		require.NoError(t, method.NewAnnotation("Lcom/example/Generated;", true))
		require.NoError(t, method.Done())

		require.NoError(t, builder.Done())

		recording, ok := builder.(*RecordingClassBuilder)
		require.True(t, ok)

		class := recording.Class()
		assert.Equal(t, "com/example/Example", class.Info.Name)
		assert.Equal(t, "java/lang/Object", class.Info.SuperName)
		assert.Equal(t, "Example.kt", class.SourceFile)
		require.Len(t, class.Annotations, 1)
		require.Len(t, class.Fields, 1)
		assert.Equal(t, "x", class.Fields[0].Info.Name)

		getX := class.Method("getX")
		require.NotNil(t, getX)
		assert.True(t, getX.HasAnnotation("Lcom/example/Generated;"))
	})

	t.Run("rejects events before the class begins", func(t *testing.T) {
		builder := NewRecordingFactory(BuildFull).NewBuilder(m.Origin{})

		_, err := builder.NewMethod(m.Origin{}, m.MethodInfo{Name: "getX"})
		require.ErrorContains(t, err, "not begun")

		require.ErrorContains(t, builder.NewField(m.Origin{}, m.FieldInfo{Name: "x"}), "not begun")
		require.ErrorContains(t, builder.Done(), "not begun")
	})

	t.Run("rejects a second BeginClass", func(t *testing.T) {
		builder := NewRecordingFactory(BuildFull).NewBuilder(m.Origin{})

		beginExample(t, builder)

		err := builder.BeginClass(classOrigin("Example"), m.ClassInfo{Name: "com/example/Example"})
		require.ErrorContains(t, err, "already begun")
	})

	t.Run("rejects events after Done", func(t *testing.T) {
		builder := NewRecordingFactory(BuildFull).NewBuilder(m.Origin{})

		beginExample(t, builder)
		require.NoError(t, builder.Done())

		_, err := builder.NewMethod(m.Origin{}, m.MethodInfo{Name: "late"})
		require.ErrorContains(t, err, "already finished")
	})

	t.Run("rejects empty method annotation descriptors", func(t *testing.T) {
		builder := NewRecordingFactory(BuildFull).NewBuilder(m.Origin{})

		beginExample(t, builder)

		method, err := builder.NewMethod(m.Origin{}, m.MethodInfo{Name: "getX", Descriptor: "()I"})
		require.NoError(t, err)
		require.ErrorContains(t, method.NewAnnotation("", true), "empty annotation descriptor")
	})

	t.Run("method handles stay valid as more methods arrive", func(t *testing.T) {
		builder := NewRecordingFactory(BuildFull).NewBuilder(m.Origin{})

		beginExample(t, builder)

		first, err := builder.NewMethod(m.Origin{}, m.MethodInfo{Name: "first", Descriptor: "()V"})
		require.NoError(t, err)

		for i := 0; i < 16; i++ {
			_, err := builder.NewMethod(m.Origin{}, m.MethodInfo{Name: "filler", Descriptor: "()V"})
			require.NoError(t, err)
		}

		require.NoError(t, first.NewAnnotation("Lcom/example/Generated;", true))

		recording := builder.(*RecordingClassBuilder)
		assert.True(t, recording.Class().Methods[0].HasAnnotation("Lcom/example/Generated;"))
	})

	t.Run("journals every event in arrival order", func(t *testing.T) {
		builder := NewRecordingFactory(BuildFull).NewBuilder(m.Origin{})

		beginExample(t, builder)
		require.NoError(t, builder.Source("Example.kt"))

		method, err := builder.NewMethod(m.Origin{}, m.MethodInfo{Name: "getX", Descriptor: "()I"})
		require.NoError(t, err)
		require.NoError(t, method.NewAnnotation("Lcom/example/Generated;", true))
		require.NoError(t, builder.Done())

		events := builder.(*RecordingClassBuilder).Tape().Snapshot()
		ops := make([]string, 0, len(events))

		for _, event := range events {
			ops = append(ops, event.Op)
		}

		assert.Equal(t, []string{OpBeginClass, OpSource, OpMethod, OpMethodAnnotation, OpDone}, ops)
	})
}

func TestRecordingFactoryRendering(t *testing.T) {
	build := func(t *testing.T) (*RecordingFactory, ClassBuilder) {
		t.Helper()

		factory := NewRecordingFactory(BuildFull)
		builder := factory.NewBuilder(classOrigin("Example"))

		beginExample(t, builder)
		require.NoError(t, builder.Source("Example.kt"))

		method, err := builder.NewMethod(m.Origin{}, m.MethodInfo{
			Access:     m.AccessPublic,
			Name:       "getX",
			Descriptor: "()I",
		})
		require.NoError(t, err)
		require.NoError(t, method.NewAnnotation("Lcom/example/Generated;", false))
		require.NoError(t, builder.Done())

		return factory, builder
	}

	t.Run("text listing carries structure and retention", func(t *testing.T) {
		factory, builder := build(t)

		text, err := factory.AsText(builder)
		require.NoError(t, err)

		assert.Contains(t, text, "// source: Example.kt")
		assert.Contains(t, text, "class com/example/Example extends java/lang/Object {")
		assert.Contains(t, text, "method public getX()I")
		assert.Contains(t, text, "@Lcom/example/Generated; invisible")
	})

	t.Run("binary rendering is deterministic", func(t *testing.T) {
		factory, builder := build(t)

		first, err := factory.AsBytes(builder)
		require.NoError(t, err)

		second, err := factory.AsBytes(builder)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, []byte("CMRK"), first[:4])
	})

	t.Run("rejects builders from another factory", func(t *testing.T) {
		factory := NewRecordingFactory(BuildFull)

		_, err := factory.AsText(foreignBuilder{})
		require.ErrorContains(t, err, "not produced by this factory")

		_, err = factory.AsBytes(foreignBuilder{})
		require.Error(t, err)
	})

	t.Run("reports its build mode", func(t *testing.T) {
		assert.Equal(t, BuildMetadata, NewRecordingFactory(BuildMetadata).BuildMode())
		require.NoError(t, NewRecordingFactory(BuildFull).Close())
	})
}

// foreignBuilder is a ClassBuilder that did not come from a RecordingFactory.
type foreignBuilder struct{}

func (foreignBuilder) BeginClass(m.Origin, m.ClassInfo) error { return nil }

func (foreignBuilder) NewMethod(m.Origin, m.MethodInfo) (MethodBuilder, error) { return nil, nil }

func (foreignBuilder) NewField(m.Origin, m.FieldInfo) error { return nil }

func (foreignBuilder) NewAnnotation(string, bool) error { return nil }

func (foreignBuilder) Source(string) error { return nil }

func (foreignBuilder) Done() error { return nil }
