package pkg

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTape(t *testing.T) {
	t.Run("NewTape starts empty", func(t *testing.T) {
		tape := NewTape[int]()
		require.NotNil(t, tape)
		require.Equal(t, uint64(0), tape.Len())
	})

	t.Run("Append and Get", func(t *testing.T) {
		tape := NewTape[string]()

		require.NoError(t, tape.Append("first"))
		require.NoError(t, tape.Append("second"))

		val1, err := tape.Get(0)
		require.NoError(t, err)
		require.Equal(t, "first", val1)

		val2, err := tape.Get(1)
		require.NoError(t, err)
		require.Equal(t, "second", val2)

		val3, err := tape.Get(3)
		require.Error(t, err)
		require.Equal(t, "", val3)
	})

	t.Run("Len returns correct count", func(t *testing.T) {
		tape := NewTape[int]()

		require.Equal(t, uint64(0), tape.Len())

		require.NoError(t, tape.Append(1))
		require.Equal(t, uint64(1), tape.Len())

		require.NoError(t, tape.Append(2))
		require.NoError(t, tape.Append(3))
		require.Equal(t, uint64(3), tape.Len())
	})

	t.Run("AppendBatch adds multiple items", func(t *testing.T) {
		tape := NewTape[int]()

		require.NoError(t, tape.AppendBatch([]int{1, 2, 3}))
		require.Equal(t, uint64(3), tape.Len())

		val, err := tape.Get(2)
		require.NoError(t, err)
		require.Equal(t, 3, val)
	})

	t.Run("Range visits items in order", func(t *testing.T) {
		tape := NewTape[string]()
		require.NoError(t, tape.AppendBatch([]string{"a", "b", "c"}))

		var visited []string

		err := tape.Range(func(index uint64, item string) error {
			require.Equal(t, uint64(len(visited)), index)
			visited = append(visited, item)

			return nil
		})

		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "c"}, visited)
	})

	t.Run("Range stops on callback error", func(t *testing.T) {
		tape := NewTape[int]()
		require.NoError(t, tape.AppendBatch([]int{1, 2, 3}))

		stop := errors.New("stop")
		count := 0

		err := tape.Range(func(_ uint64, _ int) error {
			count++
			if count == 2 {
				return stop
			}

			return nil
		})

		require.ErrorIs(t, err, stop)
		require.Equal(t, 2, count)
	})

	t.Run("Snapshot is a copy", func(t *testing.T) {
		tape := NewTape[int]()
		require.NoError(t, tape.AppendBatch([]int{1, 2}))

		snapshot := tape.Snapshot()
		require.Equal(t, []int{1, 2}, snapshot)

		snapshot[0] = 99

		val, err := tape.Get(0)
		require.NoError(t, err)
		require.Equal(t, 1, val)
	})

	t.Run("Spill and ReadSpill round-trip", func(t *testing.T) {
		tape := NewTape[string]()
		require.NoError(t, tape.AppendBatch([]string{"x", "y", "z"}))

		path := filepath.Join(t.TempDir(), "tape.gob")
		require.NoError(t, tape.Spill(path))

		items, err := ReadSpill[string](path)
		require.NoError(t, err)
		require.Equal(t, []string{"x", "y", "z"}, items)
	})

	t.Run("ReadSpill fails for missing file", func(t *testing.T) {
		_, err := ReadSpill[int](filepath.Join(t.TempDir(), "missing.gob"))
		require.Error(t, err)
	})
}
