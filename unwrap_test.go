// unwrap_test.go — chain flattening, root cause, and traversal.
package errkind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_SingleElementForUnlinkedError(t *testing.T) {
	t.Parallel()

	e := Domain("r", nil)
	flat := Flatten(e)
	require.Len(t, flat, 1)
	assert.Same(t, e, flat[0])
}

func TestFlatten_OutermostFirstRootLast(t *testing.T) {
	t.Parallel()

	root := Domain("root", nil)
	l1 := Wrap(root, Domain("layer1", nil))
	l2 := Wrap(l1, Infra("layer2", nil))

	flat := Flatten(l2)
	require.Len(t, flat, 3)
	assert.Same(t, l2, flat[0])
	assert.Same(t, l1, flat[1])
	assert.Same(t, root, flat[2])

	// last element has no cause
	_, ok := flat[len(flat)-1].CausedBy()
	assert.False(t, ok)
}

func TestFlatten_LengthTracksWrapCount(t *testing.T) {
	t.Parallel()

	e := Infra("base", nil)
	for i := 1; i <= 5; i++ {
		e = Wrap(e, Domain("layer", map[string]any{"depth": i}))
		assert.Len(t, Flatten(e), i+1)
	}
}

func TestFlatten_IsASnapshot(t *testing.T) {
	t.Parallel()

	inner := Infra("db_down", nil)
	outer := Wrap(inner, Domain("checkout_failed", nil))

	flat := Flatten(outer)

	// wrapping again produces a new chain; the earlier snapshot is unaffected
	_ = Wrap(Domain("later", nil), outer)
	require.Len(t, flat, 2)
	assert.Same(t, outer, flat[0])
	assert.Same(t, inner, flat[1])
}

func TestFlatten_Nil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Flatten(nil))
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	t.Run("unlinked error is its own root", func(t *testing.T) {
		t.Parallel()
		e := Infra("db_down", nil)
		assert.Same(t, e, RootCause(e))
	})

	t.Run("root of a three-level chain", func(t *testing.T) {
		t.Parallel()
		root := Domain("root", nil)
		l1 := Wrap(root, Domain("layer1", nil))
		l2 := Wrap(l1, Infra("layer2", nil))
		assert.Same(t, root, RootCause(l2))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, RootCause(nil))
	})
}

func TestRootCause_EqualsLastFlattenElement(t *testing.T) {
	t.Parallel()

	e := Wrap(Wrap(Infra("a", nil), Domain("b", nil)), Infra("c", nil))
	flat := Flatten(e)
	assert.Same(t, flat[len(flat)-1], RootCause(e))
}

func TestWalk(t *testing.T) {
	t.Parallel()

	root := Domain("root", nil)
	l1 := Wrap(root, Domain("layer1", nil))
	l2 := Wrap(l1, Infra("layer2", nil))

	t.Run("visits outermost to root", func(t *testing.T) {
		t.Parallel()
		var reasons []Reason
		Walk(l2, func(e Error) bool {
			reasons = append(reasons, e.Reason())
			return true
		})
		assert.Equal(t, []Reason{"layer2", "layer1", "root"}, reasons)
	})

	t.Run("stops early when visit returns false", func(t *testing.T) {
		t.Parallel()
		var visited int
		Walk(l2, func(Error) bool {
			visited++
			return visited < 2
		})
		assert.Equal(t, 2, visited)
	})

	t.Run("nil-safe", func(t *testing.T) {
		t.Parallel()
		Walk(nil, func(Error) bool { return true })
		Walk(l2, nil)
	})
}
