package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObject_SetPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	obj := NewObject()
	obj.Set("z", Number("1"))
	obj.Set("a", Number("2"))
	obj.Set("m", Number("3"))

	require.Equal(t, []string{"z", "a", "m"}, obj.Keys())
	require.Equal(t, 3, obj.Len())
}

func TestObject_OverwriteKeepsOriginalPosition(t *testing.T) {
	t.Parallel()

	obj := NewObject()
	obj.Set("a", Number("1"))
	obj.Set("b", Number("2"))
	obj.Set("a", String("updated"))

	require.Equal(t, []string{"a", "b"}, obj.Keys())
	v, ok := obj.Get("a")
	require.True(t, ok)
	require.Equal(t, String("updated"), v)
}

func TestObject_KeysReturnsACopy(t *testing.T) {
	t.Parallel()

	obj := NewObject()
	obj.Set("a", Null{})

	keys := obj.Keys()
	keys[0] = "mutated"

	require.Equal(t, []string{"a"}, obj.Keys())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	ordered := func(pairs ...[2]string) *Object {
		obj := NewObject()
		for _, p := range pairs {
			obj.Set(p[0], String(p[1]))
		}
		return obj
	}

	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil vs nil", nil, nil, true},
		{"nil vs null", nil, Null{}, false},
		{"null vs null", Null{}, Null{}, true},
		{"equal scalars", Number("1.5"), Number("1.5"), true},
		{"different literals", Number("1"), Number("1.0"), false},
		{"kind mismatch", String("1"), Number("1"), false},
		{"equal arrays", Array{Bool(true)}, Array{Bool(true)}, true},
		{"array length mismatch", Array{}, Array{Null{}}, false},
		{"equal objects", ordered([2]string{"a", "x"}), ordered([2]string{"a", "x"}), true},
		{"object key order matters", ordered([2]string{"a", "x"}, [2]string{"b", "y"}),
			ordered([2]string{"b", "y"}, [2]string{"a", "x"}), false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Equal(tc.a, tc.b))
		})
	}
}

func TestNative(t *testing.T) {
	t.Parallel()

	obj := NewObject()
	obj.Set("on", Bool(true))
	arr := Array{String("x"), obj, Null{}}

	native := arr.Native().([]any)
	require.Equal(t, "x", native[0])
	require.Equal(t, map[string]any{"on": true}, native[1])
	require.Nil(t, native[2])
}
