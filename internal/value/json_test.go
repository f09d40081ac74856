package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeJSON_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	v, err := DecodeJSON([]byte(`{"zeta": 1, "alpha": 2, "mid": {"b": 1, "a": 2}}`))
	require.NoError(t, err)

	obj, ok := v.(*Object)
	require.True(t, ok)
	require.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	nested, _ := obj.Get("mid")
	require.Equal(t, []string{"b", "a"}, nested.(*Object).Keys())
}

func TestDecodeJSON_NumbersKeepSourceLiterals(t *testing.T) {
	t.Parallel()

	v, err := DecodeJSON([]byte(`[1e3, 0.1, 9007199254740993]`))
	require.NoError(t, err)

	arr := v.(Array)
	require.Equal(t, Number("1e3"), arr[0])
	require.Equal(t, Number("0.1"), arr[1])
	// Would be lossy through float64.
	require.Equal(t, Number("9007199254740993"), arr[2])
}

func TestDecodeJSON_Scalars(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want Value
	}{
		{`null`, Null{}},
		{`true`, Bool(true)},
		{`"hi"`, String("hi")},
		{`-4.5`, Number("-4.5")},
	}
	for _, tc := range cases {
		v, err := DecodeJSON([]byte(tc.raw))
		require.NoError(t, err)
		require.Equal(t, tc.want, v)
	}
}

func TestDecodeJSON_RejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for name, raw := range map[string]string{
		"truncated object": `{"a": `,
		"bare garbage":     `hello`,
		"trailing data":    `{} {}`,
		"empty input":      ``,
	} {
		raw := raw
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeJSON([]byte(raw))
			require.Error(t, err)
		})
	}
}

func TestEncodeJSON_RoundTripsWithOrder(t *testing.T) {
	t.Parallel()

	const doc = `{"b": [1e3, {"y": null, "x": false}], "a": "text"}`

	v, err := DecodeJSON([]byte(doc))
	require.NoError(t, err)

	out, err := EncodeJSON(v)
	require.NoError(t, err)

	back, err := DecodeJSON(out)
	require.NoError(t, err)
	require.True(t, Equal(v, back))

	// Key order survives the round trip.
	require.Equal(t, []string{"b", "a"}, back.(*Object).Keys())
}
