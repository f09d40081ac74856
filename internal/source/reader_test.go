package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/confmerge/internal/value"
)

func parse(t *testing.T, path, raw string) (value.Value, error) {
	t.Helper()
	return NewOSReader().Parse(context.Background(), path, []byte(raw))
}

func TestParse_JSONWithCommentsAndTrailingCommas(t *testing.T) {
	t.Parallel()

	v, err := parse(t, "/cfg/app.json", `{
		// primary endpoint
		"host": "localhost",
		/* legacy port */
		"port": 8080,
	}`)

	require.NoError(t, err)
	obj := v.(*value.Object)
	require.Equal(t, []string{"host", "port"}, obj.Keys())
	port, _ := obj.Get("port")
	require.Equal(t, value.Number("8080"), port)
}

func TestParse_UnknownExtensionTreatedAsJSON(t *testing.T) {
	t.Parallel()

	v, err := parse(t, "/cfg/app.conf", `{"a": 1}`)

	require.NoError(t, err)
	require.Equal(t, value.KindObject, v.Kind())
}

func TestParse_JSONErrorIsWrapped(t *testing.T) {
	t.Parallel()

	_, err := parse(t, "/cfg/app.json", `{"a": `)

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid JSON")
}

func TestParse_YAMLByExtension(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/cfg/app.yaml", "/cfg/app.yml"} {
		v, err := parse(t, path, "name: demo\nreplicas: 3\n")
		require.NoError(t, err)

		obj := v.(*value.Object)
		require.Equal(t, []string{"name", "replicas"}, obj.Keys())
	}
}

func TestParse_YAMLErrorIsWrapped(t *testing.T) {
	t.Parallel()

	_, err := parse(t, "/cfg/app.yaml", "a: [1,\n")

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid YAML")
}

func TestParse_HCLAttributesInSourceOrder(t *testing.T) {
	t.Parallel()

	v, err := parse(t, "/cfg/app.hcl", `
zeta  = "last-name-first"
alpha = 42
list  = [1, "two", true, null]
`)

	require.NoError(t, err)
	obj := v.(*value.Object)
	require.Equal(t, []string{"zeta", "alpha", "list"}, obj.Keys())

	alpha, _ := obj.Get("alpha")
	require.Equal(t, value.Number("42"), alpha)

	list, _ := obj.Get("list")
	require.True(t, value.Equal(
		value.Array{value.Number("1"), value.String("two"), value.Bool(true), value.Null{}},
		list))
}

func TestParse_HCLNestedObjects(t *testing.T) {
	t.Parallel()

	v, err := parse(t, "/cfg/app.hcl", `
server = {
  host = "localhost"
  port = 8080
}
`)

	require.NoError(t, err)
	server, ok := v.(*value.Object).Get("server")
	require.True(t, ok)

	nested := server.(*value.Object)
	require.True(t, nested.Has("host"))
	port, _ := nested.Get("port")
	require.Equal(t, value.Number("8080"), port)
}

func TestParse_HCLErrorIsWrapped(t *testing.T) {
	t.Parallel()

	_, err := parse(t, "/cfg/app.hcl", `broken = {`)

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid HCL")
}

func TestReadFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewOSReader().ReadFile(context.Background(), "/does/not/exist.json")

	require.Error(t, err)
}
