package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamut-io/kamut/internal/core"
)

func testResources() []ResourceInfo {
	return []ResourceInfo{
		core.NewResource("prom", map[string]interface{}{
			"apiVersion": "monitoring.coreos.com/v1",
			"kind":       "Prometheus",
			"metadata":   map[string]interface{}{"name": "prom"},
			"spec":       map[string]interface{}{"replicas": int64(2)},
		}),
		core.NewResource("prom", map[string]interface{}{
			"apiVersion": "v1",
			"kind":       "Service",
			"metadata":   map[string]interface{}{"name": "prom"},
		}),
		core.NewResource("prom", map[string]interface{}{
			"apiVersion": "rbac.authorization.k8s.io/v1",
			"kind":       "ClusterRole",
			"metadata":   map[string]interface{}{"name": "prom-role"},
		}),
	}
}

func TestWriteManifests_PreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteManifests(testResources(), &buf))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "\n---\n"), "documents should be separated by ---")
	iProm := strings.Index(out, "kind: Prometheus")
	iSvc := strings.Index(out, "kind: Service")
	iRole := strings.Index(out, "kind: ClusterRole")
	assert.True(t, iProm < iSvc && iSvc < iRole, "documents should keep input order:\n%s", out)
	assert.Contains(t, out, "spec:\n  replicas: 2\n", "two-space indentation")
}

func TestWriteManifests_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteManifests(nil, &buf))
	assert.Empty(t, buf.String())
}

func TestDecodeManifests_RoundTrip(t *testing.T) {
	data, err := RenderManifests(testResources())
	require.NoError(t, err)

	objs, err := DecodeManifests(data)
	require.NoError(t, err)
	require.Len(t, objs, 3)
	assert.Equal(t, "Prometheus", objs[0].GetKind())
	assert.Equal(t, "Service", objs[1].GetKind())
	assert.Equal(t, "prom-role", objs[2].GetName())
	assert.Equal(t, int64(2), objs[0].Object["spec"].(map[string]interface{})["replicas"])
}

func TestDecodeManifests_SkipsEmptyDocuments(t *testing.T) {
	objs, err := DecodeManifests([]byte("---\n# comment\n---\napiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: a\n---\n"))
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, "ConfigMap", objs[0].GetKind())
}
