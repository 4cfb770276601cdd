package expand

import (
	"sort"

	corev1 "k8s.io/api/core/v1"

	"github.com/kamut-io/kamut/internal/core"
	"github.com/kamut-io/kamut/internal/model"
)

// Object trees are built from the value types unstructured.Unstructured can
// deep-copy: map[string]interface{}, []interface{}, string, int64 and bool.

func newObject(apiVersion, kind string, metadata map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"apiVersion": apiVersion,
		"kind":       kind,
		"metadata":   metadata,
	}
}

func objectMeta(name, namespace, app string) map[string]interface{} {
	meta := map[string]interface{}{
		"name":   name,
		"labels": core.AppLabels(app),
	}
	if namespace != "" {
		meta["namespace"] = namespace
	}
	return meta
}

func clusterObjectMeta(name, app string) map[string]interface{} {
	return objectMeta(name, "", app)
}

func stringMap(in map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func stringList(in ...string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

// resourceRequirements copies requests and limits, leaving absent
// quantities absent.
func resourceRequirements(r *model.Resources) map[string]interface{} {
	if r == nil {
		return nil
	}
	out := map[string]interface{}{}
	if r.Requests != nil {
		out["requests"] = quantities(r.Requests)
	}
	if r.Limits != nil {
		out["limits"] = quantities(r.Limits)
	}
	return out
}

func quantities(spec *model.ResourceSpec) map[string]interface{} {
	out := map[string]interface{}{}
	if spec.CPU != "" {
		out[string(corev1.ResourceCPU)] = spec.CPU
	}
	if spec.Memory != "" {
		out[string(corev1.ResourceMemory)] = spec.Memory
	}
	return out
}

// tolerationsFor tolerates a NoSchedule taint matching every node selector
// entry, ordered by key.
func tolerationsFor(nodeSelector map[string]string) []interface{} {
	keys := make([]string, 0, len(nodeSelector))
	for k := range nodeSelector {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		out = append(out, map[string]interface{}{
			"key":      k,
			"operator": string(corev1.TolerationOpEqual),
			"value":    nodeSelector[k],
			"effect":   string(corev1.TaintEffectNoSchedule),
		})
	}
	return out
}
