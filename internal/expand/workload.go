package expand

import (
	appsv1 "k8s.io/api/apps/v1"

	"github.com/kamut-io/kamut/internal/core"
	"github.com/kamut-io/kamut/internal/model"
)

func expandWorkload(w *model.Workload) []*core.Resource {
	names := NamesFor(w.Name)

	container := map[string]interface{}{
		"name":  w.Name,
		"image": w.Image,
	}
	if len(w.Env) > 0 {
		env := make([]interface{}, 0, len(w.Env))
		for _, e := range w.Env {
			env = append(env, map[string]interface{}{"name": e.Name, "value": e.Value})
		}
		container["env"] = env
	}
	if res := resourceRequirements(w.Resources); res != nil {
		container["resources"] = res
	}

	podSpec := map[string]interface{}{
		"containers": []interface{}{container},
	}
	if w.NodeSelector != nil {
		podSpec["nodeSelector"] = stringMap(w.NodeSelector)
	}

	spec := map[string]interface{}{
		"selector": map[string]interface{}{
			"matchLabels": core.AppLabels(names.App),
		},
		"template": map[string]interface{}{
			"metadata": map[string]interface{}{
				"labels": core.AppLabels(names.App),
			},
			"spec": podSpec,
		},
	}
	if w.Replicas != nil {
		spec["replicas"] = int64(*w.Replicas)
	}

	obj := newObject(appsv1.SchemeGroupVersion.String(), "Deployment",
		objectMeta(w.Name, w.Namespace, names.App))
	obj["spec"] = spec

	return []*core.Resource{core.NewResource(w.Name, obj)}
}
