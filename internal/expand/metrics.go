package expand

import (
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	rbacv1 "k8s.io/api/rbac/v1"

	"github.com/kamut-io/kamut/internal/core"
	"github.com/kamut-io/kamut/internal/model"
)

// MonitoringAPIVersion is the prometheus-operator API group version.
const MonitoringAPIVersion = "monitoring.coreos.com/v1"

// Fixed Prometheus web endpoint.
const (
	PrometheusPortName = "web"
	PrometheusPort     = 9090
)

var prometheusDiscoveryVerbs = []string{"get", "list", "watch"}

func expandMetricsInstance(mi *model.MetricsInstance, opts Options) []*core.Resource {
	names := NamesFor(mi.Name)

	out := []*core.Resource{
		core.NewResource(mi.Name, prometheus(mi, names)),
		core.NewResource(mi.Name, prometheusService(mi, names)),
	}
	if mi.Ingress != nil {
		out = append(out, core.NewResource(mi.Name, prometheusIngress(mi, names)))
	}
	if mi.ServiceAccount.Create {
		out = append(out, core.NewResource(mi.Name, prometheusServiceAccount(mi, names)))
		if mi.ServiceAccount.ClusterRole {
			out = append(out,
				core.NewResource(mi.Name, prometheusClusterRole(names)),
				core.NewResource(mi.Name, prometheusClusterRoleBinding(mi, names, opts)),
			)
		}
	}
	return out
}

func prometheus(mi *model.MetricsInstance, names Names) map[string]interface{} {
	spec := map[string]interface{}{
		"image":     mi.Image,
		"retention": mi.Retention,
		"podMetadata": map[string]interface{}{
			"labels": core.AppLabels(names.App),
		},
	}
	if mi.Replicas != nil {
		spec["replicas"] = int64(*mi.Replicas)
	}
	if res := resourceRequirements(mi.Resources); res != nil {
		spec["resources"] = res
	}
	if mi.NodeSelector != nil {
		spec["nodeSelector"] = stringMap(mi.NodeSelector)
		if len(mi.NodeSelector) > 0 {
			spec["tolerations"] = tolerationsFor(mi.NodeSelector)
		}
	}
	if mi.Storage != nil {
		claimSpec := map[string]interface{}{}
		if mi.Storage.Size != "" {
			claimSpec["resources"] = map[string]interface{}{
				"requests": map[string]interface{}{
					string(corev1.ResourceStorage): mi.Storage.Size,
				},
			}
		}
		if mi.Storage.ClassName != "" {
			claimSpec["storageClassName"] = mi.Storage.ClassName
		}
		spec["storage"] = map[string]interface{}{
			"volumeClaimTemplate": map[string]interface{}{
				"spec": claimSpec,
			},
		}
	}
	if mi.ServiceAccount.Create {
		spec["serviceAccountName"] = names.ServiceAccount
	}

	obj := newObject(MonitoringAPIVersion, "Prometheus", objectMeta(mi.Name, mi.Namespace, names.App))
	obj["spec"] = spec
	return obj
}

func prometheusService(mi *model.MetricsInstance, names Names) map[string]interface{} {
	obj := newObject(corev1.SchemeGroupVersion.String(), "Service",
		objectMeta(names.Service, mi.Namespace, names.App))
	obj["spec"] = map[string]interface{}{
		"type":     string(corev1.ServiceTypeClusterIP),
		"selector": core.AppLabels(names.App),
		"ports": []interface{}{
			map[string]interface{}{
				"name":       PrometheusPortName,
				"port":       int64(PrometheusPort),
				"targetPort": int64(PrometheusPort),
				"protocol":   string(corev1.ProtocolTCP),
			},
		},
	}
	return obj
}

func prometheusIngress(mi *model.MetricsInstance, names Names) map[string]interface{} {
	obj := newObject(networkingv1.SchemeGroupVersion.String(), "Ingress",
		objectMeta(names.Ingress, mi.Namespace, names.App))
	obj["spec"] = map[string]interface{}{
		"rules": []interface{}{
			map[string]interface{}{
				"host": mi.Ingress.Host,
				"http": map[string]interface{}{
					"paths": []interface{}{
						map[string]interface{}{
							"path":     "/",
							"pathType": string(networkingv1.PathTypePrefix),
							"backend": map[string]interface{}{
								"service": map[string]interface{}{
									"name": names.Service,
									"port": map[string]interface{}{
										"number": int64(PrometheusPort),
									},
								},
							},
						},
					},
				},
			},
		},
	}
	return obj
}

func prometheusServiceAccount(mi *model.MetricsInstance, names Names) map[string]interface{} {
	meta := objectMeta(names.ServiceAccount, mi.Namespace, names.App)
	if mi.ServiceAccount.Annotations != nil {
		meta["annotations"] = stringMap(mi.ServiceAccount.Annotations)
	}

	obj := newObject(corev1.SchemeGroupVersion.String(), "ServiceAccount", meta)
	obj["automountServiceAccountToken"] = true
	return obj
}

func prometheusClusterRole(names Names) map[string]interface{} {
	obj := newObject(rbacv1.SchemeGroupVersion.String(), "ClusterRole",
		clusterObjectMeta(names.ClusterRole, names.App))
	obj["rules"] = []interface{}{
		map[string]interface{}{
			"apiGroups": stringList(corev1.GroupName),
			"resources": stringList("nodes", "nodes/proxy", "services", "endpoints", "pods"),
			"verbs":     stringList(prometheusDiscoveryVerbs...),
		},
		map[string]interface{}{
			"apiGroups": stringList(networkingv1.GroupName),
			"resources": stringList("ingresses"),
			"verbs":     stringList(prometheusDiscoveryVerbs...),
		},
		map[string]interface{}{
			"nonResourceURLs": stringList("/metrics"),
			"verbs":           stringList("get"),
		},
	}
	return obj
}

func prometheusClusterRoleBinding(mi *model.MetricsInstance, names Names, opts Options) map[string]interface{} {
	obj := newObject(rbacv1.SchemeGroupVersion.String(), "ClusterRoleBinding",
		clusterObjectMeta(names.ClusterRoleBinding, names.App))
	obj["roleRef"] = map[string]interface{}{
		"apiGroup": rbacv1.GroupName,
		"kind":     "ClusterRole",
		"name":     names.ClusterRole,
	}
	obj["subjects"] = []interface{}{
		map[string]interface{}{
			"kind":      rbacv1.ServiceAccountKind,
			"name":      names.ServiceAccount,
			"namespace": opts.subjectNamespace(mi.Namespace),
		},
	}
	return obj
}
