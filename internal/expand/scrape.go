package expand

import (
	"github.com/kamut-io/kamut/internal/core"
	"github.com/kamut-io/kamut/internal/model"
)

// MonitorKind returns the prometheus-operator kind a scrape target expands to.
func MonitorKind(role model.ScrapeRole) string {
	if role == model.ScrapeRolePod {
		return "PodMonitor"
	}
	return "ServiceMonitor"
}

func expandScrapeTarget(st *model.ScrapeTarget) []*core.Resource {
	names := NamesFor(st.Name)

	endpoint := map[string]interface{}{
		"interval":      st.ScrapeInterval,
		"scrapeTimeout": st.ScrapeTimeout,
	}
	if st.MetricsPath != "" {
		endpoint["path"] = st.MetricsPath
	}
	if st.Port != "" {
		endpoint["port"] = st.Port
	}

	selector := map[string]interface{}{}
	if st.Labels != nil {
		selector["matchLabels"] = stringMap(st.Labels)
	}

	kind := MonitorKind(st.Role)
	endpointsKey := "endpoints"
	if kind == "PodMonitor" {
		endpointsKey = "podMetricsEndpoints"
	}

	obj := newObject(MonitoringAPIVersion, kind, objectMeta(st.Name, st.Namespace, names.App))
	obj["spec"] = map[string]interface{}{
		"selector":   selector,
		endpointsKey: []interface{}{endpoint},
	}
	return []*core.Resource{core.NewResource(st.Name, obj)}
}
