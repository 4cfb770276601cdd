package model

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Keys shared by every kind.
var metaKeys = []string{"name", "kind", "namespace"}

// ParseDocument decodes one isolated YAML document into a Record.
// Documents holding only comments or whitespace return ErrEmptyDocument.
//
// It is the entry point for callers holding a single document. The batch
// driver decodes whole files as one stream and calls Parse per node so
// error lines stay relative to the file.
func ParseDocument(data []byte) (Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DeserializationError{Message: "malformed YAML", Err: err}
	}
	if IsEmpty(&doc) {
		return nil, ErrEmptyDocument
	}
	return Parse(&doc)
}

// IsEmpty reports whether node carries no content.
func IsEmpty(node *yaml.Node) bool {
	if node == nil || node.Kind == 0 {
		return true
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return true
		}
		return IsEmpty(node.Content[0])
	}
	return isNull(node)
}

// Parse decodes a mapping node into the Record selected by its kind field.
// A missing kind yields a *MissingFieldError; every other mismatch yields a
// *DeserializationError carrying the offending field path.
func Parse(node *yaml.Node) (Record, error) {
	if IsEmpty(node) {
		return nil, ErrEmptyDocument
	}
	if node.Kind == yaml.DocumentNode {
		node = node.Content[0]
	}

	m, err := newMapping(node, "")
	if err != nil {
		return nil, err
	}

	kindNode, ok := m.lookup("kind")
	if !ok {
		return nil, &MissingFieldError{Field: "kind", Line: m.node.Line, Column: m.node.Column}
	}
	kind, err := parseKind(kindNode)
	if err != nil {
		return nil, err
	}

	meta, err := parseMeta(m)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindWorkload:
		return parseWorkload(meta, m)
	case KindMetricsInstance:
		return parseMetricsInstance(meta, m)
	case KindScrapeTarget:
		return parseScrapeTarget(meta, m)
	}
	return nil, newError("kind", kindNode, "unsupported kind "+string(kind), nil)
}

func parseKind(n *yaml.Node) (Kind, error) {
	s, err := scalarString(n, "kind")
	if err != nil {
		return "", err
	}
	kind, ok := kindAliases[s]
	if !ok {
		return "", newError("kind", n,
			fmt.Sprintf("unsupported kind %q (expected Workload, MetricsInstance or ScrapeTarget)", s), nil)
	}
	return kind, nil
}

func parseMeta(m *mapping) (Meta, error) {
	name, err := m.requiredStr("name")
	if err != nil {
		return Meta{}, err
	}
	namespace, err := m.str("namespace")
	if err != nil {
		return Meta{}, err
	}
	return Meta{Name: name, Namespace: namespace}, nil
}

func parseWorkload(meta Meta, m *mapping) (Record, error) {
	if err := m.rejectUnknown(append(metaKeys, "image", "env", "replicas", "resources", "node_selector")...); err != nil {
		return nil, err
	}

	w := &Workload{Meta: meta}
	var err error
	if w.Image, err = m.requiredStr("image"); err != nil {
		return nil, err
	}

	env, order, err := m.stringMap("env")
	if err != nil {
		return nil, err
	}
	for _, k := range order {
		w.Env = append(w.Env, EnvVar{Name: k, Value: env[k]})
	}

	if w.Replicas, err = m.int32("replicas"); err != nil {
		return nil, err
	}
	if w.Resources, err = parseResources(m); err != nil {
		return nil, err
	}
	if w.NodeSelector, _, err = m.stringMap("node_selector"); err != nil {
		return nil, err
	}
	return w, nil
}

func parseMetricsInstance(meta Meta, m *mapping) (Record, error) {
	if err := m.rejectUnknown(append(metaKeys,
		"image", "replicas", "resources", "node_selector",
		"retention", "storage", "ingress", "service_account")...); err != nil {
		return nil, err
	}

	mi := &MetricsInstance{Meta: meta}
	var err error
	if mi.Image, err = m.requiredStr("image"); err != nil {
		return nil, err
	}
	if mi.Replicas, err = m.int32("replicas"); err != nil {
		return nil, err
	}
	if mi.Resources, err = parseResources(m); err != nil {
		return nil, err
	}
	if mi.NodeSelector, _, err = m.stringMap("node_selector"); err != nil {
		return nil, err
	}
	if mi.Retention, err = m.str("retention"); err != nil {
		return nil, err
	}
	if mi.Retention == "" {
		mi.Retention = DefaultRetention
	}
	if mi.Storage, err = parseStorage(m); err != nil {
		return nil, err
	}
	if mi.Ingress, err = parseIngress(m); err != nil {
		return nil, err
	}
	if mi.ServiceAccount, err = parseServiceAccount(m); err != nil {
		return nil, err
	}
	return mi, nil
}

func parseScrapeTarget(meta Meta, m *mapping) (Record, error) {
	if err := m.rejectUnknown(append(metaKeys,
		"role", "scrapeInterval", "scrapeTimeout", "metricsPath", "labels", "port")...); err != nil {
		return nil, err
	}

	st := &ScrapeTarget{Meta: meta}
	role, err := m.str("role")
	if err != nil {
		return nil, err
	}
	if role != "" {
		st.Role = ScrapeRole(strings.ToLower(role))
		switch st.Role {
		case ScrapeRoleService, ScrapeRoleEndpoints, ScrapeRolePod:
		default:
			n, _ := m.lookup("role")
			return nil, newError("role", n,
				fmt.Sprintf("unsupported role %q (expected service, endpoints or pod)", role), nil)
		}
	}

	if st.ScrapeInterval, err = m.str("scrapeInterval"); err != nil {
		return nil, err
	}
	if st.ScrapeInterval == "" {
		st.ScrapeInterval = DefaultScrapeInterval
	}
	if st.ScrapeTimeout, err = m.str("scrapeTimeout"); err != nil {
		return nil, err
	}
	if st.ScrapeTimeout == "" {
		st.ScrapeTimeout = DefaultScrapeTimeout
	}
	if st.MetricsPath, err = m.str("metricsPath"); err != nil {
		return nil, err
	}
	if st.Labels, _, err = m.stringMap("labels"); err != nil {
		return nil, err
	}
	if st.Port, err = m.port("port"); err != nil {
		return nil, err
	}
	return st, nil
}

func parseResources(m *mapping) (*Resources, error) {
	section, err := m.child("resources")
	if err != nil || section == nil {
		return nil, err
	}
	if err := section.rejectUnknown("requests", "limits"); err != nil {
		return nil, err
	}

	r := &Resources{}
	if r.Requests, err = parseResourceSpec(section, "requests"); err != nil {
		return nil, err
	}
	if r.Limits, err = parseResourceSpec(section, "limits"); err != nil {
		return nil, err
	}
	return r, nil
}

func parseResourceSpec(m *mapping, key string) (*ResourceSpec, error) {
	section, err := m.child(key)
	if err != nil || section == nil {
		return nil, err
	}
	if err := section.rejectUnknown("cpu", "memory"); err != nil {
		return nil, err
	}

	spec := &ResourceSpec{}
	if spec.CPU, err = section.str("cpu"); err != nil {
		return nil, err
	}
	if spec.Memory, err = section.str("memory"); err != nil {
		return nil, err
	}
	return spec, nil
}

func parseStorage(m *mapping) (*Storage, error) {
	section, err := m.child("storage")
	if err != nil || section == nil {
		return nil, err
	}
	if err := section.rejectUnknown("size", "className"); err != nil {
		return nil, err
	}

	s := &Storage{}
	if s.Size, err = section.str("size"); err != nil {
		return nil, err
	}
	if s.ClassName, err = section.str("className"); err != nil {
		return nil, err
	}
	return s, nil
}

func parseIngress(m *mapping) (*Ingress, error) {
	section, err := m.child("ingress")
	if err != nil || section == nil {
		return nil, err
	}
	if err := section.rejectUnknown("host"); err != nil {
		return nil, err
	}

	host, err := section.requiredStr("host")
	if err != nil {
		return nil, err
	}
	return &Ingress{Host: host}, nil
}

func parseServiceAccount(m *mapping) (ServiceAccount, error) {
	sa := ServiceAccount{Create: true, ClusterRole: true}

	section, err := m.child("service_account")
	if err != nil || section == nil {
		return sa, err
	}
	if err := section.rejectUnknown("create", "cluster_role", "annotations"); err != nil {
		return sa, err
	}

	create, err := section.boolean("create")
	if err != nil {
		return sa, err
	}
	if create != nil {
		sa.Create = *create
	}
	clusterRole, err := section.boolean("cluster_role")
	if err != nil {
		return sa, err
	}
	if clusterRole != nil {
		sa.ClusterRole = *clusterRole
	}
	if sa.Annotations, _, err = section.stringMap("annotations"); err != nil {
		return sa, err
	}
	return sa, nil
}
