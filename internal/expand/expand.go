// Package expand turns decoded kamut records into Kubernetes documents.
//
// Every function in this package is pure: the same record always yields the
// same documents, and no state is kept between calls.
package expand

import (
	"github.com/kamut-io/kamut/internal/core"
	"github.com/kamut-io/kamut/internal/model"
)

// DefaultNamespace is the subject namespace of a ClusterRoleBinding whose
// record has no namespace.
const DefaultNamespace = "default"

// Options tunes expansion.
type Options struct {
	// DefaultNamespace replaces an absent record namespace where a reference
	// must be fully qualified. Empty means DefaultNamespace.
	DefaultNamespace string
}

func (o Options) subjectNamespace(ns string) string {
	switch {
	case ns != "":
		return ns
	case o.DefaultNamespace != "":
		return o.DefaultNamespace
	default:
		return DefaultNamespace
	}
}

// Names holds every name derived from a record. It is computed once per
// record and shared by all documents that reference one another.
type Names struct {
	App                string
	Service            string
	Ingress            string
	ServiceAccount     string
	ClusterRole        string
	ClusterRoleBinding string
}

// NamesFor derives the document names for a record name.
func NamesFor(name string) Names {
	return Names{
		App:                name,
		Service:            name,
		Ingress:            name + "-ingress",
		ServiceAccount:     "prometheus-" + name,
		ClusterRole:        name + "-role",
		ClusterRoleBinding: name + "-role-binding",
	}
}

// Expand returns the ordered documents implied by rec.
func Expand(rec model.Record, opts Options) []*core.Resource {
	switch r := rec.(type) {
	case *model.Workload:
		return expandWorkload(r)
	case *model.MetricsInstance:
		return expandMetricsInstance(r, opts)
	case *model.ScrapeTarget:
		return expandScrapeTarget(r)
	}
	return nil
}

// ExpandAll expands records in order and concatenates the results.
func ExpandAll(recs []model.Record, opts Options) []*core.Resource {
	var out []*core.Resource
	for _, rec := range recs {
		out = append(out, Expand(rec, opts)...)
	}
	return out
}
