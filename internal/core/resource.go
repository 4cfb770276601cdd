// Package core defines shared domain types used across kamut packages.
// It depends only on stdlib and k8s.io/apimachinery.
package core

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Resource is one generated Kubernetes document.
type Resource struct {
	Object *unstructured.Unstructured

	// Record is the name of the kamut record the document was expanded from.
	Record string
}

// NewResource wraps a plain object tree.
func NewResource(record string, obj map[string]interface{}) *Resource {
	return &Resource{
		Object: &unstructured.Unstructured{Object: obj},
		Record: record,
	}
}

// GVK returns the GroupVersionKind of the resource.
func (r *Resource) GVK() schema.GroupVersionKind {
	return r.Object.GroupVersionKind()
}

// Kind returns the resource kind (e.g., "Deployment").
func (r *Resource) Kind() string {
	return r.Object.GetKind()
}

// Name returns the resource name from metadata.
func (r *Resource) Name() string {
	return r.Object.GetName()
}

// Namespace returns the resource namespace from metadata.
// Empty string for cluster-scoped resources.
func (r *Resource) Namespace() string {
	return r.Object.GetNamespace()
}

// Labels returns the resource labels.
func (r *Resource) Labels() map[string]string {
	return r.Object.GetLabels()
}

// GetObject returns the underlying unstructured object.
func (r *Resource) GetObject() *unstructured.Unstructured {
	return r.Object
}

// GetGVK returns the GroupVersionKind.
func (r *Resource) GetGVK() schema.GroupVersionKind {
	return r.GVK()
}

// GetKind returns the resource kind.
func (r *Resource) GetKind() string {
	return r.Kind()
}

// GetName returns the resource name.
func (r *Resource) GetName() string {
	return r.Name()
}

// GetNamespace returns the resource namespace.
func (r *Resource) GetNamespace() string {
	return r.Namespace()
}

// GetRecord returns the source record name.
func (r *Resource) GetRecord() string {
	return r.Record
}
