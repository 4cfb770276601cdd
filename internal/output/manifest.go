package output

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/kamut-io/kamut/internal/core"
)

// Compile-time assertion: *core.Resource satisfies ResourceInfo.
var _ ResourceInfo = (*core.Resource)(nil)

// ResourceInfo provides information about a resource for output formatting.
type ResourceInfo interface {
	GetObject() *unstructured.Unstructured
	GetGVK() schema.GroupVersionKind
	GetKind() string
	GetName() string
	GetNamespace() string
	GetRecord() string
}

// WriteManifests writes resources as YAML documents separated by ---,
// in the order given.
func WriteManifests(resources []ResourceInfo, w io.Writer) error {
	if len(resources) == 0 {
		return nil
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	for _, res := range resources {
		if err := encoder.Encode(res.GetObject().Object); err != nil {
			return fmt.Errorf("encoding resource %s/%s: %w",
				res.GetKind(), res.GetName(), err)
		}
	}

	return encoder.Close()
}

// RenderManifests returns the YAML stream WriteManifests would write.
func RenderManifests(resources []ResourceInfo) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteManifests(resources, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeManifests reads a multi-document YAML stream back into objects.
// Empty documents are skipped. Integers decode as int64.
func DecodeManifests(data []byte) ([]*unstructured.Unstructured, error) {
	reader := utilyaml.NewYAMLReader(bufio.NewReader(bytes.NewReader(data)))

	var out []*unstructured.Unstructured
	for {
		doc, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading manifest document: %w", err)
		}
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}

		j, err := sigsyaml.YAMLToJSON(doc)
		if err != nil {
			return nil, fmt.Errorf("decoding manifest document %d: %w", len(out)+1, err)
		}
		if string(j) == "null" {
			continue
		}

		obj := &unstructured.Unstructured{}
		if err := obj.UnmarshalJSON(j); err != nil {
			return nil, fmt.Errorf("decoding manifest document %d: %w", len(out)+1, err)
		}
		out = append(out, obj)
	}
}
