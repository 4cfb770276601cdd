// Package model defines the simplified kamut record types and decodes them
// from YAML documents.
package model

// Kind selects the expansion procedure and field set of a record.
type Kind string

const (
	// KindWorkload expands into a Deployment.
	KindWorkload Kind = "Workload"

	// KindMetricsInstance expands into a Prometheus instance with its Service,
	// optional Ingress and optional identity bindings.
	KindMetricsInstance Kind = "MetricsInstance"

	// KindScrapeTarget expands into a ServiceMonitor or PodMonitor.
	KindScrapeTarget Kind = "ScrapeTarget"
)

// kindAliases maps every accepted spelling of the kind field to its Kind.
// The Kubernetes-flavoured names are the ones used by older kamut files.
var kindAliases = map[string]Kind{
	"Workload":        KindWorkload,
	"Deployment":      KindWorkload,
	"MetricsInstance": KindMetricsInstance,
	"Prometheus":      KindMetricsInstance,
	"ScrapeTarget":    KindScrapeTarget,
	"ScrapeConfig":    KindScrapeTarget,
}

// Default values materialized at parse time.
const (
	DefaultRetention      = "15d"
	DefaultScrapeInterval = "30s"
	DefaultScrapeTimeout  = "10s"
)

// Record is one decoded input document. It is implemented by *Workload,
// *MetricsInstance and *ScrapeTarget only.
type Record interface {
	// Kind returns the record's discriminator.
	Kind() Kind

	// Metadata returns the fields shared by every kind.
	Metadata() Meta

	isRecord()
}

// Meta holds the fields every record carries.
type Meta struct {
	Name      string
	Namespace string
}

// Metadata returns m.
func (m Meta) Metadata() Meta { return m }

// EnvVar is one entry of a workload's env mapping.
type EnvVar struct {
	Name  string
	Value string
}

// ResourceSpec holds opaque quantity strings. Empty means absent.
type ResourceSpec struct {
	CPU    string
	Memory string
}

// Resources holds container resource requests and limits.
type Resources struct {
	Requests *ResourceSpec
	Limits   *ResourceSpec
}

// Workload is a single-container application.
type Workload struct {
	Meta

	Image        string
	Env          []EnvVar
	Replicas     *int32
	Resources    *Resources
	NodeSelector map[string]string
}

// Kind implements Record.
func (*Workload) Kind() Kind { return KindWorkload }
func (*Workload) isRecord()  {}

// Storage describes the persistent volume claim template of a metrics instance.
type Storage struct {
	Size      string
	ClassName string
}

// Ingress exposes a metrics instance on a host.
type Ingress struct {
	Host string
}

// ServiceAccount controls the identity documents of a metrics instance.
// Create and ClusterRole are resolved at parse time and default to true,
// whether or not the service_account section was written.
type ServiceAccount struct {
	Create      bool
	ClusterRole bool
	Annotations map[string]string
}

// MetricsInstance is a Prometheus server.
type MetricsInstance struct {
	Meta

	Image          string
	Replicas       *int32
	Resources      *Resources
	NodeSelector   map[string]string
	Retention      string
	Storage        *Storage
	Ingress        *Ingress
	ServiceAccount ServiceAccount
}

// Kind implements Record.
func (*MetricsInstance) Kind() Kind { return KindMetricsInstance }
func (*MetricsInstance) isRecord()  {}

// ScrapeRole selects what a scrape target discovers.
type ScrapeRole string

const (
	ScrapeRoleService   ScrapeRole = "service"
	ScrapeRoleEndpoints ScrapeRole = "endpoints"
	ScrapeRolePod       ScrapeRole = "pod"
)

// ScrapeTarget describes a set of endpoints Prometheus should scrape.
type ScrapeTarget struct {
	Meta

	// Role is empty when not set.
	Role           ScrapeRole
	ScrapeInterval string
	ScrapeTimeout  string
	MetricsPath    string
	Labels         map[string]string

	// Port is the normalized port, either a port name or a decimal number.
	Port string
}

// Kind implements Record.
func (*ScrapeTarget) Kind() Kind { return KindScrapeTarget }
func (*ScrapeTarget) isRecord()  {}
