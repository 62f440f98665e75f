package k8s

import "time"

// Resource is any row the dashboard can list. All kind-specific row
// types embed ResourceMetadata to implement it.
type Resource interface {
	GetNamespace() string
	GetName() string
	GetAge() time.Duration
	GetCreatedAt() time.Time
}

// ResourceMetadata contains the fields shared by every listed resource.
type ResourceMetadata struct {
	Namespace string
	Name      string
	Age       time.Duration
	CreatedAt time.Time
}

func (r ResourceMetadata) GetNamespace() string    { return r.Namespace }
func (r ResourceMetadata) GetName() string         { return r.Name }
func (r ResourceMetadata) GetAge() time.Duration   { return r.Age }
func (r ResourceMetadata) GetCreatedAt() time.Time { return r.CreatedAt }

// Pod is one row of the pod list.
type Pod struct {
	ResourceMetadata
	Ready    string // "1/2"
	Status   string
	Restarts int32
}

// Service is one row of the service list.
type Service struct {
	ResourceMetadata
	Type       string
	ClusterIP  string
	ExternalIP string // "<pending>" for LoadBalancer without ingress
	Ports      string
}

// Deployment is one row of the deployment list.
type Deployment struct {
	ResourceMetadata
	Ready     string // "ready/desired"
	UpToDate  int32
	Available int32
}

// ConfigMap is one row of the configmap list.
type ConfigMap struct {
	ResourceMetadata
	Data int // number of data and binaryData keys
}

// Secret is one row of the secret list.
type Secret struct {
	ResourceMetadata
	Type string
	Data int
}

// Namespace is one row of the namespace list.
type Namespace struct {
	ResourceMetadata
	Status string
}

// ContextEntry is one row of the context list. Names come from kubectl;
// cluster and user are display metadata parsed from the kubeconfig.
type ContextEntry struct {
	Name    string
	Cluster string
	User    string
	Current bool
}
