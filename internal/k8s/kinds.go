package k8s

import "fmt"

// Kind identifies a browsable resource kind. The set is closed: every
// screen, schema, and operation catalog is defined for exactly these kinds.
type Kind int

const (
	KindPod Kind = iota
	KindService
	KindDeployment
	KindConfigMap
	KindSecret
)

// AllKinds lists the browsable kinds in shortcut order (keys 1-5).
var AllKinds = []Kind{KindPod, KindService, KindDeployment, KindConfigMap, KindSecret}

// DefaultKind is the kind selected when entering a namespace.
const DefaultKind = KindPod

// String returns the display name (e.g. "Pod").
func (k Kind) String() string {
	switch k {
	case KindPod:
		return "Pod"
	case KindService:
		return "Service"
	case KindDeployment:
		return "Deployment"
	case KindConfigMap:
		return "ConfigMap"
	case KindSecret:
		return "Secret"
	}
	panic(fmt.Sprintf("unknown kind %d", int(k)))
}

// Singular returns the kubectl argument for a single resource
// (e.g. "deployment" in "kubectl delete deployment api-server").
func (k Kind) Singular() string {
	switch k {
	case KindPod:
		return "pod"
	case KindService:
		return "service"
	case KindDeployment:
		return "deployment"
	case KindConfigMap:
		return "configmap"
	case KindSecret:
		return "secret"
	}
	panic(fmt.Sprintf("unknown kind %d", int(k)))
}

// Plural returns the kubectl argument for listing (e.g. "pods").
func (k Kind) Plural() string {
	return k.Singular() + "s"
}

// Shortcut returns the digit key that selects this kind on the resource
// list screen ("1" through "5").
func (k Kind) Shortcut() string {
	for i, kind := range AllKinds {
		if kind == k {
			return fmt.Sprintf("%d", i+1)
		}
	}
	panic(fmt.Sprintf("unknown kind %d", int(k)))
}

// KindForShortcut maps a digit key back to its kind. The second return
// is false when the key is not a kind shortcut.
func KindForShortcut(key string) (Kind, bool) {
	for i, kind := range AllKinds {
		if key == fmt.Sprintf("%d", i+1) {
			return kind, true
		}
	}
	return 0, false
}
