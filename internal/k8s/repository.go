package k8s

import "context"

// Lister is the query surface the screens depend on. Client implements
// it by shelling out to kubectl; tests implement it with canned rows.
type Lister interface {
	ListContexts(ctx context.Context) ([]ContextEntry, error)
	ListNamespaces(ctx context.Context) ([]Namespace, error)
	ListResources(ctx context.Context, namespace string, kind Kind) ([]Resource, error)
}

// CommandRunner runs kubectl invocations and renders their command
// lines. The operation dispatcher depends on this instead of the
// concrete client so tests can prove nothing gets spawned.
type CommandRunner interface {
	Run(ctx context.Context, args ...string) Result
	CommandLine(args ...string) string
	Context() string
}

var (
	_ Lister        = (*Client)(nil)
	_ CommandRunner = (*Client)(nil)
)
