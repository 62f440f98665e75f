package k8s

import (
	"errors"
	"fmt"
	"sort"

	"k8s.io/client-go/tools/clientcmd"
)

// kubeconfigPath returns the explicit kubeconfig path, or the default
// location client-go would use (honors KUBECONFIG).
func (c *Client) kubeconfigPath() string {
	if c.kubeconfig != "" {
		return c.kubeconfig
	}
	return clientcmd.NewDefaultClientConfigLoadingRules().GetDefaultFilename()
}

// ContextInfo holds context metadata parsed from kubeconfig. Parsing is
// only used to decorate the context list; cluster access itself always
// goes through the kubectl binary.
type ContextInfo struct {
	Name      string
	Cluster   string
	User      string
	Namespace string
}

// parseKubeconfig loads kubeconfig and extracts all contexts
func parseKubeconfig(kubeconfigPath string) ([]*ContextInfo, error) {
	config, err := clientcmd.LoadFromFile(kubeconfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	contexts := make([]*ContextInfo, 0, len(config.Contexts))
	for name, ctx := range config.Contexts {
		contexts = append(contexts, &ContextInfo{
			Name:      name,
			Cluster:   ctx.Cluster,
			User:      ctx.AuthInfo,
			Namespace: ctx.Namespace,
		})
	}

	// Sort alphabetically by name to ensure stable order
	// This prevents context list position shifts caused by Go map iteration non-determinism
	sort.Slice(contexts, func(i, j int) bool {
		return contexts[i].Name < contexts[j].Name
	})

	return contexts, nil
}

// GetCurrentContext returns the current context set in the kubeconfig.
// An empty path means the default location.
func GetCurrentContext(kubeconfigPath string) (string, error) {
	if kubeconfigPath == "" {
		kubeconfigPath = clientcmd.NewDefaultClientConfigLoadingRules().GetDefaultFilename()
	}
	config, err := clientcmd.LoadFromFile(kubeconfigPath)
	if err != nil {
		return "", fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	if config.CurrentContext == "" {
		return "", errors.New("no current context set in kubeconfig")
	}
	return config.CurrentContext, nil
}
