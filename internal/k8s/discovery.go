package k8s

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/KAYAMAc/tui/internal/logging"
)

// ListContexts discovers kubectl contexts. Names and the current marker
// come from kubectl itself; cluster and user are merged in from the
// kubeconfig when it is readable (best effort, display metadata only).
func (c *Client) ListContexts(ctx context.Context) ([]ContextEntry, error) {
	timer := logging.Start("list contexts")
	res := c.Run(ctx, "config", "get-contexts", "-o", "name")
	if !res.Success {
		return nil, errors.New(res.ErrText)
	}

	var names []string
	for _, line := range strings.Split(res.Output, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, errors.New("no contexts found in kubeconfig")
	}

	// Exits non-zero when no current context is set; that is not an error
	// here, it just means nothing gets marked.
	current := ""
	if cur := c.Run(ctx, "config", "current-context"); cur.Success {
		current = strings.TrimSpace(cur.Output)
	}

	infos := map[string]*ContextInfo{}
	if parsed, err := parseKubeconfig(c.kubeconfigPath()); err == nil {
		for _, info := range parsed {
			infos[info.Name] = info
		}
	}

	entries := make([]ContextEntry, 0, len(names))
	for _, name := range names {
		entry := ContextEntry{Name: name, Current: name == current}
		if info, ok := infos[name]; ok {
			entry.Cluster = info.Cluster
			entry.User = info.User
		}
		entries = append(entries, entry)
	}
	logging.EndWithCount(timer, len(entries))
	return entries, nil
}

// ListNamespaces lists the namespaces of the client's context.
func (c *Client) ListNamespaces(ctx context.Context) ([]Namespace, error) {
	timer := logging.Start("list namespaces")
	res := c.Run(ctx, "get", "namespaces", "-o", "json")
	if !res.Success {
		return nil, errors.New(res.ErrText)
	}

	var list corev1.NamespaceList
	if err := json.Unmarshal([]byte(res.Output), &list); err != nil {
		return nil, fmt.Errorf("decode namespace list: %w", err)
	}

	rows := make([]Namespace, 0, len(list.Items))
	for i := range list.Items {
		rows = append(rows, transformNamespace(&list.Items[i]))
	}
	logging.EndWithCount(timer, len(rows))
	return rows, nil
}

// ListResources lists resources of one kind in a namespace. The rows
// come back in kubectl's order (sorted by name).
func (c *Client) ListResources(ctx context.Context, namespace string, kind Kind) ([]Resource, error) {
	timer := logging.Start("list " + kind.Plural())
	rows, err := c.listResources(ctx, namespace, kind)
	if err != nil {
		return nil, err
	}
	logging.EndWithCount(timer, len(rows))
	return rows, nil
}

func (c *Client) listResources(ctx context.Context, namespace string, kind Kind) ([]Resource, error) {
	res := c.Run(ctx, "get", kind.Plural(), "-n", namespace, "-o", "json")
	if !res.Success {
		return nil, errors.New(res.ErrText)
	}

	raw := []byte(res.Output)
	switch kind {
	case KindPod:
		var list corev1.PodList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode pod list: %w", err)
		}
		rows := make([]Resource, 0, len(list.Items))
		for i := range list.Items {
			rows = append(rows, transformPod(&list.Items[i]))
		}
		return rows, nil

	case KindService:
		var list corev1.ServiceList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode service list: %w", err)
		}
		rows := make([]Resource, 0, len(list.Items))
		for i := range list.Items {
			rows = append(rows, transformService(&list.Items[i]))
		}
		return rows, nil

	case KindDeployment:
		var list appsv1.DeploymentList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode deployment list: %w", err)
		}
		rows := make([]Resource, 0, len(list.Items))
		for i := range list.Items {
			rows = append(rows, transformDeployment(&list.Items[i]))
		}
		return rows, nil

	case KindConfigMap:
		var list corev1.ConfigMapList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode configmap list: %w", err)
		}
		rows := make([]Resource, 0, len(list.Items))
		for i := range list.Items {
			rows = append(rows, transformConfigMap(&list.Items[i]))
		}
		return rows, nil

	case KindSecret:
		var list corev1.SecretList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode secret list: %w", err)
		}
		rows := make([]Resource, 0, len(list.Items))
		for i := range list.Items {
			rows = append(rows, transformSecret(&list.Items[i]))
		}
		return rows, nil
	}
	panic(fmt.Sprintf("unknown kind %d", int(kind)))
}
