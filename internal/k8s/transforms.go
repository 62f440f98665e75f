package k8s

import (
	"fmt"
	"strings"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Transforms convert decoded kubectl JSON objects into the row types the
// dashboard lists. Column semantics follow kubectl's own table output.

func metadataFor(om metav1.ObjectMeta) ResourceMetadata {
	return ResourceMetadata{
		Namespace: om.Namespace,
		Name:      om.Name,
		Age:       time.Since(om.CreationTimestamp.Time),
		CreatedAt: om.CreationTimestamp.Time,
	}
}

// transformPod converts a pod into its list row.
func transformPod(p *corev1.Pod) Pod {
	readyContainers := 0
	totalContainers := len(p.Status.ContainerStatuses)
	totalRestarts := int32(0)
	for _, cs := range p.Status.ContainerStatuses {
		if cs.Ready {
			readyContainers++
		}
		totalRestarts += cs.RestartCount
	}

	status := string(p.Status.Phase)
	if p.Status.Reason != "" {
		status = p.Status.Reason
	}

	return Pod{
		ResourceMetadata: metadataFor(p.ObjectMeta),
		Ready:            fmt.Sprintf("%d/%d", readyContainers, totalContainers),
		Status:           status,
		Restarts:         totalRestarts,
	}
}

// transformService converts a service into its list row.
func transformService(s *corev1.Service) Service {
	clusterIP := s.Spec.ClusterIP
	if clusterIP == "" {
		clusterIP = "<none>"
	}

	externalIP := "<none>"
	if len(s.Status.LoadBalancer.Ingress) > 0 {
		ing := s.Status.LoadBalancer.Ingress[0]
		if ing.IP != "" {
			externalIP = ing.IP
		} else if ing.Hostname != "" {
			externalIP = ing.Hostname
		}
	}
	if externalIP == "<none>" && len(s.Spec.ExternalIPs) > 0 {
		externalIP = strings.Join(s.Spec.ExternalIPs, ",")
	}
	if externalIP == "<none>" && s.Spec.Type == corev1.ServiceTypeLoadBalancer {
		externalIP = "<pending>"
	}

	return Service{
		ResourceMetadata: metadataFor(s.ObjectMeta),
		Type:             string(s.Spec.Type),
		ClusterIP:        clusterIP,
		ExternalIP:       externalIP,
		Ports:            formatServicePorts(s.Spec.Ports),
	}
}

// formatServicePorts joins service ports as "port/protocol", including
// the target port ("port:target/protocol") when it differs.
func formatServicePorts(ports []corev1.ServicePort) string {
	if len(ports) == 0 {
		return "<none>"
	}
	parts := make([]string, 0, len(ports))
	for _, p := range ports {
		portStr := fmt.Sprintf("%d", p.Port)
		if target := p.TargetPort.String(); target != "" && target != "0" && target != portStr {
			portStr = fmt.Sprintf("%s:%s", portStr, target)
		}
		parts = append(parts, fmt.Sprintf("%s/%s", portStr, p.Protocol))
	}
	return strings.Join(parts, ",")
}

// transformDeployment converts a deployment into its list row.
func transformDeployment(d *appsv1.Deployment) Deployment {
	desired := int32(0)
	if d.Spec.Replicas != nil {
		desired = *d.Spec.Replicas
	}

	return Deployment{
		ResourceMetadata: metadataFor(d.ObjectMeta),
		Ready:            fmt.Sprintf("%d/%d", d.Status.ReadyReplicas, desired),
		UpToDate:         d.Status.UpdatedReplicas,
		Available:        d.Status.AvailableReplicas,
	}
}

// transformConfigMap converts a configmap into its list row.
func transformConfigMap(cm *corev1.ConfigMap) ConfigMap {
	return ConfigMap{
		ResourceMetadata: metadataFor(cm.ObjectMeta),
		Data:             len(cm.Data) + len(cm.BinaryData),
	}
}

// transformSecret converts a secret into its list row.
func transformSecret(s *corev1.Secret) Secret {
	return Secret{
		ResourceMetadata: metadataFor(s.ObjectMeta),
		Type:             string(s.Type),
		Data:             len(s.Data),
	}
}

// transformNamespace converts a namespace into its list row.
func transformNamespace(ns *corev1.Namespace) Namespace {
	return Namespace{
		ResourceMetadata: metadataFor(ns.ObjectMeta),
		Status:           string(ns.Status.Phase),
	}
}
