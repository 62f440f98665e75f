package k8s

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"
)

// FormatDataKeys renders the data section of a configmap or secret
// (fetched with `kubectl get ... -o json`) as YAML for the result view.
// Secret values stay base64 encoded, exactly as the API returns them.
func FormatDataKeys(kind Kind, jsonOutput string) (string, error) {
	switch kind {
	case KindConfigMap:
		var cm corev1.ConfigMap
		if err := json.Unmarshal([]byte(jsonOutput), &cm); err != nil {
			return "", fmt.Errorf("decode configmap: %w", err)
		}
		return renderDataYAML(cm.Name, configMapData(&cm))
	case KindSecret:
		var s corev1.Secret
		if err := json.Unmarshal([]byte(jsonOutput), &s); err != nil {
			return "", fmt.Errorf("decode secret: %w", err)
		}
		return renderDataYAML(s.Name, secretData(&s))
	}
	return "", fmt.Errorf("kind %s has no data keys", kind)
}

func configMapData(cm *corev1.ConfigMap) map[string]string {
	data := make(map[string]string, len(cm.Data)+len(cm.BinaryData))
	for k, v := range cm.Data {
		data[k] = v
	}
	for k, v := range cm.BinaryData {
		// binaryData keys are shown base64 encoded like the API stores them
		data[k] = base64.StdEncoding.EncodeToString(v)
	}
	return data
}

func secretData(s *corev1.Secret) map[string]string {
	data := make(map[string]string, len(s.Data))
	for k, v := range s.Data {
		data[k] = base64.StdEncoding.EncodeToString(v)
	}
	return data
}

func renderDataYAML(name string, data map[string]string) (string, error) {
	if len(data) == 0 {
		return fmt.Sprintf("%s has no data keys\n", name), nil
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("render data: %w", err)
	}
	return string(out), nil
}
