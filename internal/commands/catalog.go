package commands

import (
	"fmt"

	"github.com/KAYAMAc/tui/internal/k8s"
)

// ForKind returns the operations offered for a resource kind, in the
// order they appear on the operation screen. Unknown kinds are a
// programming error.
func ForKind(kind k8s.Kind) []Operation {
	switch kind {
	case k8s.KindPod:
		return []Operation{
			describeOp(),
			newOp("logs", "GetLogs", TierSafe, logsArgs),
			newOp("previous-logs", "GetPreviousLogs", TierSafe, previousLogsArgs),
			newOp("exec-shell", "ExecShell", TierInteractive, execShellArgs),
			portForwardOp(),
			editOp(),
			deleteOp(),
		}
	case k8s.KindService:
		return []Operation{
			describeOp(),
			portForwardOp(),
			editOp(),
			deleteOp(),
		}
	case k8s.KindDeployment:
		return []Operation{
			describeOp(),
			newOp("scale", "Scale", TierDestructive, scaleArgs),
			newOp("restart-rollout", "RestartRollout", TierSafe, rolloutRestartArgs),
			newOp("rollout-status", "RolloutStatus", TierSafe, rolloutStatusArgs),
			editOp(),
			deleteOp(),
		}
	case k8s.KindConfigMap, k8s.KindSecret:
		return []Operation{
			describeOp(),
			viewDataOp(),
			editOp(),
			deleteOp(),
		}
	}
	panic(fmt.Sprintf("no operations for resource kind %d", int(kind)))
}

// ValidateCatalog checks the tier/mode pairing of every operation of
// every kind. Destructive operations must never execute directly.
func ValidateCatalog() error {
	for _, kind := range k8s.AllKinds {
		for _, op := range ForKind(kind) {
			if op.Tier == TierDestructive && op.Mode == ModeExecuteImmediately {
				return fmt.Errorf("operation %s for %s is destructive but executes immediately", op.ID, kind)
			}
			if op.Mode != modeFor(op.Tier) {
				return fmt.Errorf("operation %s for %s pairs tier %s with mode %s, want %s",
					op.ID, kind, op.Tier, op.Mode, modeFor(op.Tier))
			}
			if op.Build == nil {
				return fmt.Errorf("operation %s for %s has no command builder", op.ID, kind)
			}
		}
	}
	return nil
}

// Operations shared by several kinds.

func describeOp() Operation {
	return newOp("describe", "Describe", TierSafe, describeArgs)
}

func portForwardOp() Operation {
	return newOp("port-forward", "PortForward", TierInteractive, portForwardArgs)
}

func editOp() Operation {
	return newOp("edit", "Edit", TierInteractive, editArgs)
}

func deleteOp() Operation {
	return newOp("delete", "Delete", TierDestructive, deleteArgs)
}

func viewDataOp() Operation {
	op := newOp("view-data", "ViewData", TierSafe, viewDataArgs)
	op.Render = renderDataKeys
	return op
}

// Command builders. Arguments follow kubectl's verb-first layout; the
// client appends --kubeconfig/--context when the command is rendered or
// run.

func describeArgs(t Target) []string {
	return []string{"describe", t.Kind.Singular(), t.Name, "-n", t.Namespace}
}

func logsArgs(t Target) []string {
	return []string{"logs", t.Name, "-n", t.Namespace, "--tail=100"}
}

func previousLogsArgs(t Target) []string {
	return append(logsArgs(t), "--previous")
}

func execShellArgs(t Target) []string {
	return []string{"exec", "-it", t.Name, "-n", t.Namespace, "--", "/bin/sh"}
}

func portForwardArgs(t Target) []string {
	name := t.Name
	if t.Kind == k8s.KindService {
		name = "service/" + t.Name
	}
	return []string{"port-forward", name, "8080:8080", "-n", t.Namespace}
}

func editArgs(t Target) []string {
	return []string{"edit", t.Kind.Singular(), t.Name, "-n", t.Namespace}
}

func deleteArgs(t Target) []string {
	return []string{"delete", t.Kind.Singular(), t.Name, "-n", t.Namespace}
}

// scaleArgs keeps the replica count as a placeholder: scale is staged,
// never run, and the operator fills in the count when pasting.
func scaleArgs(t Target) []string {
	return []string{"scale", t.Kind.Singular(), t.Name, "--replicas=<n>", "-n", t.Namespace}
}

func rolloutRestartArgs(t Target) []string {
	return []string{"rollout", "restart", "deployment/" + t.Name, "-n", t.Namespace}
}

func rolloutStatusArgs(t Target) []string {
	return []string{"rollout", "status", "deployment/" + t.Name, "-n", t.Namespace}
}

func viewDataArgs(t Target) []string {
	return []string{"get", t.Kind.Singular(), t.Name, "-n", t.Namespace, "-o", "json"}
}

func renderDataKeys(t Target, output string) (string, error) {
	return k8s.FormatDataKeys(t.Kind, output)
}
