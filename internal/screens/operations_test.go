package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KAYAMAc/tui/internal/commands"
	"github.com/KAYAMAc/tui/internal/k8s"
)

func deploymentTarget() commands.Target {
	return commands.Target{Kind: k8s.KindDeployment, Namespace: "billing", Name: "api-server"}
}

func TestOperationsScreenListsCatalog(t *testing.T) {
	s := NewOperationsScreen(testAppContext(nil), deploymentTarget())

	assert.Equal(t, "Operations: api-server", s.Title())
	require.Equal(t, 6, s.ItemCount())

	names := make([]string, len(s.visible))
	for i, op := range s.visible {
		names[i] = op.Name
	}
	assert.Equal(t, []string{"Describe", "Scale", "RestartRollout", "RolloutStatus", "Edit", "Delete"}, names)
}

func TestOperationsScreenRowsShowDispatch(t *testing.T) {
	s := NewOperationsScreen(testAppContext(nil), deploymentTarget())

	rows := s.list.table.Rows()
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Describe", "safe", "runs immediately"}, []string(rows[0]))
	assert.Equal(t, []string{"Scale", "destructive", "shows command with warning"}, []string(rows[1]))
	assert.Equal(t, []string{"Edit", "interactive", "shows command"}, []string(rows[4]))
}

func TestOperationsScreenSelect(t *testing.T) {
	s := NewOperationsScreen(testAppContext(nil), deploymentTarget())

	for range 5 {
		s.Update(keyMsg("down"))
	}
	_, cmd := s.Update(keyMsg("enter"))

	selected, ok := findMsg[OperationSelectedMsg](drainCmd(cmd))
	require.True(t, ok)
	assert.Equal(t, "delete", selected.Op.ID)
	assert.Equal(t, commands.ModeShowCommandWithWarning, selected.Op.Mode)
	assert.Equal(t, deploymentTarget(), selected.Target)
}

func TestOperationsScreenRefreshIsNoop(t *testing.T) {
	s := NewOperationsScreen(testAppContext(nil), deploymentTarget())

	assert.Nil(t, s.Refresh())
}

func TestOperationsScreenFilter(t *testing.T) {
	s := NewOperationsScreen(testAppContext(nil), deploymentTarget())

	s.Update(keyMsg("/"))
	typeString(s, "del")
	s.Update(keyMsg("enter"))

	require.Equal(t, 1, s.ItemCount())
	assert.Equal(t, "Delete", s.visible[0].Name)

	assert.True(t, s.HandleBack())
	assert.Equal(t, 6, s.ItemCount())
}

func TestOperationsScreenPodCatalog(t *testing.T) {
	target := commands.Target{Kind: k8s.KindPod, Namespace: "default", Name: "web-0"}
	s := NewOperationsScreen(testAppContext(nil), target)

	names := make([]string, len(s.visible))
	for i, op := range s.visible {
		names[i] = op.Name
	}
	assert.Equal(t, []string{"Describe", "GetLogs", "GetPreviousLogs", "ExecShell", "PortForward", "Edit", "Delete"}, names)
}
