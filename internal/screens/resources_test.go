package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KAYAMAc/tui/internal/k8s"
	"github.com/KAYAMAc/tui/internal/types"
)

func TestResourcesScreenStartsOnPods(t *testing.T) {
	s := NewResourcesScreen(testAppContext(nil), "default")

	assert.Equal(t, k8s.KindPod, s.Kind())
	assert.Equal(t, "Pods", s.Title())
}

func TestResourcesScreenLoadAndSelect(t *testing.T) {
	s := NewResourcesScreen(testAppContext(nil), "default")

	s.Update(resourcesLoadedMsg{
		kind:      k8s.KindPod,
		resources: []k8s.Resource{testPod("cache-0"), testPod("web-0")},
	})
	assert.Equal(t, 2, s.ItemCount())

	s.Update(keyMsg("down"))
	_, cmd := s.Update(keyMsg("enter"))

	selected, ok := findMsg[types.ResourceSelectedMsg](drainCmd(cmd))
	require.True(t, ok)
	assert.Equal(t, k8s.KindPod, selected.Kind)
	assert.Equal(t, "default", selected.Namespace)
	assert.Equal(t, "web-0", selected.Name)
}

func TestResourcesScreenKindSwitch(t *testing.T) {
	runner := &scriptedRunner{responses: map[string]string{
		"get services -n default -o json": `{"items":[
			{"metadata":{"name":"api","namespace":"default","creationTimestamp":"2026-08-20T10:00:00Z"},
			 "spec":{"type":"ClusterIP","clusterIP":"10.0.0.1","ports":[{"port":80,"protocol":"TCP"}]}}
		]}`,
	}}
	s := NewResourcesScreen(testAppContext(runner), "default")
	s.Update(resourcesLoadedMsg{kind: k8s.KindPod, resources: []k8s.Resource{testPod("web-0")}})

	_, cmd := s.Update(keyMsg("2"))
	require.NotNil(t, cmd)
	assert.Equal(t, k8s.KindService, s.Kind())
	assert.Equal(t, "Services", s.Title())

	// The old kind's rows are gone while the new kind loads.
	assert.Equal(t, 0, s.ItemCount())

	loaded, ok := findMsg[resourcesLoadedMsg](drainCmd(cmd))
	require.True(t, ok)
	require.NoError(t, loaded.err)
	assert.Equal(t, k8s.KindService, loaded.kind)
	s.Update(loaded)

	require.Equal(t, 1, s.ItemCount())
	svc := s.visible[0].(k8s.Service)
	assert.Equal(t, "api", svc.Name)
	assert.Equal(t, "ClusterIP", svc.Type)
	assert.Equal(t, "80/TCP", svc.Ports)
}

func TestResourcesScreenKindSwitchSameKindNoop(t *testing.T) {
	s := NewResourcesScreen(testAppContext(nil), "default")
	s.Update(resourcesLoadedMsg{kind: k8s.KindPod, resources: []k8s.Resource{testPod("web-0")}})

	_, cmd := s.Update(keyMsg("1"))

	assert.Nil(t, cmd)
	assert.Equal(t, 1, s.ItemCount())
}

func TestResourcesScreenStaleLoadDropped(t *testing.T) {
	s := NewResourcesScreen(testAppContext(nil), "default")
	s.Update(resourcesLoadedMsg{kind: k8s.KindPod, resources: []k8s.Resource{testPod("web-0")}})

	// A pod load finishing after a switch to services must not repaint
	// the table with pod rows.
	s.kind = k8s.KindService
	s.Update(resourcesLoadedMsg{kind: k8s.KindPod, resources: []k8s.Resource{testPod("web-1"), testPod("web-2")}})

	assert.Equal(t, 1, s.ItemCount())
}

func TestResourcesScreenRefreshThroughKubectl(t *testing.T) {
	runner := &scriptedRunner{responses: map[string]string{
		"get pods -n billing -o json": `{"items":[
			{"metadata":{"name":"api-server-7d4b9c6f-x2m4p","namespace":"billing","creationTimestamp":"2026-08-23T09:00:00Z"},
			 "status":{"phase":"Running","containerStatuses":[{"name":"api","ready":true,"restartCount":2}]}},
			{"metadata":{"name":"worker-0","namespace":"billing","creationTimestamp":"2026-08-23T08:00:00Z"},
			 "status":{"phase":"Pending"}}
		]}`,
	}}
	s := NewResourcesScreen(testAppContext(runner), "billing")

	msgs := drainCmd(s.Refresh())
	loaded, ok := findMsg[resourcesLoadedMsg](msgs)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	s.Update(loaded)

	require.Equal(t, 2, s.ItemCount())
	pod := s.visible[0].(k8s.Pod)
	assert.Equal(t, "api-server-7d4b9c6f-x2m4p", pod.Name)
	assert.Equal(t, "1/1", pod.Ready)
	assert.Equal(t, int32(2), pod.Restarts)
	assert.Equal(t, "Running", pod.Status)

	pending := s.visible[1].(k8s.Pod)
	assert.Equal(t, "0/0", pending.Ready)
	assert.Equal(t, "Pending", pending.Status)
}

func TestResourcesScreenLoadError(t *testing.T) {
	runner := &scriptedRunner{responses: map[string]string{}}
	s := NewResourcesScreen(testAppContext(runner), "default")

	msgs := drainCmd(s.Refresh())
	loaded, ok := findMsg[resourcesLoadedMsg](msgs)
	require.True(t, ok)
	require.Error(t, loaded.err)
	s.Update(loaded)

	assert.Equal(t, 0, s.ItemCount())
	assert.Contains(t, s.View(), "no script for")
}

func TestResourcesScreenFilterSearchesAllCells(t *testing.T) {
	s := NewResourcesScreen(testAppContext(nil), "default")

	crashed := testPod("worker-1")
	crashed.Status = "CrashLoopBackOff"
	s.Update(resourcesLoadedMsg{
		kind:      k8s.KindPod,
		resources: []k8s.Resource{testPod("web-0"), crashed, testPod("web-2")},
	})

	// Status text is searchable, not just the name.
	s.Update(keyMsg("/"))
	typeString(s, "crash")
	s.Update(keyMsg("enter"))

	require.Equal(t, 1, s.ItemCount())
	assert.Equal(t, "worker-1", s.visible[0].GetName())
}

func TestResourcesScreenDigitsIgnoredWhileFiltering(t *testing.T) {
	s := NewResourcesScreen(testAppContext(nil), "default")
	s.Update(resourcesLoadedMsg{kind: k8s.KindPod, resources: []k8s.Resource{testPod("web-0")}})

	s.Update(keyMsg("/"))
	typeString(s, "2")

	// The digit went into the filter text, not the kind switch.
	assert.Equal(t, k8s.KindPod, s.Kind())
	assert.True(t, s.Filtering())
}
