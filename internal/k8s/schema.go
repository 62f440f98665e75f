package k8s

import (
	"fmt"
	"strconv"
)

// Column describes one table column. Width 0 stretches to the remaining
// table width (used for the Name column).
type Column struct {
	Title string
	Width int
}

// Schema describes how a kind is listed: its columns and how a row's
// cells are rendered from the typed resource.
type Schema struct {
	Columns []Column
	cells   func(Resource) []string
}

// Cells renders the table cells for one resource. Passing a resource of
// the wrong kind is a programming error and panics.
func (s Schema) Cells(r Resource) []string {
	return s.cells(r)
}

// SchemaFor returns the schema for a kind. Unknown kinds panic; the UI
// only ever asks for the closed kind set.
func SchemaFor(kind Kind) Schema {
	switch kind {
	case KindPod:
		return podSchema
	case KindService:
		return serviceSchema
	case KindDeployment:
		return deploymentSchema
	case KindConfigMap:
		return configMapSchema
	case KindSecret:
		return secretSchema
	}
	panic(fmt.Sprintf("no schema for kind %d", int(kind)))
}

var podSchema = Schema{
	Columns: []Column{
		{Title: "Name", Width: 0},
		{Title: "Ready", Width: 7},
		{Title: "Status", Width: 12},
		{Title: "Restarts", Width: 9},
		{Title: "Age", Width: 8},
	},
	cells: func(r Resource) []string {
		p := r.(Pod)
		return []string{p.Name, p.Ready, p.Status, strconv.Itoa(int(p.Restarts)), FormatDuration(p.Age)}
	},
}

var serviceSchema = Schema{
	Columns: []Column{
		{Title: "Name", Width: 0},
		{Title: "Type", Width: 13},
		{Title: "Cluster-IP", Width: 15},
		{Title: "External-IP", Width: 15},
		{Title: "Port(s)", Width: 18},
		{Title: "Age", Width: 8},
	},
	cells: func(r Resource) []string {
		s := r.(Service)
		return []string{s.Name, s.Type, s.ClusterIP, s.ExternalIP, s.Ports, FormatDuration(s.Age)}
	},
}

var deploymentSchema = Schema{
	Columns: []Column{
		{Title: "Name", Width: 0},
		{Title: "Ready", Width: 7},
		{Title: "Up-to-date", Width: 11},
		{Title: "Available", Width: 10},
		{Title: "Age", Width: 8},
	},
	cells: func(r Resource) []string {
		d := r.(Deployment)
		return []string{d.Name, d.Ready, strconv.Itoa(int(d.UpToDate)), strconv.Itoa(int(d.Available)), FormatDuration(d.Age)}
	},
}

var configMapSchema = Schema{
	Columns: []Column{
		{Title: "Name", Width: 0},
		{Title: "Data", Width: 6},
		{Title: "Age", Width: 8},
	},
	cells: func(r Resource) []string {
		cm := r.(ConfigMap)
		return []string{cm.Name, strconv.Itoa(cm.Data), FormatDuration(cm.Age)}
	},
}

var secretSchema = Schema{
	Columns: []Column{
		{Title: "Name", Width: 0},
		{Title: "Type", Width: 26},
		{Title: "Data", Width: 6},
		{Title: "Age", Width: 8},
	},
	cells: func(r Resource) []string {
		s := r.(Secret)
		return []string{s.Name, s.Type, strconv.Itoa(s.Data), FormatDuration(s.Age)}
	},
}

// NamespaceColumns describes the namespace selection table.
var NamespaceColumns = []Column{
	{Title: "Name", Width: 0},
	{Title: "Status", Width: 12},
	{Title: "Age", Width: 8},
}

// NamespaceCells renders one namespace row.
func NamespaceCells(ns Namespace) []string {
	return []string{ns.Name, ns.Status, FormatDuration(ns.Age)}
}

// ContextColumns describes the context selection table. The first column
// marks the kubeconfig's current context.
var ContextColumns = []Column{
	{Title: "", Width: 2},
	{Title: "Name", Width: 0},
	{Title: "Cluster", Width: 24},
	{Title: "User", Width: 24},
}

// ContextCells renders one context row.
func ContextCells(e ContextEntry) []string {
	marker := ""
	if e.Current {
		marker = "*"
	}
	return []string{marker, e.Name, e.Cluster, e.User}
}
