package commands

import (
	"fmt"

	"github.com/KAYAMAc/tui/internal/k8s"
)

// Tier classifies how dangerous an operation is. The tier alone decides
// how the operation is dispatched; nothing else may influence it.
type Tier int

const (
	TierSafe        Tier = iota // read-only or reversible, runs without confirmation
	TierInteractive             // needs an attached terminal or editor
	TierDestructive             // deletes or reshapes workloads
)

func (t Tier) String() string {
	switch t {
	case TierSafe:
		return "safe"
	case TierInteractive:
		return "interactive"
	case TierDestructive:
		return "destructive"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// Mode is the dispatch behavior implied by a tier.
type Mode int

const (
	ModeExecuteImmediately Mode = iota // run kubectl now, show the result
	ModeShowCommand                    // stage the command text, never run it
	ModeShowCommandWithWarning         // stage with a destructive-action warning
)

func (m Mode) String() string {
	switch m {
	case ModeExecuteImmediately:
		return "execute-immediately"
	case ModeShowCommand:
		return "show-command"
	case ModeShowCommandWithWarning:
		return "show-command-with-warning"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// modeFor maps a tier to its dispatch mode. Destructive operations are
// never executed directly.
func modeFor(t Tier) Mode {
	switch t {
	case TierInteractive:
		return ModeShowCommand
	case TierDestructive:
		return ModeShowCommandWithWarning
	default:
		return ModeExecuteImmediately
	}
}

// Target identifies the resource an operation is bound to.
type Target struct {
	Kind      k8s.Kind
	Namespace string
	Name      string
}

// BuildFunc produces the kubectl argument vector for a target. The
// client appends --kubeconfig/--context, so builders never include them.
type BuildFunc func(t Target) []string

// RenderFunc reshapes a successful operation's raw output before it is
// shown. ViewData uses it to turn resource JSON into a data-key listing.
type RenderFunc func(t Target, output string) (string, error)

// Operation is one catalog entry for a resource kind.
type Operation struct {
	ID     string
	Name   string
	Tier   Tier
	Mode   Mode
	Build  BuildFunc
	Render RenderFunc
}

// newOp derives the mode from the tier so the two cannot drift apart.
func newOp(id, name string, tier Tier, build BuildFunc) Operation {
	return Operation{
		ID:    id,
		Name:  name,
		Tier:  tier,
		Mode:  modeFor(tier),
		Build: build,
	}
}
