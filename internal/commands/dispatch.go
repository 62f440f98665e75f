package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KAYAMAc/tui/internal/k8s"
	"github.com/KAYAMAc/tui/internal/logging"
)

// OperationResultMsg carries the outcome of an executed operation back
// to the state machine.
type OperationResultMsg struct {
	Op       Operation
	Target   Target
	Result   k8s.Result
	Duration time.Duration
}

// StagedCommandMsg carries the rendered command text of an operation
// that is shown instead of run.
type StagedCommandMsg struct {
	Op          Operation
	Target      Target
	CommandText string
	Warning     bool
}

// Dispatch routes an operation according to its mode. Staged modes
// resolve synchronously and never spawn a process; immediate mode runs
// kubectl off the UI goroutine and delivers a single completion message.
func Dispatch(runner k8s.CommandRunner, op Operation, target Target) tea.Cmd {
	args := op.Build(target)

	switch op.Mode {
	case ModeShowCommand, ModeShowCommandWithWarning:
		msg := StagedCommandMsg{
			Op:          op,
			Target:      target,
			CommandText: runner.CommandLine(args...),
			Warning:     op.Mode == ModeShowCommandWithWarning,
		}
		logging.Debug("staged command",
			"op", op.ID,
			"kind", target.Kind.String(),
			"command", msg.CommandText)
		return func() tea.Msg { return msg }
	}

	return func() tea.Msg {
		start := time.Now()
		result := runner.Run(context.Background(), args...)
		if result.Success && op.Render != nil {
			rendered, err := op.Render(target, result.Output)
			if err != nil {
				result = k8s.Result{ErrText: err.Error()}
			} else {
				result.Output = rendered
			}
		}
		logging.Debug("operation completed",
			"op", op.ID,
			"kind", target.Kind.String(),
			"name", target.Name,
			"success", result.Success,
			"duration", time.Since(start))
		return OperationResultMsg{
			Op:       op,
			Target:   target,
			Result:   result,
			Duration: time.Since(start),
		}
	}
}
