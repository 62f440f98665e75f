package k8s

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/KAYAMAc/tui/internal/logging"
)

// DefaultTimeout bounds a single kubectl invocation.
const DefaultTimeout = 30 * time.Second

// Result captures the outcome of one kubectl invocation. Command failure
// is data, not a Go error: callers branch on Success and surface ErrText.
type Result struct {
	Output  string // captured stdout
	ErrText string // trimmed stderr, or the spawn/timeout error text
	Success bool
}

// Runner spawns kubectl with the given args and returns captured stdout,
// captured stderr, and the wait error. Tests substitute a fake so nothing
// is ever spawned.
type Runner func(ctx context.Context, args []string) (stdout, stderr []byte, err error)

// Client invokes kubectl as a subprocess. It never talks to the API
// server directly; every query and operation goes through the binary.
type Client struct {
	kubeconfig string
	context    string
	timeout    time.Duration
	runner     Runner
}

// NewClient creates a client. kubeconfig and contextName may be empty;
// when set they are appended to every invocation as --kubeconfig and
// --context.
func NewClient(kubeconfig, contextName string) *Client {
	return &Client{
		kubeconfig: kubeconfig,
		context:    contextName,
		timeout:    DefaultTimeout,
		runner:     runKubectl,
	}
}

// WithContext returns a copy of the client pinned to the given kubectl
// context.
func (c *Client) WithContext(contextName string) *Client {
	copied := *c
	copied.context = contextName
	return &copied
}

// WithRunner returns a copy of the client using the given runner.
func (c *Client) WithRunner(r Runner) *Client {
	copied := *c
	copied.runner = r
	return &copied
}

// Context returns the kubectl context the client is pinned to, or "".
func (c *Client) Context() string {
	return c.context
}

// fullArgs appends the client's --kubeconfig and --context flags. The
// flags go before any "--" separator so they bind to kubectl rather
// than to the command after it.
func (c *Client) fullArgs(args []string) []string {
	var flags []string
	if c.kubeconfig != "" {
		flags = append(flags, "--kubeconfig", c.kubeconfig)
	}
	if c.context != "" {
		flags = append(flags, "--context", c.context)
	}
	if len(flags) == 0 {
		return args
	}

	sep := len(args)
	for i, arg := range args {
		if arg == "--" {
			sep = i
			break
		}
	}
	full := make([]string, 0, len(args)+len(flags))
	full = append(full, args[:sep]...)
	full = append(full, flags...)
	full = append(full, args[sep:]...)
	return full
}

// CommandLine renders the full kubectl invocation for the given args as
// shell text, exactly as Run would execute it. Used to stage commands
// that are shown to the user instead of executed.
func (c *Client) CommandLine(args ...string) string {
	return "kubectl " + strings.Join(c.fullArgs(args), " ")
}

// Run invokes kubectl with the given args and the client's flags
// appended. The invocation is killed when it outlives the client
// timeout. Run never returns an error: failures come back as a Result
// with Success=false and the stderr text in ErrText.
func (c *Client) Run(ctx context.Context, args ...string) Result {
	full := c.fullArgs(args)

	timeout := c.timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	stdout, stderr, err := c.runner(ctx, full)
	logging.Debug("kubectl finished",
		"args", strings.Join(args, " "),
		"duration", time.Since(start),
		"failed", err != nil)

	if err != nil {
		errText := strings.TrimSpace(string(stderr))
		if ctx.Err() == context.DeadlineExceeded {
			errText = fmt.Sprintf("kubectl timed out after %v", timeout)
		}
		if errText == "" {
			errText = err.Error()
		}
		return Result{Output: string(stdout), ErrText: errText, Success: false}
	}
	return Result{Output: string(stdout), Success: true}
}

// runKubectl is the real runner. Stdout and stderr are captured
// separately so error text never pollutes decoded output.
func runKubectl(ctx context.Context, args []string) ([]byte, []byte, error) {
	cmd := exec.Command("kubectl", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("failed to start kubectl: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		return stdout.Bytes(), stderr.Bytes(), ctx.Err()
	case err := <-done:
		return stdout.Bytes(), stderr.Bytes(), err
	}
}

// CheckAvailable checks that the kubectl binary is on PATH and runs.
// The dashboard cannot do anything without it, so callers treat an
// error as a startup failure.
func CheckAvailable() error {
	cmd := exec.Command("kubectl", "version", "--client")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("kubectl not found in PATH\nPlease install kubectl: https://kubernetes.io/docs/tasks/tools/")
	}
	return nil
}
