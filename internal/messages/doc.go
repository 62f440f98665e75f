// Package messages defines message handling conventions for the
// dashboard. This includes error, success, and info messages. Consistent
// messaging across layers improves debuggability and user experience.
//
// # Message Handling Patterns by Layer
//
// ## Adapter Layer (internal/k8s)
//
// Query helpers (ListContexts, ListNamespaces, ListResources) return
// standard Go errors. The adapter is a pure data access layer and does
// not depend on UI concerns.
//
// Pattern:
//
//	rows, err := client.ListResources(ctx, namespace, kind)
//	if err != nil {
//	    // screen shows the error inline and offers refresh to retry
//	}
//
// Use fmt.Errorf with %w to wrap errors and preserve the error chain.
// The adapter does not import this package; messages.WrapError serves
// the layers above it.
//
// Operation execution is different: Client.Run never returns a Go
// error. A failed kubectl invocation is data (Result with
// Success=false), because the result modal must render stderr verbatim
// rather than unwinding through error paths.
//
// ## Operation Layer (internal/commands)
//
// Dispatch returns tea.Cmd producing either an OperationResultMsg (the
// invocation ran) or a StagedCommandMsg (the command is shown, never
// run). Status-bar feedback uses the helpers in this package:
//
//	return messages.ErrorCmd("Copy failed: %v", err)
//
// Use types.ErrorStatusMsg for errors, types.SuccessMsg for success,
// and types.InfoMsg for informational messages. Keep messages concise
// and user-friendly.
//
// ## UI Layer (internal/app, internal/components, internal/screens)
//
// Display errors via the StatusBar component or inline on the screen
// that failed. UI components do not format error messages; they receive
// pre-formatted StatusMsg values.
//
// Pattern:
//
//	case types.StatusMsg:
//	    m.statusBar.SetMessage(msg.Message, msg.Type)
//
// The status bar clears after StatusBarDisplayDuration. Messages are
// color-coded: green for success, red for errors, blue for info.
//
// # Error Message Guidelines
//
//  1. Be specific: "Delete failed: deployment/nginx not found" not
//     "Operation failed"
//  2. Include context: what operation failed, on what resource
//  3. User-friendly: no stack traces in UI messages
//  4. Surface kubectl stderr verbatim in the result modal; the user
//     knows how to read kubectl errors
package messages
