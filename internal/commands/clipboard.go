package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyToClipboard copies text to the system clipboard and returns a
// user-facing confirmation message.
func CopyToClipboard(text string) (string, error) {
	if err := clipboard.WriteAll(text); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return fmt.Sprintf("Copied to clipboard: %s", text), nil
}
