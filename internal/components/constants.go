package components

import "time"

const (
	// StatusBarDisplayDuration is how long success/error/info messages stay
	// visible before clearing automatically.
	StatusBarDisplayDuration = 5 * time.Second

	// resultChromeLines is the space the result view spends on its own
	// chrome: title line, separator, and footer.
	resultChromeLines = 3
)
