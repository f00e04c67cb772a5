package adapters

import (
	"os"
	"runtime"

	"printer-agent/internal/core/logger"
	"printer-agent/internal/features/printing/ports"

	"go.uber.org/zap"
)

// wellKnownPaths lists the probe order for each tool per platform.
// Environment references are expanded at probe time.
var wellKnownPaths = map[string]map[ports.Tool][]string{
	"windows": {
		ports.ToolBrowser: {
			`C:\Program Files\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
			`${LOCALAPPDATA}\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files\Chromium\Application\chrome.exe`,
		},
		ports.ToolPDFPrinter: {
			`C:\Program Files\SumatraPDF\SumatraPDF.exe`,
			`C:\Program Files (x86)\SumatraPDF\SumatraPDF.exe`,
			`${LOCALAPPDATA}\Programs\SumatraPDF\SumatraPDF.exe`,
		},
	},
	"darwin": {
		ports.ToolBrowser: {
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
		},
	},
	"linux": {
		ports.ToolBrowser: {
			"/usr/bin/google-chrome",
			"/usr/bin/google-chrome-stable",
			"/usr/bin/chromium",
			"/usr/bin/chromium-browser",
			"/snap/bin/chromium",
		},
	},
}

// PathLocator finds external tools by probing a fixed ordered list of
// well-known installation paths. First existing path wins.
type PathLocator struct {
	paths  map[ports.Tool][]string
	logger *zap.Logger
}

// NewPathLocator creates a locator for the current platform.
func NewPathLocator() *PathLocator {
	return &PathLocator{
		paths:  wellKnownPaths[runtime.GOOS],
		logger: logger.Named("locator"),
	}
}

// Locate returns the first existing candidate path for the tool.
// Not finding the tool is a fallback signal for the dispatch chain.
func (l *PathLocator) Locate(tool ports.Tool) (string, bool) {
	for _, candidate := range l.paths[tool] {
		expanded := os.ExpandEnv(candidate)
		info, err := os.Stat(expanded)
		if err != nil || info.IsDir() {
			continue
		}
		l.logger.Debug("Tool located",
			zap.String("tool", string(tool)),
			zap.String("path", expanded),
		)
		return expanded, true
	}

	l.logger.Debug("Tool not found", zap.String("tool", string(tool)))
	return "", false
}
