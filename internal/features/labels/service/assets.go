package service

import (
	"encoding/base64"
	"html/template"
	"os"
	"path/filepath"

	"printer-agent/internal/core/logger"

	"go.uber.org/zap"
)

// Fixed set of named label images. A missing file simply leaves the slot
// empty on the label.
const (
	AssetLogo         = "logo.png"
	AssetIconPickup   = "icon-pickup.png"
	AssetIconDelivery = "icon-delivery.png"
)

var labelAssetNames = []string{AssetLogo, AssetIconPickup, AssetIconDelivery}

// AssetLoader loads the label image set once and serves them as inline
// data URIs so the rendered document needs no external fetches.
type AssetLoader struct {
	images map[string]template.URL
}

// NewAssetLoader reads the known asset names from dir. Absent files are
// skipped, never an error; an empty or missing dir yields an empty set.
func NewAssetLoader(dir string) *AssetLoader {
	l := &AssetLoader{images: make(map[string]template.URL, len(labelAssetNames))}

	for _, name := range labelAssetNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Get().Debug("Label asset not available",
				zap.String("asset", name),
				zap.String("dir", dir),
			)
			continue
		}
		l.images[name] = pngDataURI(data)
	}

	return l
}

// Image returns the inline data URI for a named asset, or "" if the asset
// was not found at load time.
func (l *AssetLoader) Image(name string) template.URL {
	return l.images[name]
}

// pngDataURI wraps raw PNG bytes as an inline img source.
func pngDataURI(b []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(b))
}
