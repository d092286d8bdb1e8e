package game

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager caches font faces shared by scenes and popups.
//
// Scenes are built by the scene factory off the update loop, so the cache is
// guarded by a mutex.
type ResourceManager struct {
	mu            sync.Mutex
	source        *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
}

// NewResourceManager creates a resource manager using the Go Regular font.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadFont returns a face of the UI font at the given size, in logical pixels.
// Faces are created once per size and cached.
//
// Example:
//
//	face, err := rm.LoadFont(28)
//	if err != nil {
//	    return fmt.Errorf("font: %w", err)
//	}
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.source == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.source = source
	}

	goTextFace := &text.GoTextFace{
		Source:    rm.source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = goTextFace
	return goTextFace, nil
}
