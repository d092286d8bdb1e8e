package game

import (
	"log"

	"github.com/decker502/fullhouse/pkg/canvas"
	"github.com/decker502/fullhouse/pkg/utils"
)

// PopupManager owns the system popup canvas shared by every scene.
type PopupManager struct {
	scaler         *canvas.Scaler
	loadingVisible bool
}

// NewPopupManager creates a popup manager for the given popup canvas scaler.
// scaler may be nil, then resolution changes are only logged.
func NewPopupManager(scaler *canvas.Scaler) *PopupManager {
	return &PopupManager{scaler: scaler}
}

// SetLoadingPopup shows or hides the loading popup.
func (pm *PopupManager) SetLoadingPopup(visible bool) {
	if pm.loadingVisible != visible {
		log.Printf("[PopupManager] Loading popup visible: %v", visible)
	}
	pm.loadingVisible = visible
}

// LoadingPopupVisible reports whether the loading popup is shown.
func (pm *PopupManager) LoadingPopupVisible() bool {
	return pm.loadingVisible
}

// SetCanvasResolution sets the reference resolution of the popup canvas.
func (pm *PopupManager) SetCanvasResolution(width, height float64) {
	if pm.scaler == nil {
		log.Printf("[PopupManager] Warning: no popup scaler, resolution %vx%v ignored", width, height)
		return
	}
	pm.scaler.SetReferenceResolution(utils.Vec2{X: width, Y: height})
}

// Scaler returns the popup canvas scaler.
func (pm *PopupManager) Scaler() *canvas.Scaler {
	return pm.scaler
}
