package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/fullhouse/pkg/config"
	"github.com/decker502/fullhouse/pkg/game"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	loadingTrackColor = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	loadingFillColor  = color.RGBA{R: 232, G: 184, B: 56, A: 255}
)

// progressSteps is the resolution of the progress bar widget.
const progressSteps = 100

// LoadingPopup is the system popup shown over the active scene while a scene
// loads. It is drawn in the popup canvas space, not the scene's.
type LoadingPopup struct {
	popup        *game.PopupManager
	sceneManager *game.SceneManager

	ui    *ebitenui.UI
	label *widget.Text
	bar   *widget.ProgressBar

	root  *widget.Container

	progress float64
	barWidth int
}

// NewLoadingPopup creates the loading popup. The progress bar width follows
// the width of the layer the popup is drawn into.
func NewLoadingPopup(popup *game.PopupManager, sm *game.SceneManager, rm *game.ResourceManager) (*LoadingPopup, error) {
	face, err := rm.LoadFont(config.LoadingTextFontSize)
	if err != nil {
		return nil, fmt.Errorf("loading popup font: %w", err)
	}

	p := &LoadingPopup{
		popup:        popup,
		sceneManager: sm,
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	rootContainer.AddChild(panel)

	p.label = widget.NewText(
		widget.TextOpts.Text(loadingLabel(0), face, color.White),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	)
	panel.AddChild(p.label)

	p.bar = widget.NewProgressBar(
		widget.ProgressBarOpts.WidgetOpts(widget.WidgetOpts.MinSize(0, int(config.LoadingBarHeight))),
		widget.ProgressBarOpts.Images(
			&widget.ProgressBarImage{
				Idle: image.NewNineSliceColor(loadingTrackColor),
			},
			&widget.ProgressBarImage{
				Idle: image.NewNineSliceColor(loadingFillColor),
			},
		),
		widget.ProgressBarOpts.Values(0, progressSteps, 0),
		widget.ProgressBarOpts.TrackPadding(widget.NewInsetsSimple(2)),
	)
	panel.AddChild(p.bar)

	p.root = rootContainer
	p.ui = &ebitenui.UI{Container: rootContainer}
	return p, nil
}

// barWidthFor returns the progress bar width for a layer layerWidth units wide.
func barWidthFor(layerWidth int) int {
	return max(int(float64(layerWidth)*config.LoadingBarWidthRatio), 0)
}

// fitBar resizes the progress bar to the layer width. The popup canvas
// reference resolution changes with the scene, so this runs every draw.
func (p *LoadingPopup) fitBar(layerWidth int) {
	w := barWidthFor(layerWidth)
	if w == p.barWidth {
		return
	}
	p.barWidth = w
	p.bar.GetWidget().MinWidth = w
	p.root.RequestRelayout()
}

// BarWidth returns the current progress bar width in popup canvas units.
func (p *LoadingPopup) BarWidth() int {
	return p.barWidth
}

func loadingLabel(progress float64) string {
	return fmt.Sprintf("Loading... %d%%", int(progress*100+0.5))
}

// Visible reports whether the popup manager shows the loading popup.
func (p *LoadingPopup) Visible() bool {
	return p.popup != nil && p.popup.LoadingPopupVisible()
}

// Progress returns the progress shown by the bar.
func (p *LoadingPopup) Progress() float64 {
	return p.progress
}

// Update pulls the load progress into the widgets.
func (p *LoadingPopup) Update() {
	if !p.Visible() {
		return
	}
	p.syncProgress()
	p.ui.Update()
}

func (p *LoadingPopup) syncProgress() {
	if p.sceneManager != nil {
		if op := p.sceneManager.LoadOperation(); op != nil {
			p.progress = op.Progress()
		}
	}
	p.label.Label = loadingLabel(p.progress)
	p.bar.SetCurrent(int(p.progress * progressSteps))
}

// Draw dims the screen and draws the popup panel. screen is in popup canvas
// units.
func (p *LoadingPopup) Draw(screen *ebiten.Image) {
	if !p.Visible() {
		return
	}
	bounds := screen.Bounds()
	vector.DrawFilledRect(
		screen,
		0,
		0,
		float32(bounds.Dx()),
		float32(bounds.Dy()),
		color.RGBA{A: config.LoadingOverlayAlpha},
		false,
	)
	p.fitBar(bounds.Dx())
	p.ui.Draw(screen)
}
