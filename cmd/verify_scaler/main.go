// verify_scaler 打印给定屏幕与参考分辨率下的画布缩放结果
//
// 用法：
//
//	go run ./cmd/verify_scaler -screen 1920x1080 -ref 800x600 -mode expand
//	go run ./cmd/verify_scaler -screen 1920x1080 -ref 1280x720 -mode matchWidthOrHeight -match 0.5
//	go run ./cmd/verify_scaler -ui constantPhysicalSize -unit points -dpi 326
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/fullhouse/pkg/canvas"
	"github.com/decker502/fullhouse/pkg/utils"
)

var (
	screenFlag  = flag.String("screen", "1920x1080", "屏幕尺寸（像素），格式 WxH")
	refFlag     = flag.String("ref", "800x600", "参考分辨率，格式 WxH")
	uiFlag      = flag.String("ui", "scaleWithScreenSize", "缩放模式：constantPixelSize / scaleWithScreenSize / constantPhysicalSize")
	modeFlag    = flag.String("mode", "matchWidthOrHeight", "匹配模式：matchWidthOrHeight / expand / shrink")
	matchFlag   = flag.Float64("match", 0, "宽高匹配权重 [0, 1]，0 按宽度，1 按高度")
	unitFlag    = flag.String("unit", "points", "物理单位：centimeters / millimeters / inches / points / picas")
	dpiFlag     = flag.Float64("dpi", 0, "屏幕 DPI，0 表示未知（使用 -fallback-dpi）")
	fallbackDPI = flag.Float64("fallback-dpi", 96, "未知 DPI 时使用的回退值")
	scaleFlag   = flag.Float64("scale", 1, "constantPixelSize 模式的缩放系数")
	ppuFlag     = flag.Float64("ppu", canvas.DefaultReferencePixelsPerUnit, "参考每单位像素数")
)

// options 是一次缩放计算的输入
type options struct {
	screen, ref string
	ui, mode    string
	unit        string
	match       float64
	dpi         float64
	fallbackDPI float64
	scale       float64
	ppu         float64
}

// report 是一次缩放计算的结果
type report struct {
	screen, ref utils.Vec2
	settings    canvas.Settings
	scaleFactor float64
	ppu         float64
	logical     utils.Vec2
}

func main() {
	flag.Parse()

	opts := options{
		screen:      *screenFlag,
		ref:         *refFlag,
		ui:          *uiFlag,
		mode:        *modeFlag,
		unit:        *unitFlag,
		match:       *matchFlag,
		dpi:         *dpiFlag,
		fallbackDPI: *fallbackDPI,
		scale:       *scaleFlag,
		ppu:         *ppuFlag,
	}
	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, opts options) error {
	r, err := compute(opts)
	if err != nil {
		return err
	}
	r.print(w)
	return nil
}

// compute runs a scaler on a throwaway canvas with the given options.
func compute(opts options) (report, error) {
	screen, err := parseSize(opts.screen)
	if err != nil {
		return report{}, fmt.Errorf("-screen: %w", err)
	}
	ref, err := parseSize(opts.ref)
	if err != nil {
		return report{}, fmt.Errorf("-ref: %w", err)
	}

	settings := canvas.DefaultSettings()
	if settings.UIScaleMode, err = canvas.ParseScaleMode(opts.ui); err != nil {
		return report{}, err
	}
	if settings.ScreenMatchMode, err = canvas.ParseScreenMatchMode(opts.mode); err != nil {
		return report{}, err
	}
	if settings.PhysicalUnit, err = canvas.ParseUnit(opts.unit); err != nil {
		return report{}, err
	}
	settings.ReferenceResolution = ref
	settings.MatchWidthOrHeight = utils.Clamp01(opts.match)
	settings.FallbackScreenDPI = opts.fallbackDPI
	settings.ScaleFactor = opts.scale
	settings.ReferencePixelsPerUnit = opts.ppu

	c := canvas.New("VerifyCanvas", canvas.ScreenSpaceOverlay)
	scaler := canvas.NewScaler("VerifyCanvas", c, settings)
	scaler.Handle(canvas.Screen{Size: screen, DPI: opts.dpi})

	return report{
		screen:      screen,
		ref:         ref,
		settings:    scaler.Settings(),
		scaleFactor: c.ScaleFactor(),
		ppu:         c.ReferencePixelsPerUnit(),
		logical:     c.LogicalSize(screen),
	}, nil
}

func (r report) print(w io.Writer) {
	fmt.Fprintf(w, "屏幕:           %.0fx%.0f\n", r.screen.X, r.screen.Y)
	fmt.Fprintf(w, "参考分辨率:     %.0fx%.0f\n", r.ref.X, r.ref.Y)
	fmt.Fprintf(w, "模式:           %s / %s (match %.2f)\n", r.settings.UIScaleMode, r.settings.ScreenMatchMode, r.settings.MatchWidthOrHeight)
	fmt.Fprintf(w, "缩放系数:       %.6f\n", r.scaleFactor)
	fmt.Fprintf(w, "参考每单位像素: %.4f\n", r.ppu)
	fmt.Fprintf(w, "逻辑尺寸:       %.1fx%.1f\n", r.logical.X, r.logical.Y)
}

// parseSize 解析 "WxH" 格式的尺寸
func parseSize(s string) (utils.Vec2, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return utils.Vec2{}, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return utils.Vec2{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return utils.Vec2{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	return utils.Vec2{X: w, Y: h}, nil
}
