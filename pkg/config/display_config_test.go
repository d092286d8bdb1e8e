package config

import (
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/fullhouse/pkg/canvas"
	"github.com/decker502/fullhouse/pkg/embedded"
)

const validDisplayYAML = `
window:
  title: "Test"
  scale: 0.25
startScene: Scene_B
scenes:
  - id: Scene_A
    width: 1280
    height: 720
    orientation: landscape
    canvas: LobbyCanvas
  - id: Scene_B
    width: 720
    height: 1280
    orientation: portrait
    canvas: TableCanvas
cameras:
  - name: Lobby
    position: [640, 360, -10]
    orthographic: true
    orthographicSize: 360
canvases:
  - name: LobbyCanvas
    renderMode: screenSpaceCamera
    scaler:
      uiScaleMode: scaleWithScreenSize
      referenceResolution: [1280, 720]
      screenMatchMode: expand
      matchWidthOrHeight: 0.5
  - name: SystemPopupCanvas
`

func TestParseDisplayConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *DisplayConfig)
	}{
		{
			name:        "valid config",
			yamlContent: validDisplayYAML,
			validate: func(t *testing.T, cfg *DisplayConfig) {
				if cfg.Window.Title != "Test" || cfg.Window.Scale != 0.25 {
					t.Errorf("window = %+v", cfg.Window)
				}
				if cfg.Loading.HoldSeconds != LoadingPopupHoldSeconds {
					t.Errorf("expected default hold %v, got %v", LoadingPopupHoldSeconds, cfg.Loading.HoldSeconds)
				}
				scene, err := cfg.Scene("scene_b")
				if err != nil {
					t.Fatalf("Scene(scene_b) error = %v", err)
				}
				if scene.Width != 720 || scene.Height != 1280 || scene.Canvas != "TableCanvas" {
					t.Errorf("unexpected scene %+v", scene)
				}
				if pos := cfg.Cameras[0].Vec3(); pos.X != 640 || pos.Z != -10 {
					t.Errorf("camera position = %+v", pos)
				}
			},
		},
		{
			name:        "defaults filled",
			yamlContent: "scenes:\n  - id: Scene_A\n    width: 10\n    height: 10\n",
			validate: func(t *testing.T, cfg *DisplayConfig) {
				if cfg.Window.Title != GameWindowTitle {
					t.Errorf("expected default title, got %q", cfg.Window.Title)
				}
				if cfg.Window.Scale != DefaultWindowScale {
					t.Errorf("expected default scale, got %v", cfg.Window.Scale)
				}
			},
		},
		{
			name:        "no scenes",
			yamlContent: "window:\n  scale: 1\n",
			wantErr:     true,
			errContains: "no scenes",
		},
		{
			name:        "duplicate scene",
			yamlContent: "scenes:\n  - {id: A, width: 1, height: 1}\n  - {id: a, width: 1, height: 1}\n",
			wantErr:     true,
			errContains: "duplicate scene",
		},
		{
			name:        "invalid resolution",
			yamlContent: "scenes:\n  - {id: A, width: 0, height: 1}\n",
			wantErr:     true,
			errContains: "invalid resolution",
		},
		{
			name:        "unknown start scene",
			yamlContent: "startScene: C\nscenes:\n  - {id: A, width: 1, height: 1}\n",
			wantErr:     true,
			errContains: "unknown scene",
		},
		{
			name: "bad match mode",
			yamlContent: "scenes:\n  - {id: A, width: 1, height: 1}\n" +
				"canvases:\n  - name: C\n    scaler:\n      screenMatchMode: stretch\n",
			wantErr:     true,
			errContains: "canvas 'C'",
		},
		{
			name:        "invalid yaml",
			yamlContent: "scenes: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseDisplayConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestSceneLookupUnknown(t *testing.T) {
	cfg, err := ParseDisplayConfig([]byte(validDisplayYAML))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Scene("Scene_C"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Scene(Scene_C) error = %v, want ErrUnknownScene", err)
	}
}

func TestScalerConfigToSettings(t *testing.T) {
	cfg, err := ParseDisplayConfig([]byte(validDisplayYAML))
	if err != nil {
		t.Fatal(err)
	}

	lobby, ok := cfg.Canvas("LobbyCanvas")
	if !ok {
		t.Fatal("LobbyCanvas not found")
	}
	mode, err := lobby.Mode()
	if err != nil || mode != canvas.ScreenSpaceCamera {
		t.Errorf("Mode() = %v, %v", mode, err)
	}
	s, err := lobby.Scaler.ToSettings()
	if err != nil {
		t.Fatal(err)
	}
	if s.UIScaleMode != canvas.ScaleWithScreenSize {
		t.Errorf("UIScaleMode = %v", s.UIScaleMode)
	}
	if s.ScreenMatchMode != canvas.Expand {
		t.Errorf("ScreenMatchMode = %v", s.ScreenMatchMode)
	}
	if s.ReferenceResolution.X != 1280 || s.ReferenceResolution.Y != 720 {
		t.Errorf("ReferenceResolution = %+v", s.ReferenceResolution)
	}
	if s.MatchWidthOrHeight != 0.5 {
		t.Errorf("MatchWidthOrHeight = %v", s.MatchWidthOrHeight)
	}
	if s.ReferencePixelsPerUnit != canvas.DefaultReferencePixelsPerUnit {
		t.Errorf("ReferencePixelsPerUnit = %v, want default", s.ReferencePixelsPerUnit)
	}

	popup, _ := cfg.Canvas("SystemPopupCanvas")
	mode, _ = popup.Mode()
	if mode != canvas.ScreenSpaceOverlay {
		t.Errorf("empty render mode = %v, want ScreenSpaceOverlay", mode)
	}
	def, err := popup.Scaler.ToSettings()
	if err != nil {
		t.Fatal(err)
	}
	if def != canvas.DefaultSettings() {
		t.Errorf("empty scaler config = %+v, want defaults", def)
	}
}

func TestScalerConfigMatchOutOfRange(t *testing.T) {
	if _, err := (ScalerConfig{MatchWidthOrHeight: 1.5}).ToSettings(); err == nil {
		t.Error("expected error for matchWidthOrHeight 1.5")
	}
}

func TestLoadDisplayConfig(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/config/display.yaml": &fstest.MapFile{Data: []byte(validDisplayYAML)},
	})
	defer embedded.Init(nil)

	cfg, err := LoadDisplayConfig(DisplayConfigPath)
	if err != nil {
		t.Fatalf("LoadDisplayConfig() error = %v", err)
	}
	if cfg.StartScene != "Scene_B" {
		t.Errorf("StartScene = %q", cfg.StartScene)
	}

	if _, err := LoadDisplayConfig("data/config/missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

// 仓库自带的配置文件必须能通过验证
func TestBundledDisplayConfig(t *testing.T) {
	data, err := os.ReadFile("../../" + DisplayConfigPath)
	if err != nil {
		t.Skipf("bundled config not available: %v", err)
	}
	cfg, err := ParseDisplayConfig(data)
	if err != nil {
		t.Fatalf("bundled config invalid: %v", err)
	}
	for _, id := range []string{"Scene_A", "Scene_B"} {
		scene, err := cfg.Scene(id)
		if err != nil {
			t.Fatalf("Scene(%s) error = %v", id, err)
		}
		if _, ok := cfg.Canvas(scene.Canvas); !ok {
			t.Errorf("canvas %q of %s not declared", scene.Canvas, id)
		}
	}
	if _, ok := cfg.Canvas("SystemPopupCanvas"); !ok {
		t.Error("SystemPopupCanvas not declared")
	}
}
