package canvas

import "testing"

func TestRegistryRegisterAndFind(t *testing.T) {
	r := NewRegistry()
	lobby := New("LobbyCanvas", ScreenSpaceOverlay)
	popup := New("SystemPopupCanvas", ScreenSpaceCamera)

	r.Register(lobby, NewScaler("lobby", lobby, DefaultSettings()))
	r.Register(popup, nil)
	r.Register(lobby, nil) // duplicate ignored

	if got := len(r.Canvases()); got != 2 {
		t.Fatalf("Canvases() len = %d, want 2", got)
	}
	if got := len(r.Scalers()); got != 1 {
		t.Fatalf("Scalers() len = %d, want 1", got)
	}
	if r.Find("SystemPopupCanvas") != popup {
		t.Error("Find(SystemPopupCanvas) did not return popup canvas")
	}
	if r.Find("Missing") != nil {
		t.Error("Find(Missing) should return nil")
	}
	if r.Canvases()[0] != lobby {
		t.Error("registration order not kept")
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	lobby := New("LobbyCanvas", ScreenSpaceOverlay)
	table := New("TableCanvas", ScreenSpaceOverlay)
	r.Register(lobby, NewScaler("lobby", lobby, DefaultSettings()))
	r.Register(table, NewScaler("table", table, DefaultSettings()))

	r.Unregister(lobby)

	if r.Find("LobbyCanvas") != nil {
		t.Error("lobby canvas still registered")
	}
	scalers := r.Scalers()
	if len(scalers) != 1 || scalers[0].Name != "table" {
		t.Errorf("Scalers() after Unregister = %v", scalers)
	}
}

func TestRegistryHandleAll(t *testing.T) {
	r := NewRegistry()
	c := New("LobbyCanvas", ScreenSpaceOverlay)
	settings := DefaultSettings()
	settings.UIScaleMode = ScaleWithScreenSize
	settings.ScreenMatchMode = Shrink
	r.Register(c, NewScaler("lobby", c, settings))

	r.HandleAll(screenOf(1920, 1080))

	if !almostEqual(c.ScaleFactor(), 2.4) {
		t.Errorf("ScaleFactor = %v, want 2.4", c.ScaleFactor())
	}
}
