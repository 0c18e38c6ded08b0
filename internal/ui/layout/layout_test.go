package layout

import (
	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"strings"
	"testing"
)

func TestShopButtonsFollowShopOrder(t *testing.T) {
	buttons := ShopButtons()
	if len(buttons) != len(defs.ShopOrder) {
		t.Fatalf("expected %d buttons, got %d", len(defs.ShopOrder), len(buttons))
	}
	for i, b := range buttons {
		if b.Tower != defs.ShopOrder[i] {
			t.Errorf("button %d: expected %s, got %s", i, defs.ShopOrder[i], b.Tower)
		}
		if b.Rect.X+b.Rect.W > config.ScreenWidth || b.Rect.Y+b.Rect.H > config.ScreenHeight {
			t.Errorf("button %d off screen: %+v", i, b.Rect)
		}
		if InField(b.Rect.X+1, b.Rect.Y+1) {
			t.Errorf("button %d overlaps the field", i)
		}
	}
}

func TestShopButtonAt(t *testing.T) {
	y := float64(config.FieldHeight + config.ShopMargin + 5)
	cases := []struct {
		x    float64
		want defs.TowerID
		ok   bool
	}{
		{config.ShopMargin + 1, defs.TowerBasic, true},
		{config.ShopMargin + config.ShopButtonSpacing + 1, defs.TowerSniper, true},
		{config.ShopMargin + 3*config.ShopButtonSpacing + config.ShopButtonWidth, defs.TowerFlame, true},
		{config.ShopMargin + config.ShopButtonWidth + 5, "", false}, // зазор между кнопками
	}
	for _, c := range cases {
		got, ok := ShopButtonAt(c.x, y)
		if got != c.want || ok != c.ok {
			t.Errorf("ShopButtonAt(%v, %v): expected (%q, %v), got (%q, %v)", c.x, y, c.want, c.ok, got, ok)
		}
	}
	if _, ok := ShopButtonAt(config.ShopMargin+1, 100); ok {
		t.Error("expected no shop button on the field")
	}
}

func TestInField(t *testing.T) {
	if !InField(0, 0) || !InField(config.FieldWidth-1, config.FieldHeight-1) {
		t.Error("expected field corners to be inside")
	}
	if InField(config.FieldWidth, 10) || InField(10, config.FieldHeight) || InField(-1, 10) {
		t.Error("expected points past the edges to be outside")
	}
}

func TestInCircle(t *testing.T) {
	if !InCircle(3, 4, 0, 0, 5) {
		t.Error("expected point on the circle to hit")
	}
	if InCircle(3, 4.1, 0, 0, 5) {
		t.Error("expected point outside the circle to miss")
	}
}

func TestStartButtonCentered(t *testing.T) {
	r := StartButton()
	if !r.Contains(config.ScreenWidth/2, config.ScreenHeight/2) {
		t.Errorf("expected screen center inside start button %+v", r)
	}
}

func TestHUDLines(t *testing.T) {
	econ := *component.NewEconomy()
	econ.EnemySpeed = 1.2000000001
	lines := HUDLines(econ)
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d", len(lines))
	}
	if lines[0] != "Money: 100" || lines[1] != "Lives: 10" {
		t.Errorf("unexpected counters %q", lines[:2])
	}
	if lines[5] != "Enemy Speed: 1.2" {
		t.Errorf("expected speed with one decimal, got %q", lines[5])
	}
}

func TestShopLabelShowsBurn(t *testing.T) {
	flame, _ := defs.Tower(defs.TowerFlame)
	if !strings.HasPrefix(ShopLabel(flame)[4], "Burn: 4/s") {
		t.Errorf("unexpected flame label %q", ShopLabel(flame))
	}
	basic, _ := defs.Tower(defs.TowerBasic)
	if len(ShopLabel(basic)) != 4 {
		t.Errorf("basic tower has no burn line, got %q", ShopLabel(basic))
	}
}

func TestSpeedMultiplier(t *testing.T) {
	want := []int{1, 2, 4}
	for state, w := range want {
		if got := SpeedMultiplier(state); got != w {
			t.Errorf("state %d: expected x%d, got x%d", state, w, got)
		}
	}
	if SpeedMultiplier(7) != 1 {
		t.Error("expected fallback to x1")
	}
}

func TestStatsLines(t *testing.T) {
	econ := *component.NewEconomy()
	econ.Level = 3
	lines := StatsLines(app.Stats{Kills: 4, BountyEarned: 50, Escapes: 10, TowersBuilt: 2, ShotsFired: 31}, econ)
	want := []string{
		"Reached level 3",
		"Enemies killed: 4 (+50 gold)",
		"Enemies escaped: 10",
		"Towers built: 2",
		"Shots fired: 31",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}
