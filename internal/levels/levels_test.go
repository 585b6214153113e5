package levels

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCampaign(t *testing.T) {
	c, err := Default(800, 600)
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	if len(c.Levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(c.Levels))
	}

	themes := []Theme{ThemeForest, ThemeCave, ThemeLava, ThemeIce, ThemeSpace}
	for i, want := range themes {
		if c.Levels[i].Theme != want {
			t.Errorf("level %d theme = %q, expected %q", i, c.Levels[i].Theme, want)
		}
	}

	last := c.Levels[4]
	if last.Portal != nil {
		t.Error("boss level should not have a portal")
	}
	if last.Boss == nil || last.Boss.Health != 100 {
		t.Errorf("boss level should carry a 100 HP boss, got %+v", last.Boss)
	}

	if got := c.CrystalCount(); got != 37 {
		t.Errorf("CrystalCount() = %d, expected 37", got)
	}
}

func TestLoadTOML(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "mini.toml"), 800, 600)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Name != "Mini" || len(c.Levels) != 2 {
		t.Fatalf("unexpected campaign %q with %d levels", c.Name, len(c.Levels))
	}

	yard := c.Levels[0]
	if yard.Theme != ThemeIce {
		t.Errorf("theme = %q, expected ice", yard.Theme)
	}
	if yard.Portal == nil || yard.Portal.X != 700 {
		t.Errorf("portal = %+v, expected x=700", yard.Portal)
	}
	mp := yard.Platforms[1]
	if !mp.Moving || mp.Direction != -1 || mp.Speed != 1.5 || mp.Range != 60 {
		t.Errorf("moving platform decoded as %+v", mp)
	}
	if len(yard.PowerUps) != 1 || yard.PowerUps[0].Type != PowerUpShield {
		t.Errorf("power-ups decoded as %+v", yard.PowerUps)
	}

	if c.Levels[1].Boss == nil || c.Levels[1].Boss.AttackCooldown != 30 {
		t.Errorf("boss decoded as %+v", c.Levels[1].Boss)
	}
}

func TestLoadRejectsInvalidPack(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad_theme.yaml"), 800, 600)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError in chain, got %v", err)
	}
	if ve.Code != "BAD_THEME" || ve.Level != "swamp" {
		t.Errorf("got code %q level %q, expected BAD_THEME for swamp", ve.Code, ve.Level)
	}
}

func TestValidate(t *testing.T) {
	base := func() Level {
		return Level{
			ID:        "l",
			Theme:     ThemeCave,
			Spawn:     Point{X: 10, Y: 10},
			Portal:    &Point{X: 700, Y: 100},
			Platforms: []Platform{{X: 0, Y: 550, W: 800, H: 50}},
		}
	}

	tests := []struct {
		name   string
		mutate func(l *Level)
		code   string
	}{
		{"valid", func(l *Level) {}, ""},
		{"no platforms", func(l *Level) { l.Platforms = nil }, "NO_PLATFORMS"},
		{"zero-size platform", func(l *Level) { l.Platforms[0].H = 0 }, "BAD_PLATFORM"},
		{"moving without direction", func(l *Level) {
			l.Platforms = append(l.Platforms, Platform{X: 1, Y: 1, W: 10, H: 10, Moving: true, Speed: 1})
		}, "BAD_PLATFORM"},
		{"spawn outside", func(l *Level) { l.Spawn.X = 900 }, "SPAWN_OUT_OF_BOUNDS"},
		{"unknown enemy", func(l *Level) {
			l.Enemies = []Enemy{{Type: "bat", W: 10, H: 10}}
		}, "BAD_ENEMY"},
		{"static walker", func(l *Level) {
			l.Enemies = []Enemy{{Type: EnemyWalker, W: 10, H: 10}}
		}, "BAD_ENEMY"},
		{"jumper without force", func(l *Level) {
			l.Enemies = []Enemy{{Type: EnemyJumper, W: 10, H: 10}}
		}, "BAD_ENEMY"},
		{"unknown power-up", func(l *Level) {
			l.PowerUps = []PowerUp{{Type: "laser"}}
		}, "BAD_POWERUP"},
		{"no exit", func(l *Level) { l.Portal = nil }, "NO_EXIT"},
		{"portal and boss", func(l *Level) {
			l.Boss = &Boss{W: 80, H: 80, Health: 100, AttackCooldown: 60, Pattern: PatternSpiral, BulletSpeed: 5}
		}, "PORTAL_ON_BOSS_LEVEL"},
		{"boss with unknown pattern", func(l *Level) {
			l.Portal = nil
			l.Boss = &Boss{W: 80, H: 80, Health: 100, AttackCooldown: 60, Pattern: "wave", BulletSpeed: 5}
		}, "BAD_BOSS"},
		{"walker outside", func(l *Level) {
			l.Enemies = []Enemy{{Type: EnemyWalker, X: 790, Y: 100, W: 30, H: 30, Speed: 2}}
		}, "ENEMY_OUT_OF_BOUNDS"},
		{"flyer above", func(l *Level) {
			l.Enemies = []Enemy{{Type: EnemyFlyer, X: 100, Y: -40, W: 30, H: 30, Speed: 3}}
		}, "ENEMY_OUT_OF_BOUNDS"},
		{"boss outside", func(l *Level) {
			l.Portal = nil
			l.Boss = &Boss{X: 760, W: 80, H: 80, Health: 100, AttackCooldown: 60, Pattern: PatternSpiral, BulletSpeed: 5}
		}, "BOSS_OUT_OF_BOUNDS"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := base()
			tc.mutate(&l)
			err := Validate(Campaign{Levels: []Level{l}}, 800, 600)

			if tc.code == "" {
				if err != nil {
					t.Errorf("expected valid level, got %v", err)
				}
				return
			}

			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Code != tc.code {
				t.Errorf("code = %q, expected %q (%v)", ve.Code, tc.code, err)
			}
		})
	}
}

func TestValidateEmptyAndDuplicate(t *testing.T) {
	if err := Validate(Campaign{}, 800, 600); err == nil {
		t.Error("empty campaign should be rejected")
	}

	c, err := Default(800, 600)
	if err != nil {
		t.Fatal(err)
	}
	c.Levels[1].ID = c.Levels[0].ID
	var ve ValidationError
	if err := Validate(c, 800, 600); !errors.As(err, &ve) || ve.Code != "DUPLICATE_ID" {
		t.Errorf("expected DUPLICATE_ID, got %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	c, err := Default(800, 600)
	if err != nil {
		t.Fatal(err)
	}

	clone := c.Clone()
	clone.Levels[0].Crystals[0].X = -1
	clone.Levels[0].Portal.X = -1
	clone.Levels[4].Boss.Health = 1

	if c.Levels[0].Crystals[0].X == -1 || c.Levels[0].Portal.X == -1 || c.Levels[4].Boss.Health == 1 {
		t.Error("Clone() shares memory with the original")
	}
}

func TestValidateBossOnlyOnFinalLevel(t *testing.T) {
	level := func(id string, boss bool) Level {
		l := Level{
			ID:        id,
			Theme:     ThemeCave,
			Spawn:     Point{X: 10, Y: 10},
			Platforms: []Platform{{X: 0, Y: 550, W: 800, H: 50}},
		}
		if boss {
			l.Boss = &Boss{X: 360, Y: 100, W: 80, H: 80, Health: 20, AttackCooldown: 30, Pattern: PatternSpiral, BulletSpeed: 4}
		} else {
			l.Portal = &Point{X: 700, Y: 480}
		}
		return l
	}

	tests := []struct {
		name   string
		levels []Level
		code   string
		level  string
	}{
		{"boss last", []Level{level("a", false), level("b", false), level("c", true)}, "", ""},
		{"boss first", []Level{level("a", true), level("b", false), level("c", false)}, "BOSS_NOT_FINAL", "a"},
		{"two bosses", []Level{level("a", false), level("b", true), level("c", true)}, "BOSS_NOT_FINAL", "b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(Campaign{Levels: tc.levels}, 800, 600)
			if tc.code == "" {
				if err != nil {
					t.Errorf("expected valid campaign, got %v", err)
				}
				return
			}

			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Code != tc.code || ve.Level != tc.level {
				t.Errorf("got code %q level %q, expected %q for %s", ve.Code, ve.Level, tc.code, tc.level)
			}
		})
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := Parse([]byte("{}"), ".json")
	if err == nil {
		t.Fatal("expected error for .json")
	}
	for _, ext := range FormatExtensions() {
		if !strings.Contains(err.Error(), ext) {
			t.Errorf("error %q should list %s", err, ext)
		}
	}
}
