package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCurveEval(t *testing.T) {
	c := Curve{{Level: 1, Value: 10}, {Level: 5, Value: 20}, {Level: 9, Value: 21}}

	tests := []struct {
		level int
		want  int
	}{
		{-3, 10},
		{1, 10},
		{2, 12}, // 12.5 rounds to even
		{3, 15},
		{4, 18}, // 17.5 rounds to even
		{5, 20},
		{7, 20}, // 20.5 rounds to even
		{9, 21},
		{50, 21},
	}

	for _, tt := range tests {
		if got := c.Eval(tt.level); got != tt.want {
			t.Errorf("Eval(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}

	if got := (Curve{}).Eval(3); got != 0 {
		t.Errorf("empty curve = %d, want 0", got)
	}
	if got := c.Func()(3); got != 15 {
		t.Errorf("Func()(3) = %d, want 15", got)
	}
}

func TestCurveValidate(t *testing.T) {
	tests := []struct {
		name    string
		curve   Curve
		wantErr string
	}{
		{"ok", Curve{{Level: 1, Value: 1}, {Level: 2, Value: 3}}, ""},
		{"empty", Curve{}, "at least one"},
		{"negative", Curve{{Level: 1, Value: -1}}, "negative"},
		{"unordered", Curve{{Level: 3, Value: 1}, {Level: 2, Value: 1}}, "not after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.curve.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults invalid: %v", err)
	}
	def := DefaultConfig()

	if cfg.Board != def.Board || cfg.Turn != def.Turn || cfg.Letters != def.Letters {
		t.Errorf("embedded = %+v, hardcoded = %+v", cfg, def)
	}
	for level := 1; level <= 12; level++ {
		if cfg.Curves.GrowGoals.Eval(level) != def.Curves.GrowGoals.Eval(level) ||
			cfg.Curves.KillTurns.Eval(level) != def.Curves.KillTurns.Eval(level) {
			t.Errorf("curves differ at level %d", level)
		}
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Board.Radius = 0
	cfg.Turn.LengthMS = -1
	cfg.Curves.KillGoals = nil

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"board.radius", "turn.length_ms", "curves.kill_goals"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("board:\n  radius: 6\nletters:\n  corruption_gate: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Radius != 6 || cfg.Letters.CorruptionGate != 0 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Turn.LengthMS != DefaultConfig().Turn.LengthMS {
		t.Error("unset fields should keep their defaults")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  radius: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "board.radius") {
		t.Errorf("got %v, want radius error", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Radius != 4 {
		t.Errorf("radius = %d, want embedded 4", cfg.Board.Radius)
	}

	// Local configs directory.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("board:\n  radius: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, _ = Load(""); cfg.Board.Radius != 5 {
		t.Errorf("radius = %d, want local 5", cfg.Board.Radius)
	}

	// User directory wins over local.
	userDir := filepath.Join(home, ".hexcorrupt", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, FileName), []byte("board:\n  radius: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, _ = Load(""); cfg.Board.Radius != 3 {
		t.Errorf("radius = %d, want user 3", cfg.Board.Radius)
	}
}
