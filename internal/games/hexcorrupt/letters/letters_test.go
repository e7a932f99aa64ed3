package letters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/hexcorrupt/internal/games/hexcorrupt/core"
)

func TestDefaultLetters(t *testing.T) {
	ls := Default()
	if len(ls) != 6 {
		t.Fatalf("got %d letters, want 6", len(ls))
	}

	want := core.DefaultThresholds()
	got := Thresholds(ls)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("letter %d unlocks at %+v, want %+v", i, got[i], want[i])
		}
		if ls[i].Index != i || ls[i].Title == "" || ls[i].Body == "" {
			t.Errorf("letter %d incomplete: %+v", i, ls[i])
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    core.Threshold
		wantErr string
	}{
		{
			name: "shrinking phase",
			yaml: "letters:\n  - index: 2\n    title: t\n    body: b\n    unlock: { level: 3, phase: Shrinking }\n",
			want: core.Threshold{Level: 3, Phase: core.PhaseShrinking},
		},
		{
			name: "phase defaults to growing",
			yaml: "letters:\n  - index: 0\n    unlock: { level: 1 }\n",
			want: core.Threshold{Level: 1, Phase: core.PhaseGrowing},
		},
		{
			name:    "unknown phase",
			yaml:    "letters:\n  - index: 0\n    unlock: { level: 1, phase: sideways }\n",
			wantErr: "unknown phase",
		},
		{
			name:    "level zero",
			yaml:    "letters:\n  - index: 0\n    unlock: { level: 0 }\n",
			wantErr: "at least 1",
		},
		{
			name:    "bad yaml",
			yaml:    "letters: [",
			wantErr: "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("got %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(ls) != 1 || ls[0].Unlock != tt.want {
				t.Errorf("got %+v, want unlock %+v", ls, tt.want)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yaml"), "letters:\n  - index: 1\n    title: second\n    unlock: { level: 2 }\n")
	writeFile(t, filepath.Join(dir, "nested", "a.yml"), "letters:\n  - index: 0\n    title: first\n    unlock: { level: 1 }\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	ls, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(ls) != 2 || ls[0].Title != "first" || ls[1].Title != "second" {
		t.Errorf("got %+v", ls)
	}

	writeFile(t, filepath.Join(dir, "dup.yaml"), "letters:\n  - index: 1\n    unlock: { level: 4 }\n")
	if _, err := NewLoader(dir).LoadAll(); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("got %v, want duplicate error", err)
	}
}

func TestLoad(t *testing.T) {
	ls, err := Load("")
	if err != nil || len(ls) != 6 {
		t.Fatalf("Load(\"\") = %d letters, %v", len(ls), err)
	}
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("empty directory should fail")
	}
}
