package coordinator

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/AhiyaHiya/MandelbrotSet/mandelbrot"
	"github.com/AhiyaHiya/MandelbrotSet/misc"
	"github.com/AhiyaHiya/MandelbrotSet/task"
)

func TestNewSettingsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	contents := []byte(`{"OutputFile":"out.png","Render":{"CenterX":-0.5,"Size":2,"MaxIterations":255,"PixelsWide":64},"SavePath":"` + dir + `","ServerAddress":"127.0.0.1:51000"}`)
	if _, err := misc.WriteFile(path, contents); err != nil {
		t.Fatalf("unable to write settings file: %s", err)
	}

	s := NewSettings(path)
	if s.Render.PixelsWide != 64 || s.Render.CenterX != -0.5 {
		t.Errorf("render settings did not load: %s", s.Render.String())
	}
	if s.OutputFile != "out.png" {
		t.Errorf("output file = %q, expected out.png", s.OutputFile)
	}
	if s.TaskGeneration != task.Row {
		t.Errorf("task generation defaulted to %s, expected Row", s.TaskGeneration.String())
	}
}

func TestBackupRoundTrip(t *testing.T) {
	s := settings{
		OutputFile:    "mandelbrot.png",
		Render:        mandelbrot.Settings{CenterX: -0.5, Size: 2.0, MaxIterations: 255, PixelsWide: 64},
		SavePath:      t.TempDir(),
		ServerAddress: "127.0.0.1:51000",
	}
	if err := s.Verify(); err != nil {
		t.Fatalf("settings did not verify: %s", err)
	}

	if err := s.Backup(); err != nil {
		t.Fatalf("unexpected backup error: %s", err)
	}

	err, fileBytes := misc.ReadFile(filepath.Join(s.SavePath, "run_settings.json"))
	if err != nil {
		t.Fatalf("unable to read the backup: %s", err)
	}
	var restored settings
	if err := json.Unmarshal(fileBytes, &restored); err != nil {
		t.Fatalf("unable to unmarshal the backup: %s", err)
	}
	if restored.Render != s.Render {
		t.Errorf("restored render settings %s, expected %s", restored.Render.String(), s.Render.String())
	}
	if restored.OutputFile != s.OutputFile || restored.ServerAddress != s.ServerAddress {
		t.Error("restored settings do not match the saved run")
	}
}

func TestBackupMissingSavePath(t *testing.T) {
	s := settings{
		OutputFile:    "mandelbrot.png",
		Render:        mandelbrot.Settings{Size: 2.0, MaxIterations: 255, PixelsWide: 8},
		SavePath:      filepath.Join(t.TempDir(), "missing"),
		ServerAddress: "127.0.0.1:51000",
	}
	if err := s.Backup(); err == nil {
		t.Error("expected an error for a missing save path")
	}
}
