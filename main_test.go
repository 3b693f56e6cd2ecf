package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		args        []string
		output      string
		expectError bool
	}{
		{"built-in scene to ppm", []string{"--scene", "single-sphere", "--width", "16", "--spp", "1", "--depth", "3"}, "frame.ppm", false},
		{"scene file to png", []string{"--scene", "scenes/three-spheres.json", "--width", "12", "--spp", "1", "--depth", "2", "--workers", "2"}, "frame.png", false},
		{"normals integrator", []string{"--scene", "glass", "--width", "10", "--spp", "1", "--integrator", "normals", "--fresnel"}, "normals.ppm", false},

		{"unknown scene", []string{"--scene", "nonexistent"}, "x.ppm", true},
		{"unknown integrator", []string{"--scene", "default", "--width", "8", "--integrator", "bdpt"}, "x.ppm", true},
		{"unsupported output", []string{"--scene", "default", "--width", "8", "--spp", "1", "--depth", "1"}, "x.jpg", true},
		{"negative spp", []string{"--scene", "default", "--spp", "-1"}, "x.ppm", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.output)
			args := append([]string{"sky-pathtracer", "render"}, tt.args...)
			args = append(args, "--out", out)

			err := newApp().Run(args)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for args %v", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("Expected output file: %v", err)
			}
			if strings.HasSuffix(out, ".ppm") && !strings.HasPrefix(string(data), "P3\n") {
				t.Errorf("Expected a P3 header, got %q", string(data))
			}
			if len(data) == 0 {
				t.Error("Output file is empty")
			}
		})
	}
}

func TestListScenesCommand(t *testing.T) {
	if err := newApp().Run([]string{"sky-pathtracer", "list-scenes"}); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
