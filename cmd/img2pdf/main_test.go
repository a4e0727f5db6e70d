package main

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func readBack(t *testing.T, f *os.File) string {
	t.Helper()
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestRunDispatch(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no arguments", args: nil, wantErr: ErrNoCommand},
		{name: "unknown command", args: []string{"explode"}, wantErr: ErrUnknownCommand},
		{name: "version", args: []string{"version"}},
		{name: "version flag", args: []string{"--version"}},
		{name: "help", args: []string{"help"}},
		{name: "help flag", args: []string{"--help"}},
		{name: "convert without paths", args: []string{"convert"}, wantErr: ErrMissingArgs},
		{name: "merge without paths", args: []string{"merge"}, wantErr: ErrMissingArgs},
		{name: "decrypt without password", args: []string{"decrypt", "in.pdf", "out.pdf"}, wantErr: ErrMissingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := tempFile(t), tempFile(t)
			err := run(tt.args, stdout, stderr)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("run(%v) error = %v, want %v", tt.args, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("run(%v) unexpected error: %v", tt.args, err)
			}
		})
	}
}

func TestRunVersionOutput(t *testing.T) {
	stdout, stderr := tempFile(t), tempFile(t)
	if err := run([]string{"version"}, stdout, stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := readBack(t, stdout); !strings.Contains(got, "img2pdf") {
		t.Errorf("version output = %q", got)
	}
}

func TestRunHelpListsCommands(t *testing.T) {
	stdout, stderr := tempFile(t), tempFile(t)
	if err := run([]string{"help"}, stdout, stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := readBack(t, stdout)
	for _, cmd := range []string{"convert", "merge", "decrypt"} {
		if !strings.Contains(got, cmd) {
			t.Errorf("help output missing %q", cmd)
		}
	}
}

func TestRunConvertEndToEnd(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "page.png")
	f, err := os.Create(input)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 20, 10))); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "out.pdf")

	stdout, stderr := tempFile(t), tempFile(t)
	if err := run([]string{"convert", "-q", input, output}, stdout, stderr); err != nil {
		t.Fatalf("run convert: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("output file is not a PDF")
	}
}
