package io

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boxgrid/pkg/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
		want any
	}{
		{
			name: "json array",
			file: "doc.json",
			data: `["a", 1.50]`,
			want: []any{"a", json.Number("1.50")},
		},
		{
			name: "toml table",
			file: "doc.toml",
			data: "name = \"x\"\n[inner]\nn = 2\n",
			want: map[string]any{"name": "x", "inner": map[string]any{"n": int64(2)}},
		},
		{
			name: "stdin json",
			file: "",
			data: `{"k": true}`,
			want: map[string]any{"k": true},
		},
		{
			name: "stdin toml",
			file: "-",
			data: "k = true\n",
			want: map[string]any{"k": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data), tt.file)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
		msg  string
	}{
		{"bad json", "doc.json", `{"a":`, "as JSON"},
		{"trailing json", "doc.json", `[1] [2]`, "trailing data"},
		{"bad toml", "doc.toml", "a = ", "as TOML"},
		{"neither", "", "{{", "neither JSON nor TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.file)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}

func TestRead(t *testing.T) {
	data, err := Read("-", strings.NewReader("piped"))
	if err != nil || string(data) != "piped" {
		t.Errorf("Read(-) = %q, %v", data, err)
	}

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err = Read(path, nil)
	if err != nil || string(data) != "[]" {
		t.Errorf("Read(file) = %q, %v", data, err)
	}

	_, err = Read(filepath.Join(t.TempDir(), "missing.json"), nil)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Read(missing) error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	got, err := Load("", strings.NewReader(`{"a": [1]}`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := map[string]any{"a": []any{json.Number("1")}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	if DisplayName(Stdin) != "stdin" || DisplayName("doc.toml") != "doc.toml" {
		t.Error("DisplayName() should name stdin and keep paths")
	}
}
