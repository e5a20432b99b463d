package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/boxgrid/pkg/errors"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Read returns the raw bytes of the document at path, or of stdin when
// path is empty or [Stdin]. A missing file is reported with
// [errors.ErrCodeFileNotFound].
func Read(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read %s", path)
	}
	return data, nil
}

// Decode parses a JSON or TOML document read from name. Every failure is
// an [errors.ErrCodeInvalidInput] error naming the source.
func Decode(data []byte, name string) (any, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return decodeJSON(data, name)
	case ".toml":
		return decodeTOML(data, name)
	}
	if v, err := decodeJSON(data, name); err == nil {
		return v, nil
	}
	v, err := decodeTOML(data, name)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s is neither JSON nor TOML", DisplayName(name))
	}
	return v, nil
}

// Load reads and decodes the document at path.
func Load(path string, stdin io.Reader) (any, error) {
	data, err := Read(path, stdin)
	if err != nil {
		return nil, err
	}
	return Decode(data, path)
}

func decodeJSON(data []byte, name string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to parse %s as JSON", DisplayName(name))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s has trailing data after the JSON value", DisplayName(name))
	}
	return v, nil
}

func decodeTOML(data []byte, name string) (any, error) {
	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to parse %s as TOML", DisplayName(name))
	}
	return v, nil
}

// DisplayName returns the name used for path in messages.
func DisplayName(path string) string {
	if path == "" || path == Stdin {
		return "stdin"
	}
	return path
}
