package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// InitState tracks whether first-run initialization is required.
type InitState struct {
	ConfigMissing bool
	ConfigPath    string
}

// DetectInitState checks whether the config file exists at path. An empty
// path never counts as missing.
func DetectInitState(path string) (InitState, error) {
	state := InitState{ConfigPath: path}
	if path == "" {
		return state, nil
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		state.ConfigMissing = true
	default:
		return InitState{}, fmt.Errorf("checking config path: %w", err)
	}
	return state, nil
}
