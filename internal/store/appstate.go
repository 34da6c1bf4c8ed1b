package store

import (
	"encoding/json"
)

const appStateKey = "app-state"

// AppState holds small application-level flags that live outside the user's
// tracked data.
type AppState struct {
	LastRunVersion string `json:"last_run_version"`
}

// LoadAppState reads the app state, returning a zero value when absent or
// unreadable.
func (s *Storage) LoadAppState() (AppState, error) {
	var state AppState
	data, ok, err := s.Get(appStateKey)
	if err != nil || !ok {
		return state, err
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return AppState{}, err
	}
	return state, nil
}

// SaveAppState persists the app state.
func (s *Storage) SaveAppState(state AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.Set(appStateKey, data)
}
