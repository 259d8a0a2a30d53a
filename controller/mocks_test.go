package controller_test

import (
	"errors"

	"cyclehud/cycle"
)

// StoreMock is a simple manual mock implementation of the db.Store interface.
type StoreMock struct {
	LoadData   *cycle.CycleData
	LoadError  error
	SaveError  error
	SaveCalls  int
	CloseCalls int
}

func (m *StoreMock) Load() (*cycle.CycleData, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if m.LoadData == nil {
		return cycle.New(), nil
	}
	return m.LoadData, nil
}

func (m *StoreMock) Save(data *cycle.CycleData) error {
	m.SaveCalls++
	return m.SaveError
}

func (m *StoreMock) Close() {
	m.CloseCalls++
}

// HUDMock records the collaborator calls the controller makes.
type HUDMock struct {
	Transitioning   bool
	AlphaCalls      int
	LastFadeIn      bool
	LastAlpha       float64
	VisibilityCalls int
}

func (m *HUDMock) GetIsTransitioning() bool {
	return m.Transitioning
}

func (m *HUDMock) SetAlphaTransition(fadeIn bool, alpha float64) {
	m.AlphaCalls++
	m.LastFadeIn = fadeIn
	m.LastAlpha = alpha
}

func (m *HUDMock) ToggleHUDVisibility() {
	m.VisibilityCalls++
}

// NotifierMock collects the player-facing messages.
type NotifierMock struct {
	Messages []string
}

func (m *NotifierMock) NotifyPlayer(msg string) {
	m.Messages = append(m.Messages, msg)
}

var errDiskFull = errors.New("disk full")
