// Package web serves a small status surface for the simulation host: the
// four rotations, the advisory equipped entries, and HUD visibility. The
// real game renders its own HUD, so this stays JSON-only.
package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"cyclehud/model"
)

// Status is what the handlers need from the running host.
type Status interface {
	CycleEntries(slot model.Action) []model.CycleEntry
	EquippedInSlot(slot model.Action) model.CycleEntry
}

// Visibility is the HUD-side part of the status.
type Visibility interface {
	Visible() bool
}

type ServerHandler struct {
	Status     Status
	Visibility Visibility
}

type slotStatus struct {
	Slot     string   `json:"slot"`
	Items    []string `json:"items"`
	Equipped string   `json:"equipped,omitempty"`
}

type statusResponse struct {
	Visible bool         `json:"visible"`
	Slots   []slotStatus `json:"slots"`
}

func (s *ServerHandler) handleCycles(w http.ResponseWriter, _ *http.Request) {
	resp := statusResponse{Slots: make([]slotStatus, 0, len(model.SlotActions))}
	if s.Visibility != nil {
		resp.Visible = s.Visibility.Visible()
	}

	for _, slot := range model.SlotActions {
		entries := s.Status.CycleEntries(slot)
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name)
		}

		resp.Slots = append(resp.Slots, slotStatus{
			Slot:     slot.String(),
			Items:    names,
			Equipped: s.Status.EquippedInSlot(slot).Name,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

func (s *ServerHandler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// Mux builds the route table. Split out of StartServer for tests.
func (s *ServerHandler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/cycles", s.handleCycles)
	mux.HandleFunc("/healthz", s.handleHealthz)

	return mux
}

// StartServer blocks serving the status endpoints.
func StartServer(port int, status Status, visibility Visibility) error {
	handler := &ServerHandler{Status: status, Visibility: visibility}

	addr := fmt.Sprintf(":%d", port)
	slog.Info("status server listening", "addr", addr)

	if err := http.ListenAndServe(addr, handler.Mux()); err != nil {
		return fmt.Errorf("status server failed: %w", err)
	}
	return nil
}
