package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cyclehud/model"
	"cyclehud/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StatusMock is a simple manual mock of the web.Status interface.
type StatusMock struct {
	Cycles  map[model.Action][]model.CycleEntry
	TopItem map[model.Action]model.CycleEntry
}

func (m *StatusMock) CycleEntries(slot model.Action) []model.CycleEntry {
	return m.Cycles[slot]
}

func (m *StatusMock) EquippedInSlot(slot model.Action) model.CycleEntry {
	return m.TopItem[slot]
}

type VisibilityMock struct {
	IsVisible bool
}

func (m *VisibilityMock) Visible() bool {
	return m.IsVisible
}

func TestCyclesEndpoint(t *testing.T) {
	t.Run("should report all four slots", func(t *testing.T) {
		status := &StatusMock{
			Cycles: map[model.Action][]model.CycleEntry{
				model.Left: {
					{FormSpec: "mod.esp|0x01", Name: "Iron Sword"},
					{FormSpec: "mod.esp|0x02", Name: "Dagger"},
				},
			},
			TopItem: map[model.Action]model.CycleEntry{
				model.Left: {FormSpec: "mod.esp|0x01", Name: "Iron Sword"},
			},
		}
		handler := &web.ServerHandler{Status: status, Visibility: &VisibilityMock{IsVisible: true}}

		req := httptest.NewRequest(http.MethodGet, "/cycles", nil)
		rec := httptest.NewRecorder()
		handler.Mux().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var got struct {
			Visible bool `json:"visible"`
			Slots   []struct {
				Slot     string   `json:"slot"`
				Items    []string `json:"items"`
				Equipped string   `json:"equipped"`
			} `json:"slots"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

		assert.True(t, got.Visible)
		require.Len(t, got.Slots, 4)

		bySlot := map[string][]string{}
		for _, s := range got.Slots {
			bySlot[s.Slot] = s.Items
			if s.Slot == "left" {
				assert.Equal(t, "Iron Sword", s.Equipped)
			}
		}
		assert.Equal(t, []string{"Iron Sword", "Dagger"}, bySlot["left"])
		assert.Empty(t, bySlot["power"])
	})
}

func TestHealthz(t *testing.T) {
	handler := &web.ServerHandler{Status: &StatusMock{}}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.Mux().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
