package settings_test

import (
	"testing"
	"time"

	"cyclehud/model"
	"cyclehud/settings"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("should map bound keys to their actions", func(t *testing.T) {
		s := settings.Default()

		assert.Equal(t, model.Power, s.Classify(s.Power))
		assert.Equal(t, model.Utility, s.Classify(s.Utility))
		assert.Equal(t, model.Left, s.Classify(s.Left))
		assert.Equal(t, model.Right, s.Classify(s.Right))
		assert.Equal(t, model.Activate, s.Classify(s.Activate))
		assert.Equal(t, model.ShowHide, s.Classify(s.ShowHide))
	})

	t.Run("should map unbound keys to irrelevant", func(t *testing.T) {
		s := settings.Default()

		assert.Equal(t, model.Irrelevant, s.Classify(0))
		assert.Equal(t, model.Irrelevant, s.Classify(255))
	})
}

func TestFromViper(t *testing.T) {
	t.Run("should overlay config values onto defaults", func(t *testing.T) {
		v := viper.New()
		v.Set("keys.left", 30)
		v.Set("fade.enabled", true)
		v.Set("equip-delay-ms", 250)
		v.Set("store", "/tmp/other.sqlite")

		s := settings.FromViper(v)

		assert.Equal(t, uint32(30), s.Left)
		assert.True(t, s.FadeEnabled)
		assert.Equal(t, 250*time.Millisecond, s.EquipDelay)
		assert.Equal(t, "/tmp/other.sqlite", s.StorePath)
		// untouched keys keep their defaults
		assert.Equal(t, settings.Default().Right, s.Right)
		assert.Equal(t, settings.Default().MaxCycleLength, s.MaxCycleLength)
	})

	t.Run("empty config should equal defaults", func(t *testing.T) {
		s := settings.FromViper(viper.New())

		assert.Equal(t, settings.Default(), s)
	})
}
