package parser_test

import (
	"testing"

	"cyclehud/input/parser"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	t.Run("should parse a down event", func(t *testing.T) {
		got, err := parser.ParseLine("key: 33, state: down")

		assert.NoError(t, err)
		assert.Equal(t, &parser.RawEvent{Key: 33, Pressed: true}, got)
	})

	t.Run("should parse an up event", func(t *testing.T) {
		got, err := parser.ParseLine("key: 5, state: up")

		assert.NoError(t, err)
		assert.Equal(t, &parser.RawEvent{Key: 5, Pressed: false}, got)
	})

	t.Run("should skip lines without an event", func(t *testing.T) {
		for _, line := range []string{
			"",
			"booting event feed v2",
			"key: 33",
		} {
			got, err := parser.ParseLine(line)

			assert.NoError(t, err)
			assert.Nil(t, got)
		}
	})

	t.Run("should error on garbage key value", func(t *testing.T) {
		_, err := parser.ParseLine("key: banana, state: down")

		assert.Error(t, err)
	})

	t.Run("should error on unexpected state value", func(t *testing.T) {
		_, err := parser.ParseLine("key: 33, state: sideways")

		assert.Error(t, err)
	})

	t.Run("should tolerate extra tokens", func(t *testing.T) {
		got, err := parser.ParseLine("ts: 123456 key: 8, state: down, source: pad")

		assert.NoError(t, err)
		assert.Equal(t, &parser.RawEvent{Key: 8, Pressed: true}, got)
	})
}
