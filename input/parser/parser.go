package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// RawEvent is one key transition as the event feed reports it.
type RawEvent struct {
	Key     uint32
	Pressed bool
}

// ParseLine extracts a raw key event from a feed line of the form
// "key: 33, state: down". Lines that carry no event (debug output, blank
// lines) yield nil without an error; malformed values error out so the
// caller can warn and keep going.
func ParseLine(line string) (*RawEvent, error) {
	splits := strings.Split(line, " ")

	var (
		key        uint64
		pressed    bool
		foundCount int
		err        error
	)
	ix := 0
	limit := len(splits) - 1 // We always care about the next token, so stop before it's too late

	for ix < limit {
		curItem := splits[ix]
		nextItem := strings.TrimRight(splits[ix+1], ",")

		switch curItem {
		case "key:":
			key, err = strconv.ParseUint(nextItem, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("could not parse key: %w", err)
			}
			ix++
			foundCount++
		case "state:":
			switch nextItem {
			case "down":
				pressed = true
			case "up":
				pressed = false
			default:
				return nil, fmt.Errorf("state value unexpected: '%s'", nextItem)
			}
			ix++
			foundCount++
		default:
		}

		ix++
	}

	if foundCount == 2 {
		return &RawEvent{Key: uint32(key), Pressed: pressed}, nil
	}
	return nil, nil
}
