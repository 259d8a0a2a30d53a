package ports

import (
	"bufio"
	"io"
	"log"
	"strings"
	"time"

	"go.bug.st/serial"
)

// Open connects to a serial device that emits key-event lines.
func Open(path string) (r io.Reader, closer func(), err error) {
	port, err := serial.Open(path, &serial.Mode{
		BaudRate: 9600,
	})
	if err != nil {
		return nil, nil, err
	}

	c := func() {
		if err := port.Close(); err != nil {
			log.Fatal(err)
		}
	}

	// TODO make this configurable.
	port.SetReadTimeout(10 * time.Hour)
	return port, c, nil
}

// ReadFile reads lines from r into a channel. The channel closes when the
// reader is exhausted.
func ReadFile(f io.Reader) <-chan string {
	ch := make(chan string)

	go func() {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			ch <- scanner.Text()
		}
		close(ch)
	}()

	return ch
}

// OpenDevice opens the serial device and hands back its line channel.
func OpenDevice(path string) (<-chan string, func(), error) {
	reader, closer, err := Open(path)
	if err != nil {
		return nil, nil, err
	}

	return ReadFile(reader), closer, nil
}

// GetAvailableDevices suggests serial ports that look like they could be an
// event feed.
func GetAvailableDevices() ([]string, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, err
	}

	result := make([]string, 0)

	for _, n := range names {
		if strings.Contains(n, "tty.usbmodem") {
			result = append(result, n)
		}
	}

	return result, nil
}
