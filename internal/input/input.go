package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	// ErrNoItems indicates neither arguments nor stdin named any file.
	ErrNoItems = errors.New("no files given: pipe them in or put them on the command line")
	// ErrInvalidDelay indicates a delay that is not a positive number of seconds.
	ErrInvalidDelay = errors.New("delay must be a positive number of seconds")
)

// Request is the parsed startup input.
type Request struct {
	Items []string
	// Delay is in seconds; zero means not given on the command line.
	Delay   float64
	Verbose bool
	Piped   bool
}

// IsPiped reports whether file is a pipe or a regular file rather than a terminal.
func IsPiped(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// Parse builds a Request from positional arguments and, when piped, stdin.
//
// With a terminal on stdin every argument is a file. With piped input the
// file list comes from stdin (NUL separated, as produced by find -print0,
// or one per line) and the arguments take the form [delay [verbose]].
// An empty non-terminal stdin, as left by launchers, cron or </dev/null,
// falls back to treating the arguments as files.
func Parse(args []string, stdin io.Reader, piped bool) (Request, error) {
	if !piped {
		return parseArguments(args)
	}

	request := Request{Piped: true}
	items, err := ReadList(stdin)
	if err != nil {
		return request, err
	}
	if len(items) == 0 {
		return parseArguments(args)
	}
	request.Items = items

	if len(args) > 0 {
		delay, err := ParseDelay(args[0])
		if err != nil {
			return request, err
		}
		request.Delay = delay
	}
	request.Verbose = len(args) > 1
	return request, nil
}

func parseArguments(args []string) (Request, error) {
	if len(args) == 0 {
		return Request{}, ErrNoItems
	}
	return Request{Items: append([]string(nil), args...)}, nil
}

// ReadList reads a NUL or newline separated list of paths. Empty entries
// are dropped.
func ReadList(reader io.Reader) ([]string, error) {
	if reader == nil {
		return nil, nil
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read file list: %w", err)
	}

	var parts []string
	if bytes.IndexByte(data, 0) >= 0 {
		parts = strings.Split(string(data), "\x00")
	} else {
		parts = strings.Split(string(data), "\n")
		for i, part := range parts {
			parts[i] = strings.TrimSuffix(part, "\r")
		}
	}

	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		items = append(items, part)
	}
	return items, nil
}

// ParseDelay parses a delay in seconds.
func ParseDelay(value string) (float64, error) {
	delay, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelay, value)
	}
	if err := ValidateDelay(delay); err != nil {
		return 0, err
	}
	return delay, nil
}

// ValidateDelay checks a delay in seconds.
func ValidateDelay(delay float64) error {
	if delay <= 0 || math.IsNaN(delay) || math.IsInf(delay, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDelay, delay)
	}
	return nil
}
