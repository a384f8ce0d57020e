package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArguments(t *testing.T) {
	request, err := Parse([]string{"a.png", "b.jpg"}, strings.NewReader("ignored"), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.jpg"}, request.Items)
	assert.Zero(t, request.Delay)
	assert.False(t, request.Verbose)
	assert.False(t, request.Piped)
}

func TestParseArgumentsRequiresFiles(t *testing.T) {
	_, err := Parse(nil, nil, false)
	require.ErrorIs(t, err, ErrNoItems)
}

func TestParsePipedNulSeparated(t *testing.T) {
	request, err := Parse(nil, strings.NewReader("a.png\x00dir/b c.png\x00\x00"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "dir/b c.png"}, request.Items)
	assert.True(t, request.Piped)
}

func TestParsePipedNewlineSeparated(t *testing.T) {
	request, err := Parse(nil, strings.NewReader("a.png\r\nb.png\n\n  \nc.png"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, request.Items)
}

func TestParsePipedDelayAndVerbose(t *testing.T) {
	request, err := Parse([]string{"2.5"}, strings.NewReader("a.png"), true)
	require.NoError(t, err)
	assert.Equal(t, 2.5, request.Delay)
	assert.False(t, request.Verbose)

	request, err = Parse([]string{"0.5", "v"}, strings.NewReader("a.png"), true)
	require.NoError(t, err)
	assert.Equal(t, 0.5, request.Delay)
	assert.True(t, request.Verbose)
}

func TestParseEmptyStdinFallsBackToArguments(t *testing.T) {
	request, err := Parse([]string{"a.png", "b.png"}, strings.NewReader(""), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.png"}, request.Items)
	assert.Zero(t, request.Delay)
	assert.False(t, request.Piped)

	request, err = Parse([]string{"2"}, strings.NewReader("\n"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, request.Items)
}

func TestParsePipedErrors(t *testing.T) {
	_, err := Parse(nil, strings.NewReader("\n\n"), true)
	require.ErrorIs(t, err, ErrNoItems)

	_, err = Parse([]string{"fast"}, strings.NewReader("a.png"), true)
	require.ErrorIs(t, err, ErrInvalidDelay)

	_, err = Parse(nil, failingReader{}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read file list")
}

func TestParseDelay(t *testing.T) {
	delay, err := ParseDelay(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3.0, delay)

	for _, value := range []string{"0", "-1", "NaN", "Inf", ""} {
		_, err := ParseDelay(value)
		assert.ErrorIs(t, err, ErrInvalidDelay, value)
	}
}

func TestIsPipedNil(t *testing.T) {
	assert.False(t, IsPiped(nil))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}
