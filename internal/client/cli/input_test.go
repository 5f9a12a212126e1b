package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Equal(t, "Say something\n> ", out.String())
}

func TestGetSimpleTextEOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestGetSimpleTextEOFEmpty(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "Say something", &out)
	require.Error(t, err)
}

func TestGetAmount(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("12.50\n"))

	got, err := GetAmount(r, "Amount", &out)
	require.NoError(t, err)
	require.Equal(t, 12.5, got)
}

func TestGetAmountRejectsInvalid(t *testing.T) {
	for _, input := range []string{"abc\n", "-3\n", "0\n"} {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader(input))

		_, err := GetAmount(r, "Amount", &out)
		require.Error(t, err, "input %q", input)
	}
}

func TestGetID(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("42\n"))

	got, err := GetID(r, "Member id", &out)
	require.NoError(t, err)
	require.Equal(t, int64(42), got)
}

func TestGetIDRejectsInvalid(t *testing.T) {
	for _, input := range []string{"abc\n", "0\n", "-1\n", "4.2\n"} {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader(input))

		_, err := GetID(r, "Member id", &out)
		require.Error(t, err, "input %q", input)
	}
}
