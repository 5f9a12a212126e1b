package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetAmount prompts for a positive decimal amount.
func GetAmount(reader *bufio.Reader, prompt string, w io.Writer) (float64, error) {
	text, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	amount, err := strconv.ParseFloat(text, 64)
	if err != nil || amount <= 0 {
		return 0, fmt.Errorf("invalid amount: %q", text)
	}
	return amount, nil
}

// GetID prompts for a numeric resource id.
func GetID(reader *bufio.Reader, prompt string, w io.Writer) (int64, error) {
	text, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", text)
	}
	return id, nil
}
