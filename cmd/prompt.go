package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Confirm prints a yes/no question to output and reads a single line of
// response from input. Only "y" and "yes" (in any case) count as confirmation.
// An empty input stream is treated as a refusal.
func Confirm(input io.Reader, output io.Writer, question string) (bool, error) {
	fmt.Fprintf(output, "%s [y/N] ", question)
	response, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, "unable to read response")
	}
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
