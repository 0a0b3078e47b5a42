package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm asks question on w and reads a y/N answer from r. Anything other
// than y or yes, including EOF, declines.
func confirm(w io.Writer, r io.Reader, question string) bool {
	fmt.Fprintf(w, "%s [y/N] ", question)

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		fmt.Fprintln(w)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
