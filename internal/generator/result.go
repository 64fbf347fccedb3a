package generator

import (
	"fmt"
	"io"
	"strings"
)

// Result holds generated passwords in generation order.
type Result struct {
	passwords []string
}

func NewResult(passwords []string) Result {
	return Result{passwords: passwords}
}

// Passwords returns a copy of the generated passwords.
func (r Result) Passwords() []string {
	out := make([]string, len(r.passwords))
	copy(out, r.passwords)
	return out
}

func (r Result) Len() int {
	return len(r.passwords)
}

// WriteTo renders one "<k>) <password>" line per entry, 1-indexed and
// terminated by CRLF.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, p := range r.passwords {
		n, err := fmt.Fprintf(w, "%d) %s\r\n", i+1, p)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (r Result) String() string {
	var sb strings.Builder
	r.WriteTo(&sb)
	return sb.String()
}
