// Package report prints most-active results.
package report

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
)

// Write prints one identifier per line. An empty set prints nothing.
func Write(w io.Writer, ids []string) error {
	bw := bufio.NewWriter(w)
	for _, id := range ids {
		if _, err := bw.WriteString(id + "\n"); err != nil {
			return errors.Wrap(err, "write result")
		}
	}
	return errors.Wrap(bw.Flush(), "flush result")
}
