package report_test

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/mostactive/internal/adapters/report"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite(t *testing.T) {
	Convey("Given a result set", t, func() {
		var buf bytes.Buffer

		Convey("When it holds several identifiers", func() {
			err := report.Write(&buf, []string{"AtY0laUfhglK3lC7", "SAZuXPGUrfbcn5UA"})

			Convey("Then each is printed on its own line", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldEqual, "AtY0laUfhglK3lC7\nSAZuXPGUrfbcn5UA\n")
			})
		})

		Convey("When it is empty", func() {
			err := report.Write(&buf, nil)

			Convey("Then nothing is printed", func() {
				So(err, ShouldBeNil)
				So(buf.Len(), ShouldEqual, 0)
			})
		})

		Convey("When the writer fails", func() {
			err := report.Write(failingWriter{}, []string{"A"})

			Convey("Then the error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "disk full")
			})
		})
	})
}
