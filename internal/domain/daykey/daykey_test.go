package daykey_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/okian/mostactive/internal/domain/daykey"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFromTimestamp(t *testing.T) {
	Convey("Given log timestamps", t, func() {
		Convey("When two timestamps share a date but not a time", func() {
			a, errA := daykey.FromTimestamp("2018-12-09T14:19:00+00:00")
			b, errB := daykey.FromTimestamp("2018-12-09T10:13:00+00:00")

			Convey("Then both map to the same day key", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(a, ShouldEqual, "2018-12-09")
				So(b, ShouldEqual, a)
			})
		})

		Convey("When the offset would move the instant to another UTC day", func() {
			day, err := daykey.FromTimestamp("2018-12-09T23:30:00-07:00")

			Convey("Then only the written date counts", func() {
				So(err, ShouldBeNil)
				So(day, ShouldEqual, "2018-12-09")
			})
		})

		Convey("When the timestamp has surrounding spaces", func() {
			day, err := daykey.FromTimestamp(" 2018-12-08T22:03:00+00:00 ")

			Convey("Then they are ignored", func() {
				So(err, ShouldBeNil)
				So(day, ShouldEqual, "2018-12-08")
			})
		})

		Convey("When the timestamp is malformed", func() {
			for _, ts := range []string{"", "2018-12-09", "2018-13-09T10:00:00+00:00", "yesterdayT10:00", "T10:00:00"} {
				_, err := daykey.FromTimestamp(ts)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, daykey.ErrInvalidTimestamp), ShouldBeTrue)
			}
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given a day argument", t, func() {
		Convey("When it is a valid date", func() {
			day, err := daykey.Parse("2018-12-09")

			Convey("Then it is returned unchanged", func() {
				So(err, ShouldBeNil)
				So(day, ShouldEqual, "2018-12-09")
			})
		})

		Convey("When it is not YYYY-MM-DD", func() {
			for _, in := range []string{"", "12/09/2018", "2018-12-09T00:00:00", "2018-02-30"} {
				_, err := daykey.Parse(in)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, daykey.ErrInvalidDay), ShouldBeTrue)
			}
		})
	})
}
