package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

const cookieLog = `cookie,timestamp
AtY0laUfhglK3lC7,2018-12-09T14:19:00+00:00
SAZuXPGUrfbcn5UA,2018-12-09T10:13:00+00:00
5UAVanZf6UtGyKVS,2018-12-09T07:25:00+00:00
AtY0laUfhglK3lC7,2018-12-09T06:19:00+00:00
SAZuXPGUrfbcn5UA,2018-12-08T22:03:00+00:00
4sMM2LxV07bPJzwf,2018-12-08T21:30:00+00:00
fbcn5UAVanZf6UtG,2018-12-08T09:30:00+00:00
4sMM2LxV07bPJzwf,2018-12-07T23:30:00+00:00
`

// execute runs the root command and returns stdout, stderr and the error.
func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cookie_log.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	convey.Convey("Given the mostactive command and a cookie log", t, func() {
		path := writeLog(t, cookieLog)

		convey.Convey("When asking for a day with one leader", func() {
			out, _, err := execute(path, "-d", "2018-12-09")

			convey.Convey("Then the leader is printed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldEqual, "AtY0laUfhglK3lC7\n")
			})
		})

		convey.Convey("When asking for a day with a tie using --date", func() {
			out, _, err := execute("--date", "2018-12-08", path)

			convey.Convey("Then each tied cookie is printed on its own line", func() {
				convey.So(err, convey.ShouldBeNil)
				lines := strings.Split(strings.TrimSpace(out), "\n")
				convey.So(lines, convey.ShouldHaveLength, 3)
				convey.So(lines, convey.ShouldContain, "SAZuXPGUrfbcn5UA")
				convey.So(lines, convey.ShouldContain, "4sMM2LxV07bPJzwf")
				convey.So(lines, convey.ShouldContain, "fbcn5UAVanZf6UtG")
			})
		})

		convey.Convey("When asking for a day with no records", func() {
			out, _, err := execute(path, "-d", "2018-12-01")

			convey.Convey("Then nothing is printed and the run succeeds", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When debug logging is requested", func() {
			out, logs, err := execute(path, "-d", "2018-12-09", "--log-level", "debug")

			convey.Convey("Then logs go to stderr and stdout keeps only results", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldEqual, "AtY0laUfhglK3lC7\n")
				convey.So(logs, convey.ShouldContainSubstring, "log ingested")
			})
		})

		convey.Convey("When a metrics file is requested", func() {
			metricsPath := filepath.Join(t.TempDir(), "mostactive.prom")
			_, _, err := execute(path, "-d", "2018-12-09", "--metrics-file", metricsPath)

			convey.Convey("Then the file holds tracker metrics", func() {
				convey.So(err, convey.ShouldBeNil)
				data, readErr := os.ReadFile(metricsPath)
				convey.So(readErr, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, "mostactive_tracker_records_ingested_total")
			})
		})
	})
}

func TestRootCommandFailures(t *testing.T) {
	convey.Convey("Given the mostactive command", t, func() {
		convey.Convey("When the log file is missing", func() {
			out, _, err := execute(filepath.Join(t.TempDir(), "missing.csv"), "-d", "2018-12-09")

			convey.Convey("Then the run fails with no output", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "missing.csv")
				convey.So(out, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When --date is absent", func() {
			_, _, err := execute(writeLog(t, cookieLog))

			convey.Convey("Then the run fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "date")
			})
		})

		convey.Convey("When --date is malformed", func() {
			_, _, err := execute(writeLog(t, cookieLog), "-d", "12/09/2018")

			convey.Convey("Then the run fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "--date")
			})
		})

		convey.Convey("When no log path is given", func() {
			_, _, err := execute("-d", "2018-12-09")

			convey.Convey("Then the run fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When a row is malformed", func() {
			path := writeLog(t, "cookie,timestamp\nA,2018-12-09T14:19:00+00:00\nB\n")

			convey.Convey("And the run is strict", func() {
				out, _, err := execute(path, "-d", "2018-12-09")

				convey.Convey("Then it fails without printing", func() {
					convey.So(err, convey.ShouldNotBeNil)
					convey.So(out, convey.ShouldBeEmpty)
				})
			})

			convey.Convey("And --skip-malformed is set", func() {
				out, _, err := execute(path, "-d", "2018-12-09", "--skip-malformed")

				convey.Convey("Then the good rows are reported", func() {
					convey.So(err, convey.ShouldBeNil)
					convey.So(out, convey.ShouldEqual, "A\n")
				})
			})
		})

		convey.Convey("When the log level is unknown", func() {
			_, _, err := execute(writeLog(t, cookieLog), "-d", "2018-12-09", "--log-level", "chatty")

			convey.Convey("Then the run fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
