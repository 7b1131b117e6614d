package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

type BasicStruct struct {
	X int
	y string
	z string
}

type User struct {
	Name string
}

type StructWithStruct struct {
	x int
	Y User
	z string
}

func newBufferLogger(name string, level Level, out *bytes.Buffer) *impl {
	return &impl{name, NewAtomicLevelAt(level), false, []Appender{NewWriterAppender(out)}}
}

// assertLogMatches will fuzzy match log lines. Notably, this checks the time format, but ignores
// the exact time. And it expects a match on the filename, but the exact line number can be wrong.
func assertLogMatches(t *testing.T, actual *bytes.Buffer, expected string) {
	// `Helper` will result in test failures being associated with the callers line number. It's
	// more useful to report which `assertLogMatches` call failed rather than which assertion
	// inside this function. Maybe.
	t.Helper()

	output, err := actual.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)

	actualTrimmed := strings.TrimSuffix(output, "\n")
	actualParts := strings.Split(actualTrimmed, "\t")
	expectedParts := strings.Split(expected, "\t")
	// Use the length of the first string as a weak verification of checking that the result looks like a date.
	test.That(t, len(actualParts[0]), test.ShouldEqual, len(expectedParts[0]))
	// Log level.
	test.That(t, actualParts[1], test.ShouldEqual, expectedParts[1])
	// Logger name.
	test.That(t, actualParts[2], test.ShouldEqual, expectedParts[2])

	// Filename:line_number.
	actualFilename, actualLineNumber, found := strings.Cut(actualParts[3], ":")
	test.That(t, found, test.ShouldBeTrue)
	// Verify the filename matches exactly.
	expectedFilename, _, found := strings.Cut(expectedParts[3], ":")
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, actualFilename, test.ShouldEqual, expectedFilename)
	// Verify the line number is in fact a number, but no more.
	_, err = strconv.Atoi(actualLineNumber)
	test.That(t, err, test.ShouldBeNil)

	// Log message.
	test.That(t, actualParts[4], test.ShouldEqual, expectedParts[4])

	// Structured logging with the "w" API. E.g: `Debugw` has an extra tab delimited output.
	test.That(t, len(actualParts), test.ShouldEqual, len(expectedParts))
	if len(actualParts) == 5 {
		return
	}

	// JSON encoding of maps can be unpredictable because map iteration order can change between
	// runs. Parse the output into maps and assert on map equality.
	expectedMap := make(map[string]any)
	err = json.Unmarshal([]byte(expectedParts[5]), &expectedMap)
	test.That(t, err, test.ShouldBeNil)

	actualMap := make(map[string]any)
	err = json.Unmarshal([]byte(actualParts[5]), &actualMap)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, actualMap, test.ShouldResemble, expectedMap)
}

// The appender output has tab separated columns for time, level, logger name, file location and
// the log message, with an optional trailing column of json serialized fields. E.g:
//
//	2023-10-30T09:12:09.459-0400	INFO	impl	logging/impl_test.go:87	impl Info log
func TestConsoleOutputFormat(t *testing.T) {
	// A logger object that will write to the `notStdout` buffer.
	notStdout := &bytes.Buffer{}
	logger := newBufferLogger("impl", DEBUG, notStdout)

	logger.Info("impl Info log")
	// Note the use of tabs between the columns. The `assertLogMatches` helper will also deal with
	// the changes to the time/line number.
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	INFO	impl	logging/impl_test.go:67	impl Info log`)

	// Using `Infof` substitutes the tail arguments into the leading template string input.
	logger.Infof("impl %s log", "infof")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:45:20.764-0400	INFO	impl	logging/impl_test.go:131	impl infof log`)

	// Using `Infow` turns the tail arguments into a map for structured logging.
	logger.Infow("impl logw", "key", "value")
	assertLogMatches(t, notStdout,
		`2023-10-30T13:19:45.806-0400	INFO	impl	logging/impl_test.go:132	impl logw	{"key":"value"}`)

	// A few examples of structs.
	logger.Infow("StructWithStruct", "key", "val", "StructWithStruct", StructWithStruct{1, User{"alice"}, "foo"})
	assertLogMatches(t, notStdout,
		`2023-10-30T13:20:47.129-0400	INFO	impl	logging/impl_test.go:123	StructWithStruct	{"StructWithStruct":{"Y":{"Name":"alice"}},"key":"val"}`)

	// Only public fields are included in the serialization.
	logger.Infow("BasicStruct", "implOneKey", "1val", "BasicStruct", BasicStruct{1, "alice", "foo"})
	assertLogMatches(t, notStdout,
		`2023-10-30T13:20:47.129-0400	INFO	impl	logging/impl_test.go:125	BasicStruct	{"BasicStruct":{"X":1},"implOneKey":"1val"}`)

	// Represent a struct as a string using `fmt.Sprintf`.
	anonymousTypedValue := struct {
		x int
		Z string
	}{1, "z"}
	logger.Infow("impl logw", "key", "val", "fmt.Sprintf", fmt.Sprintf("%+v", anonymousTypedValue))
	assertLogMatches(t, notStdout,
		`2023-10-30T13:20:47.129-0400	INFO	impl	logging/impl_test.go:127	impl logw	{"fmt.Sprintf":"{x:1 Z:z}","key":"val"}`)
}

func TestLevelFiltering(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := newBufferLogger("impl", INFO, notStdout)

	// Debug logs fall below the configured INFO level and are dropped.
	logger.Debug("impl Debug log")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	logger.Warn("impl Warn log")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	WARN	impl	logging/impl_test.go:67	impl Warn log`)

	// Lowering the level lets debug logs through.
	logger.SetLevel(DEBUG)
	logger.Debug("impl Debug log")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	DEBUG	impl	logging/impl_test.go:67	impl Debug log`)
}

func TestContextDebugLogging(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := newBufferLogger("impl", INFO, notStdout)

	// Without a debug directive on the context, CDebug obeys the configured level.
	logger.CDebug(context.Background(), "impl CDebug log")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	ctx := EnableDebugMode(context.Background(), "")
	logger.CDebug(ctx, "impl CDebug log")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	DEBUG	impl	logging/impl_test.go:67	impl CDebug log`)

	logger.CDebugf(ctx, "impl %s log", "CDebugf")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	DEBUG	impl	logging/impl_test.go:67	impl CDebugf log`)

	logger.CDebugw(ctx, "impl CDebugw log", "key", "value")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	DEBUG	impl	logging/impl_test.go:67	impl CDebugw log	{"key":"value"}`)
}

type failingAppender struct {
	err error
}

func (fapp failingAppender) Write(zapcore.Entry, []zapcore.Field) error {
	return nil
}

func (fapp failingAppender) Sync() error {
	return fapp.err
}

func TestSyncCombinesAppenderErrors(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := newBufferLogger("impl", DEBUG, notStdout)
	logger.AddAppender(failingAppender{errors.New("disk full")})
	logger.AddAppender(failingAppender{errors.New("pipe closed")})

	// Every appender gets flushed; all failures come back in one combined error.
	err := logger.Sync()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "disk full")
	test.That(t, err.Error(), test.ShouldContainSubstring, "pipe closed")

	test.That(t, newBufferLogger("impl", DEBUG, notStdout).Sync(), test.ShouldBeNil)
}

func TestUnpairedStructuredKey(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := newBufferLogger("impl", DEBUG, notStdout)

	// A dangling key is not silently dropped; it surfaces in the field output.
	logger.Infow("impl logw", "orphan")
	assertLogMatches(t, notStdout,
		`2023-10-30T13:19:45.806-0400	INFO	impl	logging/impl_test.go:132	impl logw	{"orphan":"unpaired log key"}`)
}

func TestSublogger(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := newBufferLogger("impl", DEBUG, notStdout)

	sublogger := logger.Sublogger("sub")
	sublogger.Info("sub Info log")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	INFO	impl.sub	logging/impl_test.go:67	sub Info log`)

	// Subloggers inherit the parent's level at creation but are adjusted independently.
	sublogger.SetLevel(WARN)
	sublogger.Info("sub Info log")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	logger.Info("impl Info log")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	INFO	impl	logging/impl_test.go:67	impl Info log`)
}
