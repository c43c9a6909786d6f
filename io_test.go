package scriptor

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintTreeWritesThroughStdoutWriter(t *testing.T) {
	var buf bytes.Buffer
	SetStdoutWriter(&buf)
	defer SetStdoutWriter(os.Stdout)

	d := NewDispatcher[testSource]()
	d.Register(Literal[testSource]("foo").Executes(noop))

	err := d.PrintTree(nil, DumpText)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "foo")
}

func TestFailWritesToStderrAndExits(t *testing.T) {
	var buf bytes.Buffer
	SetStderrWriter(&buf)
	var exitCode int
	SetExitFunc(func(code int) { exitCode = code })
	defer func() {
		SetStderrWriter(os.Stderr)
		SetExitFunc(os.Exit)
	}()

	Fail(errors.New("boom"))

	assert.Contains(t, buf.String(), "boom")
	assert.Equal(t, 1, exitCode)
}
