package scriptor

import (
	"fmt"
	"os"
)

// ExitFunc terminates the process; tests override it to observe exit codes
// instead of actually exiting.
type ExitFunc func(int)

// StderrWriter and StdoutWriter let callers capture a dispatcher-driven
// program's output instead of writing straight to the real streams.
type StderrWriter interface {
	Write([]byte) (int, error)
}

type StdoutWriter interface {
	Write([]byte) (int, error)
}

var osExit ExitFunc = os.Exit
var stderrWriter StderrWriter = os.Stderr
var stdoutWriter StdoutWriter = os.Stdout

func SetStderrWriter(writer StderrWriter) { stderrWriter = writer }
func SetStdoutWriter(writer StdoutWriter) { stdoutWriter = writer }
func SetExitFunc(exitFunc ExitFunc)       { osExit = exitFunc }

// PrintOut writes s to the configured stdout writer; PrintTree sends
// DumpTree output through it when a caller wants it on the real stream
// rather than returned as a string.
func PrintOut(s string) {
	fmt.Fprint(stdoutWriter, s)
}

// Fail prints err to the configured stderr writer and exits via the
// configured exit function, the same early-exit a command-line front end
// takes on a fatal setup or parse error.
func Fail(err error) {
	fmt.Fprintln(stderrWriter, err.Error())
	osExit(1)
}

// PrintTree renders node's subtree (the dispatcher's root if nil) and
// writes it straight to the configured stdout writer.
func (d *Dispatcher[S]) PrintTree(node Node[S], format DumpFormat) error {
	out, err := d.DumpTree(node, format)
	if err != nil {
		return err
	}
	PrintOut(out)
	return nil
}
