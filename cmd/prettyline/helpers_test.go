package main

import (
	"bytes"
	"testing"
	"time"
)

// executeCommand runs the root command with a fixed environment and clock.
func executeCommand(t *testing.T, env map[string]string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	originalLookup := lookupEnv
	originalNow := now
	t.Cleanup(func() {
		lookupEnv = originalLookup
		now = originalNow
	})

	lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	now = func() time.Time {
		return time.Date(2025, 10, 3, 9, 41, 0, 0, time.Local)
	}

	root := newRootCmd()
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	root.SetArgs(args)

	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}
