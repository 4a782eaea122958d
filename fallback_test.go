package lantern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swapFallback(t *testing.T) (out, errOut *FakeWriter) {
	t.Helper()
	out, errOut = &FakeWriter{}, &FakeWriter{}
	prevOut, prevErr := fallbackOut, fallbackErr
	fallbackOut, fallbackErr = out, errOut
	t.Cleanup(func() {
		fallbackOut, fallbackErr = prevOut, prevErr
	})
	return out, errOut
}

func TestFallback_BeforeSetup(t *testing.T) {
	reset()
	out, errOut := swapFallback(t)

	Errorf("e %d", 1)
	Warnf("w %d", 2)
	Infof("i %d", 3)
	Debugf("d %d", 4)
	Tracef("t %d", 5)

	// Error goes to stderr, everything else to stdout, no formatting or
	// filtering applied on either path.
	assert.Equal(t, "e 1\n", errOut.String())
	assert.Equal(t, "w 2\ni 3\nd 4\nt 5\n", out.String())
}

func TestFallback_AfterSetup(t *testing.T) {
	reset()
	out, errOut := swapFallback(t)

	buf := &FakeWriter{}
	setupWithWriter(t, buf, func(s *Settings) {
		s.MinLogLevel = LevelTrace
	})

	Errorf("routed error")
	Tracef("routed trace")

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
	assert.Contains(t, buf.String(), "routed error")
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "routed trace")
	assert.Contains(t, buf.String(), "TRACE")
}

func TestFallback_RespectsMinLevelAfterSetup(t *testing.T) {
	reset()
	buf := &FakeWriter{}
	setupWithWriter(t, buf, nil) // Info floor

	Tracef("filtered out")
	assert.NotContains(t, buf.String(), "filtered out")
}

func TestFatalf(t *testing.T) {
	reset()
	_, errOut := swapFallback(t)

	var code int
	exited := false
	prevExit := exit
	exit = func(c int) { code = c; exited = true }
	t.Cleanup(func() { exit = prevExit })

	Fatalf("going down: %s", "reason")

	// The log side effect runs before termination, set up or not.
	assert.Equal(t, "going down: reason\n", errOut.String())
	require.True(t, exited)
	assert.Equal(t, 1, code)
}

func TestPanicf(t *testing.T) {
	reset()
	_, errOut := swapFallback(t)

	assert.PanicsWithValue(t, "impossible state 42", func() {
		Panicf("impossible state %d", 42)
	})
	assert.Equal(t, "impossible state 42\n", errOut.String())
}

func TestFatalf_AfterSetupLogsThroughLogger(t *testing.T) {
	reset()
	buf := &FakeWriter{}
	setupWithWriter(t, buf, nil)

	prevExit := exit
	exit = func(int) {}
	t.Cleanup(func() { exit = prevExit })

	Fatalf("fatal via logger")
	assert.Contains(t, buf.String(), "fatal via logger")
	assert.Contains(t, buf.String(), "ERROR")
}
