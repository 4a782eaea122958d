package lantern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{"error_upper", "ERROR", LevelError, false},
		{"warn_lower", "warn", LevelWarn, false},
		{"info_mixed", "Info", LevelInfo, false},
		{"debug_spaces", "  debug ", LevelDebug, false},
		{"trace", "trace", LevelTrace, false},
		{"off", "off", LevelOff, false},
		{"unknown", "loud", LevelOff, true},
		{"empty", "", LevelOff, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_Order(t *testing.T) {
	// Off is the least verbose, Trace the most.
	assert.Less(t, LevelOff, LevelError)
	assert.Less(t, LevelError, LevelWarn)
	assert.Less(t, LevelWarn, LevelInfo)
	assert.Less(t, LevelInfo, LevelDebug)
	assert.Less(t, LevelDebug, LevelTrace)
}

func TestLevel_String_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, "OFF", Level(200).String())
	assert.Equal(t, "OFF", levelMaxForChecksOnly.String())
}

func Test_zapThreshold(t *testing.T) {
	// A record passes when its zap level is >= the threshold.
	assert.GreaterOrEqual(t, LevelWarn.zap(), zapThreshold(LevelInfo))
	assert.Less(t, LevelDebug.zap(), zapThreshold(LevelInfo))
	assert.GreaterOrEqual(t, LevelTrace.zap(), zapThreshold(LevelTrace))

	// Off blocks every real level, error included.
	assert.Less(t, LevelError.zap(), zapThreshold(LevelOff))
}

func Test_levelFromZap_RoundTrip(t *testing.T) {
	for _, l := range []Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace} {
		assert.Equal(t, l, levelFromZap(l.zap()), "level %s", l)
	}
	// The trace mapping sits below the backend's own floor.
	assert.Less(t, zapTrace, zapcore.DebugLevel)
}

func TestLevel_TextRoundTrip(t *testing.T) {
	for l := LevelOff; l < levelMaxForChecksOnly; l++ {
		text, err := l.MarshalText()
		require.NoError(t, err)
		var back Level
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, l, back)
	}
}
