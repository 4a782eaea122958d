package lantern

import (
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// FormatFunc renders one record into a single line, without the trailing
// newline. The colors argument is the per-sink level renderer; formats
// that do not want color can ignore it and call ent.Level.String().
type FormatFunc func(ent zapcore.Entry, colors *levelColors) string

var bufPool = buffer.NewPool()

// lineEncoder adapts a FormatFunc to the backend's encoder interface. The
// embedded console encoder carries the field-accumulation machinery;
// EncodeEntry ignores structured fields since this package emits plain
// formatted lines only.
type lineEncoder struct {
	zapcore.Encoder
	format FormatFunc
	colors *levelColors
}

func newLineEncoder(format FormatFunc, colors *levelColors) zapcore.Encoder {
	return &lineEncoder{
		Encoder: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{}),
		format:  format,
		colors:  colors,
	}
}

func (e *lineEncoder) Clone() zapcore.Encoder {
	return &lineEncoder{
		Encoder: e.Encoder.Clone(),
		format:  e.format,
		colors:  e.colors,
	}
}

func (e *lineEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	buf := bufPool.Get()
	buf.AppendString(e.format(ent, e.colors))
	buf.AppendByte('\n')
	return buf, nil
}
