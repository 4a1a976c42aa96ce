package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const structuredTimeLayout = "2006-01-02 15:04:05"

// structuredSink routes messages through zap, filtered at a minimum level
type structuredSink struct {
	log *zap.Logger
}

func newStructuredSink(w io.Writer, level string) *structuredSink {
	minLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		minLevel = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:    "ts",
		LevelKey:   "level",
		MessageKey: "msg",
		EncodeTime: zapcore.TimeEncoderOfLayout(structuredTimeLayout),
		// renders "[INFO]:" so lines read "<ts> [INFO]: <msg>"
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + l.CapitalString() + "]:")
		},
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		minLevel,
	)

	return &structuredSink{log: zap.New(core)}
}

func (s *structuredSink) write(level Level, message string) {
	switch level {
	case LevelDebug:
		s.log.Debug(message)
	case LevelWarn:
		s.log.Warn(message)
	case LevelError:
		s.log.Error(message)
	default:
		s.log.Info(message)
	}
}
