package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelCore raises the minimum level of a wrapped core without touching the shared atomic level.
type levelCore struct {
	zapcore.Core

	// minLevel is the lowest level this core accepts.
	minLevel zapcore.Level
}

// Enabled reports whether both the own minimum and the wrapped core accept lvl.
func (c *levelCore) Enabled(lvl zapcore.Level) bool {
	return c.minLevel.Enabled(lvl) && c.Core.Enabled(lvl)
}

// Check adds the core to the checked entry when the entry level is enabled.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *levelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}

	return ce.AddCore(ent, c)
}

// With keeps the minimum level on cores derived with extra fields.
//
//nolint:ireturn // Returning zapcore.Core is intended for zap integration.
func (c *levelCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelCore{
		Core:     c.Core.With(fields),
		minLevel: c.minLevel,
	}
}

// WithLevel returns an option that drops entries below lvl.
// The berlin-clock --quiet flag uses it to hide everything but errors.
//
//nolint:ireturn // Returning zap.Option is intended for zap integration.
func WithLevel(lvl zapcore.Level) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &levelCore{
			Core:     core,
			minLevel: lvl,
		}
	})
}
