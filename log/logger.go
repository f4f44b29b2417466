// Package log enhanced zap logger
package log

import (
	"fmt"

	"github.com/Laisky/errors/v2"
	zap "github.com/Laisky/zap"
	"github.com/Laisky/zap/zapcore"
)

var (
	/*Shared logging tool.

	* Info(msg string, fields ...Field)
	* Debug(msg string, fields ...Field)
	* Warn(msg string, fields ...Field)
	* Error(msg string, fields ...Field)
	* Panic(msg string, fields ...Field)
	 */
	Shared Logger
)

type Level string

func (l Level) String() string {
	return string(l)
}

func (l Level) Zap() zapcore.Level {
	zl, err := LevelToZap(l)
	if err != nil {
		panic(err)
	}

	return zl
}

const (
	// LevelInfo Logger level info
	LevelInfo Level = "info"
	// LevelDebug Logger level debug
	LevelDebug Level = "debug"
	// LevelWarn Logger level warn
	LevelWarn Level = "warn"
	// LevelError Logger level error
	LevelError Level = "error"
	// LevelFatal Logger level fatal
	LevelFatal Level = "fatal"
	// LevelPanic Logger level panic
	LevelPanic Level = "panic"
)

type zapLoggerItf interface {
	Debug(msg string, fields ...zapcore.Field)
	Info(msg string, fields ...zapcore.Field)
	Warn(msg string, fields ...zapcore.Field)
	Error(msg string, fields ...zapcore.Field)
	Panic(msg string, fields ...zapcore.Field)
	Fatal(msg string, fields ...zapcore.Field)
	Sync() error
	Core() zapcore.Core
}

type Logger interface {
	zapLoggerItf
	Level() Level
	ChangeLevel(level Level) (err error)
	Named(s string) Logger
	With(fields ...zapcore.Field) Logger
}

// logger extend from zap.Logger
type logger struct {
	*zap.Logger

	// level level of current logger
	//
	// zap logger do not expose api to change log's level,
	// so we have to save the pointer of zap.AtomicLevel.
	level zap.AtomicLevel
}

// NewConsoleWithName create new console logger with name
func NewConsoleWithName(name string, level Level, opts ...Option) (l Logger, err error) {
	return New(append([]Option{
		WithName(name),
		WithEncoding(EncodingConsole),
		WithLevel(level),
	}, opts...)...)
}

type option struct {
	zap.Config
	Name string
}

// fillDefault logs go to stderr, stdout is reserved for the benchmark report.
func (o *option) fillDefault() *option {
	o.Name = "app"
	o.Config = zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         string(EncodingConsole),
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	o.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	o.EncoderConfig.MessageKey = "message"
	o.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	o.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return o
}

func (o *option) applyOpts(optfs ...Option) (*option, error) {
	for _, optf := range optfs {
		if err := optf(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

type Encoding string

func (e Encoding) String() string {
	return string(e)
}

const (
	EncodingConsole Encoding = "console"
	EncodingJSON    Encoding = "json"
)

type Option func(l *option) error

// WithOutputPaths replace output paths
//
// like "stdout" or a file path
func WithOutputPaths(paths []string) Option {
	return func(c *option) error {
		if len(paths) == 0 {
			return errors.Errorf("output paths should not be empty")
		}

		c.OutputPaths = paths
		return nil
	}
}

// WithEncoding set logger encoding formet
func WithEncoding(format Encoding) Option {
	return func(c *option) error {
		switch format {
		case EncodingConsole:
			c.Encoding = string(EncodingConsole)
		case EncodingJSON:
			c.Encoding = string(EncodingJSON)
		default:
			return errors.Errorf("invalid format: %s", format)
		}

		return nil
	}
}

// WithColor colorize level in console encoding
func WithColor(enable bool) Option {
	return func(c *option) error {
		if enable {
			c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			c.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}

		return nil
	}
}

// WithName set logger name
func WithName(name string) Option {
	return func(c *option) error {
		c.Name = name
		return nil
	}
}

// WithLevel set logger level
func WithLevel(level Level) Option {
	return func(c *option) error {
		lvl, err := LevelToZap(level)
		if err != nil {
			return err
		}

		c.Level.SetLevel(lvl)
		return nil
	}
}

// LevelToZap convert Level to zapcore.Level
func LevelToZap(level Level) (zapcore.Level, error) {
	switch level {
	case LevelInfo:
		return zap.InfoLevel, nil
	case LevelDebug:
		return zap.DebugLevel, nil
	case LevelWarn:
		return zap.WarnLevel, nil
	case LevelError:
		return zap.ErrorLevel, nil
	case LevelFatal:
		return zap.FatalLevel, nil
	case LevelPanic:
		return zap.PanicLevel, nil
	default:
		return 0, errors.Errorf("invalid level: %s", level)
	}
}

func LevelFromZap(level zapcore.Level) (Level, error) {
	switch level {
	case zap.DebugLevel:
		return LevelDebug, nil
	case zap.InfoLevel:
		return LevelInfo, nil
	case zap.WarnLevel:
		return LevelWarn, nil
	case zap.ErrorLevel:
		return LevelError, nil
	case zap.FatalLevel:
		return LevelFatal, nil
	case zap.PanicLevel:
		return LevelPanic, nil
	default:
		return "", errors.Errorf("invalid level: %s", level)
	}
}

// New create new logger
func New(optfs ...Option) (l Logger, err error) {
	opt, err := new(option).fillDefault().applyOpts(optfs...)
	if err != nil {
		return nil, err
	}

	zapLogger, err := opt.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build zap logger")
	}

	return &logger{
		Logger: zapLogger.Named(opt.Name),
		level:  opt.Level,
	}, nil
}

// Level get current level of logger
func (l *logger) Level() Level {
	lvl, err := LevelFromZap(l.level.Level())
	if err != nil {
		panic(err)
	}

	return lvl
}

// ChangeLevel change logger level
//
// Because all children loggers share the same level as their parent logger,
// if you modify one logger's level, it will affect all of its parent and children loggers.
func (l *logger) ChangeLevel(level Level) (err error) {
	lvl, err := LevelToZap(level)
	if err != nil {
		return err
	}

	l.level.SetLevel(lvl)
	l.Debug("set logger level", zap.String("level", level.String()))
	return
}

// Named adds a new path segment to the logger's name. Segments are joined by
// periods.
func (l *logger) Named(s string) Logger {
	return &logger{
		Logger: l.Logger.Named(s),
		level:  l.level,
	}
}

// With creates a child logger and adds structured context to it. Fields added
// to the child don't affect the parent, and vice versa.
func (l *logger) With(fields ...zapcore.Field) Logger {
	return &logger{
		Logger: l.Logger.With(fields...),
		level:  l.level,
	}
}

func init() {
	var err error
	if Shared, err = NewConsoleWithName("bsearch", LevelInfo); err != nil {
		panic(fmt.Sprintf("create logger: %+v", err))
	}
}
