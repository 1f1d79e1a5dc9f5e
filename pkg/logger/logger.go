// Package logger provides structured JSON logging with levels, fields, and
// request-ID propagation from context.
package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents the severity of a log entry.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F is a shorthand constructor for Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Err is a shorthand for an "error" field.
func Err(err error) Field {
	return Field{Key: "error", Value: fmt.Sprint(err)}
}

// Logger is the main logger interface.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	WithContext(ctx context.Context) Logger
	WithFields(fields ...Field) Logger
}

type requestIDKey struct{}

// WithRequestID stores a request ID in the context for later extraction.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type entry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Fields  map[string]any `json:"fields,omitempty"`
}

type jsonLogger struct {
	level  Level
	output io.Writer
	mu     *sync.Mutex
	fields []Field
}

// New creates a JSON logger writing to output at the given minimum level.
func New(level Level, output io.Writer) Logger {
	if output == nil {
		output = os.Stdout
	}
	return &jsonLogger{
		level:  level,
		output: output,
		mu:     &sync.Mutex{},
	}
}

// Default returns an info-level logger writing to stdout.
func Default() Logger {
	return New(InfoLevel, os.Stdout)
}

func (l *jsonLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields...) }
func (l *jsonLogger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields...) }
func (l *jsonLogger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields...) }
func (l *jsonLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields...) }

func (l *jsonLogger) Fatal(msg string, fields ...Field) {
	l.log(FatalLevel, msg, fields...)
	os.Exit(1)
}

// WithContext returns a logger carrying the context's request ID.
func (l *jsonLogger) WithContext(ctx context.Context) Logger {
	if id := RequestID(ctx); id != "" {
		return l.WithFields(F("request_id", id))
	}
	return l
}

// WithFields returns a logger with additional persistent fields.
func (l *jsonLogger) WithFields(fields ...Field) Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &jsonLogger{
		level:  l.level,
		output: l.output,
		mu:     l.mu,
		fields: merged,
	}
}

func (l *jsonLogger) log(level Level, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	e := entry{
		Time:    time.Now().Format(time.RFC3339),
		Level:   level.String(),
		Message: msg,
	}
	if len(l.fields)+len(fields) > 0 {
		e.Fields = make(map[string]any, len(l.fields)+len(fields))
		for _, f := range l.fields {
			e.Fields[f.Key] = f.Value
		}
		for _, f := range fields {
			e.Fields[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(e)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"level":"ERROR","message":"marshal log entry: %v"}`, err))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.output.Write(append(data, '\n'))
}
