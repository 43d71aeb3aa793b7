// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/microbench/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	mu     sync.RWMutex
	output io.Writer
}

// New creates a new Logger writing to stderr at info level.
func New() ports.Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)

	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		level:  level,
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(NewPrettyHandler(w, &slog.HandlerOptions{Level: l.level}))
}

// SetVerbose switches between debug and info level.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a message that is only shown in verbose mode.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error together with the chain of its causes.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(formatError(err))
}

// formatError renders err as an "Error:" line followed by a "Caused by:" list.
// Metadata is appended to the message it belongs to and the first stack trace
// found in the chain is printed last.
func formatError(err error) string {
	var entries []errorEntry
	var pending map[string]any
	stack := ""
	current := err

	for current != nil {
		if stack == "" {
			if st, ok := current.(stackTracer); ok {
				stack = st.StackTrace()
			}
		}

		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			pending = nil
			break
		}

		pending = mergeMetadata(pending, current)
		if m.Message() != "" {
			entries = append(entries, errorEntry{message: m.Message(), metadata: pending})
			pending = nil
		}
		current = errors.Unwrap(current)
	}

	if len(entries) == 0 {
		entries = append(entries, errorEntry{message: err.Error()})
	}
	if pending != nil {
		last := &entries[len(entries)-1]
		last.metadata = mergeMaps(last.metadata, pending)
	}

	var formattedLines []string

	for i, entry := range entries {
		lines := strings.Split(entry.message, "\n")
		lines[0] += formatMetadata(entry.metadata)

		if i == 0 {
			formattedLines = append(formattedLines, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formattedLines = append(formattedLines, "       "+line)
			}
			continue
		}

		if i == 1 {
			formattedLines = append(formattedLines, "", "  Caused by:")
		}
		formattedLines = append(formattedLines, "    → "+lines[0])
		for _, line := range lines[1:] {
			formattedLines = append(formattedLines, "      "+line)
		}
	}

	if frames := strings.TrimSpace(stack); frames != "" {
		formattedLines = append(formattedLines, "", "  Stack trace:")
		for _, frame := range strings.Split(frames, "\n") {
			formattedLines = append(formattedLines, "    "+frame)
		}
	}

	return strings.Join(formattedLines, "\n")
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// stackTracer matches zerr.Error's StackTrace method.
type stackTracer interface {
	StackTrace() string
}

// metadataCarrier matches zerr.Error's Metadata method.
type metadataCarrier interface {
	Metadata() map[string]any
}

func mergeMetadata(dst map[string]any, err error) map[string]any {
	mc, ok := err.(metadataCarrier)
	if !ok {
		return dst
	}
	return mergeMaps(dst, mc.Metadata())
}

func mergeMaps(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		if _, exists := dst[k]; !exists {
			dst[k] = v
		}
	}
	return dst
}

// formatMetadata renders metadata as " (k=v, k2=v2)" with sorted keys.
func formatMetadata(metadata map[string]any) string {
	if len(metadata) == 0 {
		return ""
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, metadata[k]))
	}
	return " (" + strings.Join(pairs, ", ") + ")"
}
