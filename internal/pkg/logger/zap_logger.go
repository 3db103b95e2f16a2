package logger

import (
	"bufio"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ILogger is the system log. Every entry carries the module that wrote it and
// a free-form details map; the JSON file copy is what the admin view reads.
type ILogger interface {
	Debug(module, message string, details map[string]interface{})
	Info(module, message string, details map[string]interface{})
	Warn(module, message string, details map[string]interface{})
	Error(module, message string, details map[string]interface{})
	Sync() error
	GetLogs(level string, limit, offset int) ([]LogEntry, error)
}

// LogEntry is one decoded line of the JSON log file.
type LogEntry struct {
	Id        string                 `json:"id"`
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Module    string                 `json:"module,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

type ZapLogger struct {
	logger   *zap.Logger
	filePath string
}

var _ ILogger = &ZapLogger{}

// entryNamespace seeds the content-derived ids of log lines.
var entryNamespace = uuid.MustParse("6f1c3c52-5a0e-4c7b-9d5e-2b1f0c9a7e41")

const maxLineBytes = 1 << 20

// NewZapLogger writes Info and above as JSON to a rotated file at
// logFilePath and everything to stdout.
func NewZapLogger(logFilePath string, isProd bool) *ZapLogger {
	if dir := filepath.Dir(logFilePath); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}

	core := zapcore.NewTee(fileCore(logFilePath), consoleCore(isProd))
	return &ZapLogger{
		logger:   zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
		filePath: logFilePath,
	}
}

// NewNopLogger discards everything. GetLogs always returns nothing.
func NewNopLogger() *ZapLogger {
	return &ZapLogger{logger: zap.NewNop()}
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "message"
	cfg.LevelKey = "level"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func fileCore(path string) zapcore.Core {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(jsonEncoderConfig()), zapcore.AddSync(rotator), zap.InfoLevel)
}

func consoleCore(isProd bool) zapcore.Core {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	if isProd {
		encoder = zapcore.NewJSONEncoder(jsonEncoderConfig())
	}
	return zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.DebugLevel)
}

func (l *ZapLogger) Debug(module, message string, details map[string]interface{}) {
	l.write(zapcore.DebugLevel, module, message, details)
}

func (l *ZapLogger) Info(module, message string, details map[string]interface{}) {
	l.write(zapcore.InfoLevel, module, message, details)
}

func (l *ZapLogger) Warn(module, message string, details map[string]interface{}) {
	l.write(zapcore.WarnLevel, module, message, details)
}

func (l *ZapLogger) Error(module, message string, details map[string]interface{}) {
	l.write(zapcore.ErrorLevel, module, message, details)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func (l *ZapLogger) write(level zapcore.Level, module, message string, details map[string]interface{}) {
	ce := l.logger.Check(level, message)
	if ce == nil {
		return
	}
	if details == nil {
		details = map[string]interface{}{}
	}
	f := []zap.Field{zap.String("module", module), zap.Any("details", details)}
	if err, ok := details["error"].(error); ok {
		f = append(f, zap.Error(err))
	}
	ce.Write(f...)
}

// GetLogs pages through the active log file newest first. level, when set,
// must match the encoded level exactly ("WARN"). Rotated files are not read.
func (l *ZapLogger) GetLogs(level string, limit, offset int) ([]LogEntry, error) {
	entries := []LogEntry{}
	if l.filePath == "" {
		return entries, nil
	}

	file, err := os.Open(l.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var matched []LogEntry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		var entry LogEntry
		if json.Unmarshal(scanner.Bytes(), &entry) != nil {
			continue
		}
		if level != "" && entry.Level != level {
			continue
		}
		if entry.Id == "" {
			entry.Id = uuid.NewSHA1(entryNamespace, scanner.Bytes()).String()
		}
		matched = append(matched, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if offset < 0 || offset >= len(matched) {
		return entries, nil
	}
	// walk backwards from the newest line
	for i := len(matched) - 1 - offset; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, matched[i])
	}
	return entries, nil
}
