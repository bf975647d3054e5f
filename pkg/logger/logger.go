// Package logger 构建游戏使用的 zap 日志器
package logger

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志选项
type Options struct {
	// Level 日志级别（debug/info/warn/error），空值为 info
	Level string
	// Verbose 为 false 时只输出 warn 及以上，与 Level 取较高者
	Verbose bool
	// Development 使用彩色控制台格式并打印调用位置
	Development bool
	// OutputPaths 输出目标，默认 stderr
	OutputPaths []string
}

// New 按选项构建日志器，每个日志器带一个新的 session 字段
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if !opts.Verbose && level < zapcore.WarnLevel {
		level = zapcore.WarnLevel
	}

	outputs := opts.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoding := "json"
	if opts.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoding = "console"
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       opts.Development,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     !opts.Development,
		DisableStacktrace: !opts.Development,
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return zapLogger.With(zap.String("session", NewSessionID())), nil
}

// ParseLevel 解析日志级别字符串，空字符串为 info
func ParseLevel(text string) (zapcore.Level, error) {
	if text == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(text)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", text, err)
	}
	return level, nil
}

// NewSessionID 生成一次游戏会话的标识
func NewSessionID() string {
	return uuid.NewString()
}

// OrNop 把 nil 日志器替换为空日志器
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
