package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

type Config struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

var (
	mu     sync.RWMutex
	global = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// InitGlobalLogger replaces the process-wide logger according to cfg.
// Safe to call once at startup before any goroutines log.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if cfg.Pretty {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		l = zerolog.New(os.Stderr)
	}

	mu.Lock()
	global = l.Level(level).With().Timestamp().Logger()
	mu.Unlock()
}

func Debug(msg string, keyvals ...any) { log(zerolog.DebugLevel, msg, keyvals...) }
func Info(msg string, keyvals ...any)  { log(zerolog.InfoLevel, msg, keyvals...) }
func Warn(msg string, keyvals ...any)  { log(zerolog.WarnLevel, msg, keyvals...) }
func Error(msg string, keyvals ...any) { log(zerolog.ErrorLevel, msg, keyvals...) }

func log(level zerolog.Level, msg string, keyvals ...any) {
	mu.RLock()
	l := global
	mu.RUnlock()

	e := l.WithLevel(level)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		e = e.Interface(key, keyvals[i+1])
	}
	e.Msg(msg)
}
