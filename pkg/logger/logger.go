// Package logger arma el logger de proceso del CLI y del gateway.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config salida y nivel del logger.
type Config struct {
	Env     string    // "development" = consola coloreada; cualquier otro valor = JSON por línea
	Level   string    // nombre de nivel zerolog; vacío o desconocido = info
	Service string    // se añade como campo "service" si no está vacío
	Out     io.Writer // nil = stderr; stdout queda para el JSON que imprime el CLI
}

// Logger envuelve zerolog.Logger. Los componentes reciben sublogs vía Component.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger y lo deja también como zerolog/log global.
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	ctx := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// ParseLevel acepta los nombres de zerolog sin distinguir mayúsculas.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Component sublogger con campo "component", p. ej. "cetustek" o "gateway".
func (l *Logger) Component(name string) zerolog.Logger {
	return l.zl.With().Str("component", name).Logger()
}

// Zerolog logger sin campos extra.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
