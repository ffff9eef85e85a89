// Package logger configura o zerolog da aplicação. Em development a saída é
// formatada para console; nos demais ambientes o formato é JSON por linha.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var levels = map[string]zerolog.Level{
	"trace": zerolog.TraceLevel,
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// New monta o logger raiz com timestamp e nível e o instala como logger
// global do zerolog, para que pacotes que registram via rs/zerolog/log
// compartilhem a mesma saída. Nível desconhecido cai em info.
func New(env, level string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = zerolog.InfoLevel
	}

	zl := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	log.Logger = zl
	return zl
}
