package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/pkg/logger"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Debug().Msg("no debe salir")
	log.Info().Str("app", "clientes-api").Msg("iniciando")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "una sola línea JSON")
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "clientes-api", line["app"])
	assert.Equal(t, "iniciando", line["message"])
}

func TestWith_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	base := logger.New(logger.Config{Env: "production", Level: "debug", Out: &buf})

	base.With("request_id", "abc-123").Debug().Msg("petición")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "abc-123", line["request_id"])

	buf.Reset()
	base.Info().Msg("sin campo")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("ruidoso"))
}
