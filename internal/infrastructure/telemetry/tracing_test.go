package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/DanielPopoola/anet-transactions/internal/config"
	"github.com/DanielPopoola/anet-transactions/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup_Disabled(t *testing.T) {
	var buf bytes.Buffer
	before := otel.GetTracerProvider()

	shutdown, err := telemetry.Setup(config.TracingConfig{}, config.EnvDevelopment, &buf)

	require.NoError(t, err)
	assert.Equal(t, before, otel.GetTracerProvider())
	assert.NoError(t, shutdown(context.Background()))
	assert.Zero(t, buf.Len())
}

func TestSetup_ExportsSpans(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	var buf bytes.Buffer
	shutdown, err := telemetry.Setup(config.TracingConfig{Enabled: true}, config.EnvDevelopment, &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "TransactionService.Capture")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "TransactionService.Capture")
	assert.Contains(t, buf.String(), telemetry.ServiceName)
}
