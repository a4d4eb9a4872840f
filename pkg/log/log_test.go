package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_AddsCorrelationField(t *testing.T) {
	SetupTestLogger()

	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("Mensagem de teste")

	assert.Contains(t, buf.String(), "Mensagem de teste")
	assert.Contains(t, buf.String(), id)
}

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	require.NoError(t, Configure("debug"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	err := Configure("verbose")
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
