package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(SetNopLogger)

	require.NoError(t, Init("debug", true))
	require.NoError(t, Init("info", false))

	err := Init("loud", true)
	require.Error(t, err)
	assert.ErrorContains(t, err, "logger.Init")
}

func TestWithFieldsAccumulates(t *testing.T) {
	ctx := WithFields(context.Background(), String("request_id", "r-1"))
	ctx = WithFields(ctx, String("vin", "VIN123"))

	fields := fieldsFromContext(ctx)
	require.Len(t, fields, 2)
	assert.Equal(t, "request_id", fields[0].Key)
	assert.Equal(t, "vin", fields[1].Key)

	assert.Empty(t, fieldsFromContext(context.Background()))
}
