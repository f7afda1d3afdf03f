package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceIDContext(t *testing.T) {
	ctx := context.Background()

	_, ok := GetTraceIDFromContext(ctx)
	assert.False(t, ok)

	ctx = WithTraceID(ctx, "0191-trace")
	got, ok := GetTraceIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "0191-trace", got)
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	_, ok := GetTraceIDFromContext(ctx)
	assert.False(t, ok)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}
