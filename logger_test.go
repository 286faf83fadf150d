package rvec

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/hupe1980/rvec/coerce"
	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, slog.LevelDebug).WithKind(scalar.KindDouble).WithName("x.rvec")

	l.LogSave(context.Background(), "x.rvec", 128, nil)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "vector saved", rec["msg"])
	assert.Equal(t, "double", rec["kind"])
	assert.Equal(t, "x.rvec", rec["name"])
	assert.EqualValues(t, 128, rec["bytes"])
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newTextLogger(&buf, slog.LevelInfo)
	ctx := context.Background()

	l.LogCast(ctx, scalar.KindInteger, scalar.KindDouble, 3, nil)
	assert.Empty(t, buf.String(), "successful casts log at debug")

	l.LogLoad(ctx, "x", 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "load failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestLogCoercionWarnings(t *testing.T) {
	var buf bytes.Buffer
	l := newTextLogger(&buf, slog.LevelInfo)

	_, w, err := coerce.Cast(vector.NewDouble([]float64{1.5, 3e10}, vector.Complete), scalar.KindInteger)
	require.NoError(t, err)
	l.LogCoercionWarnings(context.Background(), scalar.KindInteger, w)
	assert.Contains(t, buf.String(), "NAs introduced by coercion to integer range")
	assert.Contains(t, buf.String(), "to=integer")

	buf.Reset()
	l.LogCoercionWarnings(context.Background(), scalar.KindInteger, coerce.Warnings{})
	assert.Empty(t, buf.String())
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogSave(context.Background(), "x", 1, errors.New("ignored"))
}
