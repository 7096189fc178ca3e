package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pagetree"
)

func TestFieldsFromArgs(t *testing.T) {
	t.Parallel()

	fields := fieldsFromArgs([]any{"height", 2, 7, "ignored", "dangling"})
	assert.Equal(t, map[string]any{"height": 2}, fields)
}

func TestLogrusAdapter(t *testing.T) {
	t.Parallel()

	base, hook := logrustest.NewNullLogger()
	log := NewLogrus(base)

	log.Warn("rejected key", "op", "insert")
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "rejected key", entry.Message)
	assert.Equal(t, "insert", entry.Data["op"])
}

func TestZapAdapter(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	log := NewZap(zap.New(core))

	log.Info("root split", "height", 2)
	log.Error("boom")
	require.Equal(t, 2, logs.Len())

	first := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, first.Level)
	assert.Equal(t, "root split", first.Message)
	assert.Equal(t, int64(2), first.ContextMap()["height"])
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestTreeLogsRootSplit(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	tree, err := pagetree.New[pagetree.Int](pagetree.IntCodec{},
		pagetree.WithCapacity(2),
		pagetree.WithLogger(NewZap(zap.New(core))),
	)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		require.NoError(t, tree.Insert(pagetree.Int(i)))
	}

	splits := logs.FilterMessage("root split")
	require.Equal(t, 1, splits.Len())
	assert.Equal(t, int64(2), splits.All()[0].ContextMap()["height"])
}
