package logger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLevel_Decode(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"Error", LevelError, false},
		{"trace", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var level Level
			err := level.Decode(tt.input)

			if tt.wantErr {
				assert.EqualError(t, err, "invalid log level: "+tt.input)
				assert.Empty(t, level)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestFormat_Decode(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatText, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var format Format
			err := format.Decode(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestFieldConstructors(t *testing.T) {
	err := assert.AnError

	assert.Equal(t, Field{Key: "form_id", Value: "form-1"}, String("form_id", "form-1"))
	assert.Equal(t, Field{Key: "fields", Value: []string{"email"}}, Strings("fields", []string{"email"}))
	assert.Equal(t, Field{Key: "status", Value: 404}, Int("status", 404))
	assert.Equal(t, Field{Key: "accepted", Value: true}, Bool("accepted", true))
	assert.Equal(t, Field{Key: "error", Value: err}, Error(err))
}

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		stored := NewNop().With(String("request_id", "abc"))
		ctx := WithLogger(context.Background(), stored)

		assert.Equal(t, stored, FromContext(ctx))
	})

	t.Run("falls back to nop", func(t *testing.T) {
		got := FromContext(context.Background())

		require.NotNil(t, got)
		assert.NotPanics(t, func() {
			got.Info("ignored", String("k", "v"))
			got.With(Int("n", 1)).Error("ignored")
		})
	})

	t.Run("ignores foreign values", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), loggerKey{}, "not a logger")

		assert.Equal(t, NewNop(), FromContext(ctx))
	})
}

func TestFromContextOr(t *testing.T) {
	fallback := &zapLogger{logger: zap.NewNop().Named("fallback")}
	stored := &zapLogger{logger: zap.NewNop().Named("request")}

	assert.Same(t, fallback, FromContextOr(context.Background(), fallback))
	assert.Same(t, stored, FromContextOr(WithLogger(context.Background(), stored), fallback))
}

func TestFromContext_Concurrent(t *testing.T) {
	ctx := WithLogger(context.Background(), NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			FromContext(ctx).Debug("concurrent")
		}()
	}
	wg.Wait()
}

func BenchmarkFromContext(b *testing.B) {
	ctx := WithLogger(context.Background(), NewNop())
	for i := 0; i < b.N; i++ {
		_ = FromContext(ctx)
	}
}
