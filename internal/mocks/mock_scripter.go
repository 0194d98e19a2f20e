package mocks

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockScripter stands in for the redis client used by the rate limiter.
// Script.Run goes through EvalSha first and falls back to Eval.
type MockScripter struct {
	mock.Mock
}

var _ redis.Scripter = (*MockScripter)(nil)

func (m *MockScripter) scriptCall(ctx context.Context, method string, src string, keys []string, args []any) *redis.Cmd {
	callArgs := append([]any{ctx, src, keys}, args...)
	return m.MethodCalled(method, callArgs...).Get(0).(*redis.Cmd)
}

func (m *MockScripter) Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	return m.scriptCall(ctx, "Eval", script, keys, args)
}

func (m *MockScripter) EvalSha(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	return m.scriptCall(ctx, "EvalSha", sha1, keys, args)
}

func (m *MockScripter) EvalRO(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	return m.scriptCall(ctx, "EvalRO", script, keys, args)
}

func (m *MockScripter) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	return m.scriptCall(ctx, "EvalShaRO", sha1, keys, args)
}

func (m *MockScripter) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	return m.Called(ctx, hashes).Get(0).(*redis.BoolSliceCmd)
}

func (m *MockScripter) ScriptLoad(ctx context.Context, script string) *redis.StringCmd {
	return m.Called(ctx, script).Get(0).(*redis.StringCmd)
}
