package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 未接通连接时所有辅助函数都必须安全退化，不得空指针
func TestHelpersWithoutConnection(t *testing.T) {
	prev := Rdb
	Rdb = nil
	t.Cleanup(func() { Rdb = prev })

	ctx := context.Background()

	assert.NoError(t, SetWithExpiration(ctx, "k", "v", time.Minute))

	value, err := GetValue(ctx, "k")
	assert.NoError(t, err)
	assert.Empty(t, value)

	raw, err := GetBytes(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, raw)

	assert.NoError(t, DeleteKey(ctx, "k"))
	assert.NoError(t, Publish(ctx, "canal", "payload"))
	assert.Nil(t, Subscribe(ctx, "canal"))
}
