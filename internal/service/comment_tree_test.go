package service

import (
	"RomXD/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comment(id, parentID string, createdAt int64) *model.Comment {
	return &model.Comment{
		ID:        id,
		GameID:    "g1",
		ParentID:  parentID,
		Author:    "tester",
		Content:   "contenido",
		CreatedAt: createdAt,
	}
}

func TestRootsOfNewestFirst(t *testing.T) {
	comments := []*model.Comment{
		comment("a", "", 100),
		comment("b", "", 300),
		comment("c", "a", 150),
		comment("d", "", 200),
	}

	roots := RootsOf(comments)

	require.Len(t, roots, 3)
	assert.Equal(t, "b", roots[0].ID)
	assert.Equal(t, "d", roots[1].ID)
	assert.Equal(t, "a", roots[2].ID)
}

func TestChildrenOfOldestFirst(t *testing.T) {
	comments := []*model.Comment{
		comment("root", "", 100),
		comment("r2", "root", 300),
		comment("r1", "root", 200),
		comment("other", "", 150),
	}

	children := ChildrenOf(comments, "root")

	require.Len(t, children, 2)
	assert.Equal(t, "r1", children[0].ID)
	assert.Equal(t, "r2", children[1].ID)
}

func TestBuildThreadDisplayDepthCapped(t *testing.T) {
	// root <- reply <- reply-to-reply <- 四级
	comments := []*model.Comment{
		comment("d0", "", 100),
		comment("d1", "d0", 200),
		comment("d2", "d1", 300),
		comment("d3", "d2", 400),
	}

	thread := BuildThread(comments)
	require.Len(t, thread, 1)

	node := thread[0]
	assert.Equal(t, 0, node.DisplayDepth)

	require.Len(t, node.Replies, 1)
	node = node.Replies[0]
	assert.Equal(t, 1, node.DisplayDepth)

	// 结构深度继续增长，展示深度封顶为 1
	require.Len(t, node.Replies, 1)
	node = node.Replies[0]
	assert.Equal(t, 1, node.DisplayDepth)

	require.Len(t, node.Replies, 1)
	assert.Equal(t, 1, node.Replies[0].DisplayDepth)
}

func TestBuildThreadPreservesStructure(t *testing.T) {
	comments := []*model.Comment{
		comment("r", "", 100),
		comment("c1", "r", 200),
		comment("c2", "r", 300),
		comment("c1a", "c1", 400),
	}

	thread := BuildThread(comments)
	require.Len(t, thread, 1)

	root := thread[0]
	require.Len(t, root.Replies, 2)
	assert.Equal(t, "c1", root.Replies[0].ID)
	assert.Equal(t, "c2", root.Replies[1].ID)

	// c1a 仍挂在 c1 下，而不是被拍平成 root 的直接回复
	require.Len(t, root.Replies[0].Replies, 1)
	assert.Equal(t, "c1a", root.Replies[0].Replies[0].ID)
	assert.Empty(t, root.Replies[1].Replies)
}

func TestBuildThreadEmpty(t *testing.T) {
	assert.Empty(t, BuildThread(nil))
	assert.Empty(t, BuildThread([]*model.Comment{}))
}
