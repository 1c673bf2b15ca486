package service

import (
	"RomXD/internal/model"
	"sort"
)

// ThreadedComment 线程化后的评论节点。
// 结构深度不设上限，DisplayDepth 仅用于展示缩进并封顶为 1：
// 对回复的回复与其一级祖先共用同一缩进档位。
type ThreadedComment struct {
	*model.Comment
	DisplayDepth int                `json:"displayDepth"`
	Replies      []*ThreadedComment `json:"replies"`
}

// RootsOf 取出楼主评论，按创建时间倒序（最新的楼排前）
func RootsOf(comments []*model.Comment) []*model.Comment {
	roots := make([]*model.Comment, 0)
	for _, c := range comments {
		if c.ParentID == "" {
			roots = append(roots, c)
		}
	}
	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].CreatedAt > roots[j].CreatedAt
	})
	return roots
}

// ChildrenOf 取出指定评论的直接回复，按创建时间升序（最早的回复排前）
func ChildrenOf(comments []*model.Comment, parentID string) []*model.Comment {
	children := make([]*model.Comment, 0)
	for _, c := range comments {
		if c.ParentID != "" && c.ParentID == parentID {
			children = append(children, c)
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].CreatedAt < children[j].CreatedAt
	})
	return children
}

// BuildThread 将同一游戏下的平铺评论集组装为线程结构
func BuildThread(comments []*model.Comment) []*ThreadedComment {
	roots := RootsOf(comments)
	nodes := make([]*ThreadedComment, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, buildNode(comments, root, 0))
	}
	return nodes
}

func buildNode(comments []*model.Comment, comment *model.Comment, depth int) *ThreadedComment {
	displayDepth := depth
	if displayDepth > 1 {
		displayDepth = 1
	}

	node := &ThreadedComment{
		Comment:      comment,
		DisplayDepth: displayDepth,
		Replies:      make([]*ThreadedComment, 0),
	}
	for _, child := range ChildrenOf(comments, comment.ID) {
		node.Replies = append(node.Replies, buildNode(comments, child, depth+1))
	}
	return node
}
