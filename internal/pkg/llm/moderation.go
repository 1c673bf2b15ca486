package llm

import (
	"context"
	log "log/slog"

	"github.com/goccy/go-json"
)

// ModerationInput 提交给分类器的评论内容
type ModerationInput struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// CheckContentSafety 调用远端分类器判定评论是否合规
// 传输失败由调用方按 fail-open 处理，这里只负责调用与解析。
func CheckContentSafety(ctx context.Context, author, content string) (*SafetyVerdict, error) {
	payload, err := json.Marshal(&ModerationInput{Author: author, Content: content})
	if err != nil {
		log.Error("内容审核-请求数据序列化失败", "err", err)
		return nil, err
	}

	resp, err := fetchModel(ctx, contentSafePrompt, string(payload), 0.1)
	if err != nil {
		log.Error("内容审核-AI大模型请求失败", "err", err)
		return nil, err
	}

	raw, err := firstChoice(resp)
	if err != nil {
		return nil, err
	}

	verdict, err := ParseSafetyVerdict(raw)
	if err != nil {
		log.Error("内容审核-AI大模型返回数据解析失败", "err", err, "raw", raw)
		return nil, err
	}
	return verdict, nil
}
