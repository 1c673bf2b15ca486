package llm

import (
	"context"
	log "log/slog"
	"strings"
)

// TranslateToSpanish 将描述文本翻译为西班牙语
// 翻译失败时回退为原文，元数据导入不应因翻译服务不可用而中断。
func TranslateToSpanish(ctx context.Context, text string) string {
	if text == "" {
		return ""
	}

	resp, err := fetchModel(ctx, translatePrompt, text, 0.3)
	if err != nil {
		log.Error("翻译-AI大模型请求失败", "err", err)
		return text
	}

	translated, err := firstChoice(resp)
	if err != nil || strings.TrimSpace(translated) == "" {
		return text
	}
	return strings.TrimSpace(translated)
}

// TranslateKeywords 翻译逗号分隔的类型/标签列表
func TranslateKeywords(ctx context.Context, text string) string {
	if text == "" {
		return ""
	}

	resp, err := fetchModel(ctx, translateKeywordsPrompt, text, 0.3)
	if err != nil {
		log.Error("标签翻译-AI大模型请求失败", "err", err)
		return text
	}

	translated, err := firstChoice(resp)
	if err != nil || strings.TrimSpace(translated) == "" {
		return text
	}
	return strings.TrimSpace(translated)
}
