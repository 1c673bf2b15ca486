package llm

import (
	"strings"

	"github.com/goccy/go-json"
)

// SafetyVerdict 审核分类结果
type SafetyVerdict struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason,omitempty"`
}

// ParseSafetyVerdict 解析模型返回的 JSON 结论
// 模型偶尔会把 JSON 包在代码块标记里，先做剥离再反序列化。
func ParseSafetyVerdict(s string) (*SafetyVerdict, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var verdict SafetyVerdict
	if err := json.Unmarshal([]byte(cleaned), &verdict); err != nil {
		return nil, err
	}
	return &verdict, nil
}
