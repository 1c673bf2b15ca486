package archive

import (
	"fmt"
	"strings"
)

// BuildSearchQuery 构造 advancedsearch 的 Lucene 查询串。
// 权重从高到低：精确短语 > 全词命中 > 任意词命中 > 前缀通配。
// 提供可信集合且非全站模式时限定 collection，否则仅限定软件类目。
func BuildSearchQuery(cleanQuery string, collections []string, global bool) string {
	terms := strings.Fields(cleanQuery)
	if len(terms) == 0 {
		return ""
	}

	phrase := fmt.Sprintf(`"%s"^100`, cleanQuery)
	all := "(" + strings.Join(terms, " AND ") + ")^10"
	any := "(" + strings.Join(terms, " OR ") + ")"
	prefixTerms := make([]string, len(terms))
	for i, t := range terms {
		prefixTerms[i] = t + "*"
	}
	prefix := "(" + strings.Join(prefixTerms, " OR ") + ")"

	text := fmt.Sprintf("(title:(%s OR %s OR %s OR %s) OR identifier:%s)",
		phrase, all, any, prefix, prefix)

	if !global && len(collections) > 0 {
		quoted := make([]string, len(collections))
		for i, c := range collections {
			quoted[i] = fmt.Sprintf("%q", c)
		}
		return text + " AND collection:(" + strings.Join(quoted, " OR ") + ")"
	}
	return text + " AND mediatype:(software)"
}
