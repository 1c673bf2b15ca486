package archive

import (
	"path/filepath"
	"sort"
	"strings"
)

// validExtensions 可下载的游戏镜像与压缩包格式
var validExtensions = map[string]struct{}{
	".iso": {}, ".cso": {}, ".rom": {}, ".bin": {}, ".cue": {},
	".7z": {}, ".zip": {}, ".rar": {}, ".chd": {}, ".rvz": {},
	".wbfs": {}, ".nds": {}, ".gba": {}, ".cia": {}, ".apk": {},
}

// priorityTerms 西语/欧版优先标记，命中任一则排序靠前
var priorityTerms = []string{
	"europe", "eur", "eu", "spain", "spanish", "español", "castellano",
	"latino", "multi", "traducido", "patch",
	"(es)", "[es]", "_es_", " es ", "-es-", ".es.", ",es,", ",es)",
	"(es,", "es,", ", es", "es)",
}

// FilterFiles 仅保留扩展名在白名单内的文件
func FilterFiles(files []File) []File {
	out := make([]File, 0, len(files))
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Name))
		if _, ok := validExtensions[ext]; ok {
			out = append(out, f)
		}
	}
	return out
}

// SortFilesByLocale 西语/欧版文件排前，组内保持原有顺序
func SortFilesByLocale(files []File) {
	sort.SliceStable(files, func(i, j int) bool {
		return hasPriorityTerm(files[i].Name) && !hasPriorityTerm(files[j].Name)
	})
}

func hasPriorityTerm(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range priorityTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// MatchesAllTerms 文件名包含全部查询词（大小写不敏感）
func MatchesAllTerms(name string, terms []string) bool {
	lower := strings.ToLower(name)
	for _, t := range terms {
		if !strings.Contains(lower, strings.ToLower(t)) {
			return false
		}
	}
	return len(terms) > 0
}
