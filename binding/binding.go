package binding

import (
	"fmt"
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${key} 替换为 data 中的值，用于页脚/页眉模板
//（如 "${page} / ${pages}"）。data 为空或键不存在时保留原占位符。
func Interpolate(text string, data map[string]any) string {
	if len(data) == 0 {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		key := strings.TrimSpace(groups[1])
		if key == "" {
			return match
		}
		if val, ok := data[key]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
