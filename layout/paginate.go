package layout

import (
	"errors"
	"fmt"

	"github.com/ByLCY/folio/token"
)

// DefaultMaxPages 是分页安全上限的默认值，用于约束病态输入下的
// 最坏内存与耗时；超限时返回截断的页表与 ErrTooManyPages。
const DefaultMaxPages = 2000

// ErrTooManyPages 表示分页在达到安全上限后被截断，书会显得比实际短。
// 这是可报告的状况，不是致命错误，调用方持有已生成的页表。
var ErrTooManyPages = errors.New("超出最大页数限制")

// Paginate 对整个文档执行测量模式的布局，生成页边界表。
// 该调用在文档载入时同步执行一次，耗时与文档长度成正比。
// maxPages <= 0 时采用 DefaultMaxPages。
func Paginate(doc []byte, geo Geometry, m Measurer, maxPages int) (PageTable, error) {
	if m == nil {
		return nil, fmt.Errorf("layout: 缺少宽度测量后端 Measurer")
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	engine := NewEngine(geo, m)
	var table PageTable
	start := 0
	for start < len(doc) {
		if len(table) >= maxPages {
			return table, fmt.Errorf("分页在 %d 页后被截断: %w", maxPages, ErrTooManyPages)
		}
		end := engine.Run(doc, start, len(doc), nil)
		if end <= start {
			// 引擎未能推进（超宽单元等边界情形）时强制前进：
			// 优先跳到下一个词法单元边界，至少前进一个字节
			end = forceAdvance(doc, start)
		}
		table = append(table, Page{Start: start, End: end})
		start = end
	}
	return table, nil
}

// forceAdvance 返回 start 之后最近的安全推进点。
func forceAdvance(doc []byte, start int) int {
	if start >= len(doc) {
		return len(doc)
	}
	_, end := token.Next(doc, start, len(doc))
	if end <= start {
		end = start + 1
	}
	return end
}
