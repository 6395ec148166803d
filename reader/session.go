package reader

import (
	"fmt"

	"github.com/ByLCY/folio/layout"
)

// Session 是一次阅读会话的显式载体：持有不可变的文档缓冲、
// 载入时一次性算好的页表以及当前页号。不使用任何进程级可变
// 状态，所有操作都在单线程内同步完成。
type Session struct {
	Title string

	doc    []byte
	geo    layout.Geometry
	engine *layout.Engine
	table  layout.PageTable
	page   int
}

// NewSession 对文档执行一次完整分页并返回会话。
// 分页被安全上限截断时仍返回可用的会话，同时携带
// layout.ErrTooManyPages 供调用方上报。
func NewSession(doc []byte, geo layout.Geometry, m layout.Measurer, maxPages int) (*Session, error) {
	table, err := layout.Paginate(doc, geo, m, maxPages)
	s := &Session{
		doc:    doc,
		geo:    geo,
		engine: layout.NewEngine(geo, m),
		table:  table,
	}
	if err != nil {
		return s, fmt.Errorf("分页未完整覆盖文档: %w", err)
	}
	return s, nil
}

// Doc 返回文档字节缓冲（调用方不得修改）。
func (s *Session) Doc() []byte { return s.doc }

// Table 返回页表。
func (s *Session) Table() layout.PageTable { return s.table }

// Geometry 返回会话使用的屏幕几何。
func (s *Session) Geometry() layout.Geometry { return s.geo }

// PageCount 返回总页数。
func (s *Session) PageCount() int { return s.table.Count() }

// CurrentPage 返回当前页号。
func (s *Session) CurrentPage() int { return s.page }

// GoTo 跳转到第 n 页，越界页号收拢到有效区间后生效。
func (s *Session) GoTo(n int) int {
	s.page = s.table.Clamp(n)
	return s.page
}

// Next 翻到下一页（已在末页时保持不动）。
func (s *Session) Next() int { return s.GoTo(s.page + 1) }

// Prev 翻到上一页（已在首页时保持不动）。
func (s *Session) Prev() int { return s.GoTo(s.page - 1) }

// Render 以渲染模式在当前页的字节区间上执行布局引擎，
// 把绘制调用发往 surface。
func (s *Session) Render(surface layout.Surface) error {
	if surface == nil {
		return fmt.Errorf("reader: 渲染缺少绘制后端 Surface")
	}
	if s.table.Count() == 0 {
		return nil
	}
	p := s.table[s.page]
	s.engine.Run(s.doc, p.Start, p.End, surface)
	return nil
}
