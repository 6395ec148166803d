package layout

import (
	"github.com/ByLCY/folio/textnorm"
	"github.com/ByLCY/folio/token"
)

// Engine 是确定性的光标模拟器：从给定字节偏移起逐个消费词法单元，
// 决定折行与翻页位置。测量与渲染共用同一张状态转移表，二者唯一的
// 区别是渲染模式带有 Surface 并真正发出绘制调用——历史上这里曾是
// 两份几乎相同的实现，分页与渲染的折行决策一旦漂移就会在页边界处
// 截断单词，因此必须保持单一代码路径。
type Engine struct {
	geo Geometry
	m   Measurer
}

// NewEngine 构造布局引擎。Measurer 不能为空。
func NewEngine(geo Geometry, m Measurer) *Engine {
	return &Engine{geo: geo, m: m}
}

// Run 从 start 开始在 doc[start:limit) 上执行光标模拟，返回页边界：
// 即第一个放不进当前页的单元的起始偏移；若全部放下则返回 limit。
// surface 为 nil 时只测量（分页模式），非 nil 时同时发出绘制调用。
// 渲染一页时以该页的 End 作为 limit，分词器天然把越界单词截断在
// 页边界上；由于两种模式执行同一转移表，该截断在正确分页下不可达，
// 仅作为对分页结果的兜底。
func (e *Engine) Run(doc []byte, start, limit int, surface Surface) int {
	if limit > len(doc) {
		limit = len(doc)
	}
	x := e.geo.MarginLeft
	y := e.geo.contentTop()
	if surface != nil {
		surface.MoveTo(x, y)
	}

	ptr := start
	for ptr < limit {
		kind, end := token.Next(doc, ptr, limit)
		switch kind {
		case token.CR:
			x = e.geo.MarginLeft
			y += e.geo.LineHeight
			if y >= e.geo.limitY() {
				// 本页已满，回车本身作为下一页的第一个字节
				return ptr
			}
			if surface != nil {
				surface.MoveTo(x, y)
			}
		case token.LF:
			// \n 作为 \r 的伴随字节被静默消费，不影响光标
		case token.Space:
			w := e.m.Width(" ")
			if x+w > e.geo.rightLimit() {
				// 行尾空格被折行吸收，不占新行宽度
				x = e.geo.MarginLeft
				y += e.geo.LineHeight
				if y >= e.geo.limitY() {
					return ptr
				}
				if surface != nil {
					surface.MoveTo(x, y)
				}
			} else {
				x += w
			}
		case token.Word:
			text := textnorm.Normalize(doc, ptr, end)
			w := e.m.Width(text)
			if x > e.geo.MarginLeft && x+w > e.geo.rightLimit() {
				// 位于行首的单词永不折行，即便超宽也原地放置，
				// 否则超长单元会令布局停滞
				x = e.geo.MarginLeft
				y += e.geo.LineHeight
			}
			if y+e.geo.LineHeight/2 >= e.geo.limitY() {
				// 半行高安全余量：保证渲染时不会出现底部被裁掉一半的行
				return ptr
			}
			if surface != nil {
				surface.DrawAt(x, y, text)
			}
			x += w
		}
		ptr = end
	}
	return limit
}
