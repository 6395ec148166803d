package layout

// Measurer 负责测量一段文本按当前字体绘制时的像素宽度。
// 同一文档生命周期内测量结果必须确定且稳定，分页与渲染
// 两次经过布局引擎时依赖完全一致的宽度。
type Measurer interface {
	Width(text string) float64
}

// Surface 是渲染模式下消费的绘制能力；测量模式传 nil。
// DrawAt 在 (x, y) 处绘制一段文本，y 为行顶坐标。
type Surface interface {
	MoveTo(x, y float64)
	DrawAt(x, y float64, text string)
}
