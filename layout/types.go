package layout

// 该文件定义页面边界表与屏幕几何配置，供分页、渲染与调试 JSON 共用。

// Page 表示文档字节缓冲上的一个半开区间 [Start, End)。
// 相邻页满足 page[i].End == page[i+1].Start，且每页至少包含一个字节。
type Page struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len 返回该页覆盖的字节数。
func (p Page) Len() int { return p.End - p.Start }

// PageTable 是按页号排序的页面边界表，在文档载入时一次性生成，
// 此后只读，直到换书。
type PageTable []Page

// Count 返回总页数。
func (t PageTable) Count() int { return len(t) }

// Clamp 把页号收拢到 [0, Count-1]；空表返回 0。
func (t PageTable) Clamp(n int) int {
	if len(t) == 0 {
		return 0
	}
	if n < 0 {
		return 0
	}
	if n >= len(t) {
		return len(t) - 1
	}
	return n
}

// Geometry 描述目标屏幕的像素几何与排版参数。
// 所有数值单位均为像素；这里只是配置默认值的载体，
// 不同设备通过 profile 覆盖。
type Geometry struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	MarginLeft   float64 `json:"marginLeft"`
	MarginRight  float64 `json:"marginRight"`
	MarginTop    float64 `json:"marginTop"`
	MarginBottom float64 `json:"marginBottom"`
	// HeaderHeight 是页面顶部为书名保留的区域高度，正文从其下方开始。
	HeaderHeight float64 `json:"headerHeight"`
	// FooterHeight 是页面底部为页码保留的区域高度，正文不得侵入。
	FooterHeight float64 `json:"footerHeight"`
	LineHeight   float64 `json:"lineHeight"`
}

// DefaultGeometry 返回 540x960 电子墨水屏的默认几何参数。
func DefaultGeometry() Geometry {
	return Geometry{
		Width:        540,
		Height:       960,
		MarginLeft:   10,
		MarginRight:  10,
		MarginTop:    10,
		MarginBottom: 10,
		HeaderHeight: 32,
		FooterHeight: 24,
		LineHeight:   28,
	}
}

// contentTop 返回正文首行的纵向起点。
func (g Geometry) contentTop() float64 { return g.MarginTop + g.HeaderHeight }

// rightLimit 返回正文可用区域的右边界。
func (g Geometry) rightLimit() float64 { return g.Width - g.MarginRight }

// limitY 返回正文可用区域的纵向下界（不含页脚与下边距）。
func (g Geometry) limitY() float64 { return g.Height - g.MarginBottom - g.FooterHeight }
