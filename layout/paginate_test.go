package layout

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// checkTableInvariants 断言页表的三条核心不变式：
// 首页从 0 开始、相邻页首尾相接、末页覆盖到文档末尾，且每页至少 1 字节。
func checkTableInvariants(t *testing.T, table PageTable, docLen int) {
	t.Helper()
	if len(table) == 0 {
		if docLen != 0 {
			t.Fatalf("非空文档生成了空页表")
		}
		return
	}
	if table[0].Start != 0 {
		t.Fatalf("首页必须从 0 开始: got=%d", table[0].Start)
	}
	if table[len(table)-1].End != docLen {
		t.Fatalf("末页必须覆盖到文档末尾: got=%d want=%d", table[len(table)-1].End, docLen)
	}
	for i, p := range table {
		if p.Len() < 1 {
			t.Fatalf("第 %d 页为空: %+v", i, p)
		}
		if i > 0 && table[i-1].End != p.Start {
			t.Fatalf("第 %d/%d 页不连续: %+v %+v", i-1, i, table[i-1], p)
		}
	}
}

func TestPaginateScenario(t *testing.T) {
	doc := []byte("Hello world\r\nThis is a test.")
	table, err := Paginate(doc, testGeometry(), stubMeasurer{}, 0)
	if err != nil {
		t.Fatalf("分页失败: %v", err)
	}
	want := PageTable{{Start: 0, End: 11}, {Start: 11, End: 18}, {Start: 18, End: 28}}
	if !reflect.DeepEqual(table, want) {
		t.Fatalf("页边界不符: got=%+v want=%+v", table, want)
	}
	checkTableInvariants(t, table, len(doc))
}

// TestPaginateInvariants 对多种输入验证页表不变式与幂等性。
func TestPaginateInvariants(t *testing.T) {
	docs := map[string][]byte{
		"纯文本":   []byte("the quick brown fox jumps over the lazy dog again and again"),
		"多段落":   []byte("para one\r\npara two\r\n\r\npara three with more words here"),
		"超宽单词":  []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa b ccccccccccccccccccccc"),
		"单字节":   []byte("x"),
		"仅换行":   []byte("\r\n\r\n\r\n\r\n"),
		"长文档":   []byte(strings.Repeat("lorem ipsum dolor sit amet ", 200)),
		"混合高位字节": append([]byte("caf"), 0xE9, ' ', 0xE2, 0x80, 0xA6, ' ', 'e', 'n', 'd'),
	}
	geo := testGeometry()
	for name, doc := range docs {
		table, err := Paginate(doc, geo, stubMeasurer{}, 0)
		if err != nil {
			t.Fatalf("%s: 分页失败: %v", name, err)
		}
		checkTableInvariants(t, table, len(doc))

		again, err := Paginate(doc, geo, stubMeasurer{}, 0)
		if err != nil {
			t.Fatalf("%s: 重分页失败: %v", name, err)
		}
		if !reflect.DeepEqual(table, again) {
			t.Fatalf("%s: 分页不幂等", name)
		}
	}
}

// TestPaginateForwardProgress 验证超长单元不会令分页停滞。
func TestPaginateForwardProgress(t *testing.T) {
	doc := []byte(strings.Repeat("z", 500)) // 单个 5000px 的"单词"
	table, err := Paginate(doc, testGeometry(), stubMeasurer{}, 0)
	if err != nil {
		t.Fatalf("分页失败: %v", err)
	}
	checkTableInvariants(t, table, len(doc))
}

// TestPaginateDegenerateGeometry 验证一行都放不下的几何也能终止：
// 引擎原地返回时由分页器强制推进到下一个词法单元边界。
func TestPaginateDegenerateGeometry(t *testing.T) {
	doc := []byte("alpha beta gamma")
	geo := Geometry{Width: 60, Height: 5, LineHeight: 10} // limitY 低于首行
	table, err := Paginate(doc, geo, stubMeasurer{}, 0)
	if err != nil {
		t.Fatalf("分页失败: %v", err)
	}
	checkTableInvariants(t, table, len(doc))
	if table[0].End != 5 {
		t.Fatalf("强制推进应落在单词边界: got=%d want=5", table[0].End)
	}
}

// TestPaginatePageLimit 验证安全上限：超限时返回截断页表与可识别错误。
func TestPaginatePageLimit(t *testing.T) {
	doc := []byte(strings.Repeat("word ", 400))
	table, err := Paginate(doc, testGeometry(), stubMeasurer{}, 3)
	if !errors.Is(err, ErrTooManyPages) {
		t.Fatalf("应返回 ErrTooManyPages: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("截断页表长度错误: got=%d want=3", len(table))
	}
	checkTableInvariants(t, table[:len(table)], table[len(table)-1].End)
}

// TestPaginateRenderNeverOverflows 验证对每个已算出的页执行渲染时，
// 光标不会越过纵向下界（测量/渲染一致性的整体性质）。
func TestPaginateRenderNeverOverflows(t *testing.T) {
	doc := []byte(strings.Repeat("several words of ordinary prose flowing onward ", 40))
	geo := testGeometry()
	table, err := Paginate(doc, geo, stubMeasurer{}, 0)
	if err != nil {
		t.Fatalf("分页失败: %v", err)
	}
	engine := NewEngine(geo, stubMeasurer{})
	for i, p := range table {
		var surface recordingSurface
		if got := engine.Run(doc, p.Start, p.End, &surface); got != p.End {
			t.Fatalf("第 %d 页渲染未达页尾: got=%d want=%d", i, got, p.End)
		}
		for _, d := range surface.draws {
			if d.y+geo.LineHeight/2 >= geo.limitY() {
				t.Fatalf("第 %d 页绘制越界: y=%g text=%q", i, d.y, d.text)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	table := PageTable{{0, 5}, {5, 9}}
	cases := []struct{ in, want int }{{-3, 0}, {0, 0}, {1, 1}, {2, 1}, {99, 1}}
	for _, c := range cases {
		if got := table.Clamp(c.in); got != c.want {
			t.Fatalf("Clamp(%d)=%d want=%d", c.in, got, c.want)
		}
	}
	var empty PageTable
	if got := empty.Clamp(7); got != 0 {
		t.Fatalf("空表应收拢到 0: got=%d", got)
	}
}
