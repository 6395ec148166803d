package binding

import "testing"

func TestInterpolate(t *testing.T) {
	data := map[string]any{"page": 3, "pages": 120, "title": "孤独及其所创造的"}
	cases := []struct{ in, want string }{
		{"${page} / ${pages}", "3 / 120"},
		{"${title}", "孤独及其所创造的"},
		{"${ page } 空白可容忍", "3 空白可容忍"},
		{"${missing} 保留", "${missing} 保留"},
		{"无占位符", "无占位符"},
		{"${}", "${}"},
	}
	for _, c := range cases {
		if got := Interpolate(c.in, data); got != c.want {
			t.Fatalf("Interpolate(%q)=%q want=%q", c.in, got, c.want)
		}
	}
}

func TestInterpolateNilData(t *testing.T) {
	if got := Interpolate("${page}", nil); got != "${page}" {
		t.Fatalf("空数据应保留占位符: %q", got)
	}
}
