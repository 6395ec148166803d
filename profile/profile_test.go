package profile

import (
	"strings"
	"testing"
)

func resolve(t *testing.T, text string) Config {
	t.Helper()
	p, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("解析 profile 失败: %v", err)
	}
	cfg, err := p.Resolve()
	if err != nil {
		t.Fatalf("落配置失败: %v", err)
	}
	return cfg
}

func TestParseFullProfile(t *testing.T) {
	text := `profile clara {
  // 6 寸墨水屏
  display 1072 1448
  margin 24 18
  header 40
  footer 30
  line-height 36
  font {
    src: "embed:Inter/static/Inter-Regular.ttf"
    size: 26
  }
  footer-format: "${page}/${pages}"
}`
	cfg := resolve(t, text)
	if cfg.Name != "clara" {
		t.Fatalf("profile 名称错误: %q", cfg.Name)
	}
	g := cfg.Geometry
	if g.Width != 1072 || g.Height != 1448 {
		t.Fatalf("display 未生效: %+v", g)
	}
	if g.MarginTop != 24 || g.MarginBottom != 24 || g.MarginLeft != 18 || g.MarginRight != 18 {
		t.Fatalf("2 值 margin 语义错误: %+v", g)
	}
	if g.HeaderHeight != 40 || g.FooterHeight != 30 || g.LineHeight != 36 {
		t.Fatalf("header/footer/line-height 未生效: %+v", g)
	}
	if cfg.FontSize != 26 || cfg.FontSrc != "embed:Inter/static/Inter-Regular.ttf" {
		t.Fatalf("font 子块未生效: %+v", cfg)
	}
	if cfg.FooterFormat != "${page}/${pages}" {
		t.Fatalf("footer-format 未生效: %q", cfg.FooterFormat)
	}
}

func TestMarginVariants(t *testing.T) {
	one := resolve(t, `profile p { margin 12 }`).Geometry
	if !(one.MarginTop == 12 && one.MarginRight == 12 && one.MarginBottom == 12 && one.MarginLeft == 12) {
		t.Fatalf("1 值语义错误: %+v", one)
	}
	four := resolve(t, `profile p { margin 1 2 3 4 }`).Geometry
	if !(four.MarginTop == 1 && four.MarginRight == 2 && four.MarginBottom == 3 && four.MarginLeft == 4) {
		t.Fatalf("4 值语义错误: %+v", four)
	}
}

func TestDefaultsPreserved(t *testing.T) {
	cfg := resolve(t, `profile minimal { display 540 960 }`)
	def := Default()
	if cfg.Geometry.LineHeight != def.Geometry.LineHeight {
		t.Fatalf("未覆盖的项应保留默认值: %+v", cfg.Geometry)
	}
	if cfg.FontSrc != def.FontSrc || cfg.FooterFormat != def.FooterFormat {
		t.Fatalf("字体/页脚默认值丢失: %+v", cfg)
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	cfg := resolve(t, `profile p {
  display 540 960
  refresh-mode fast
}`)
	if cfg.Geometry.Width != 540 {
		t.Fatalf("未知键不应影响其余配置: %+v", cfg.Geometry)
	}
}

func TestInvalidValuesRejected(t *testing.T) {
	cases := []string{
		`profile p { display 540 }`,
		`profile p { margin 1 2 3 }`,
		`profile p { line-height 0 }`,
		`profile p { font { size: 0 } }`,
	}
	for _, text := range cases {
		p, err := Parse(strings.NewReader(text))
		if err != nil {
			continue // 语法层拒绝同样可接受
		}
		if _, err := p.Resolve(); err == nil {
			t.Fatalf("非法配置应报错: %s", text)
		}
	}
}
