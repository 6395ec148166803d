package profile

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/folio/layout"
)

// 该包解析设备配置文件（profile），描述目标屏幕几何、排版参数与
// 字体资源。没有 profile 时使用 540x960 的默认几何。

var (
	profileLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Colon", Pattern: `:`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	profileParser = participle.MustBuild[Profile](
		participle.Lexer(profileLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
	)
)

// Profile 是配置文件的根 AST 节点。
type Profile struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Name  string         `parser:"Newline* 'profile' @Ident"`
	Block *Block         `parser:"@@ Newline*"`
}

// Block 是花括号包围的语句列表。
type Block struct {
	Statements []*Statement `parser:"'{' Newline* ( @@ Newline* )* '}'"`
}

// Statement 是一条配置语句：键、若干值以及可选的子块（如 font）。
type Statement struct {
	Key    string   `parser:"@Ident ':'?"`
	Values []*Value `parser:"@@*"`
	Block  *Block   `parser:"( Newline* @@ )?"`
}

// Value 表示单个配置值。
type Value struct {
	Number *float64       `parser:"  @Number"`
	String *StringLiteral `parser:"| @String"`
	Ident  *string        `parser:"| @Ident"`
}

// StringLiteral 在捕获时对 Go 风格字符串做反引用。
type StringLiteral string

// Capture 实现 participle.Capture。
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("字符串捕获缺少值")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Config 是解析并落默认值后的最终配置。
type Config struct {
	Name         string
	Geometry     layout.Geometry
	FontSrc      string
	FontSize     float64
	FooterFormat string
}

// Default 返回无 profile 时的默认配置。
func Default() Config {
	return Config{
		Name:         "default",
		Geometry:     layout.DefaultGeometry(),
		FontSrc:      "embed:Inter/static/Inter-Regular.ttf",
		FontSize:     22,
		FooterFormat: "${page} / ${pages}",
	}
}

// Parse 从 io.Reader 解析 profile 文本。
func Parse(r io.Reader) (*Profile, error) {
	return profileParser.Parse("", r)
}

// ParseString 从字符串解析 profile 文本。
func ParseString(input string) (*Profile, error) {
	return profileParser.ParseString("", input)
}

// Load 读取并解析 path 指向的 profile 文件，返回落完默认值的配置。
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("无法打开 profile 文件 %s: %w", path, err)
	}
	defer file.Close()
	p, err := Parse(file)
	if err != nil {
		return Config{}, fmt.Errorf("解析 profile 失败: %w", err)
	}
	return p.Resolve()
}

// Resolve 把 AST 落成配置：从默认值出发，逐条覆盖。
func (p *Profile) Resolve() (Config, error) {
	cfg := Default()
	if p == nil {
		return cfg, nil
	}
	if p.Name != "" {
		cfg.Name = p.Name
	}
	if p.Block == nil {
		return cfg, nil
	}
	for _, st := range p.Block.Statements {
		if err := applyStatement(&cfg, st); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func applyStatement(cfg *Config, st *Statement) error {
	switch strings.ToLower(st.Key) {
	case "display":
		nums := numbers(st.Values)
		if len(nums) != 2 || nums[0] <= 0 || nums[1] <= 0 {
			return fmt.Errorf("display 需要两个正数（宽 高），得到 %d 个值", len(nums))
		}
		cfg.Geometry.Width = nums[0]
		cfg.Geometry.Height = nums[1]
	case "margin":
		nums := numbers(st.Values)
		// CSS 风格：1 值四边相同；2 值上下/左右；4 值上右下左
		switch len(nums) {
		case 1:
			cfg.Geometry.MarginTop = nums[0]
			cfg.Geometry.MarginRight = nums[0]
			cfg.Geometry.MarginBottom = nums[0]
			cfg.Geometry.MarginLeft = nums[0]
		case 2:
			cfg.Geometry.MarginTop = nums[0]
			cfg.Geometry.MarginBottom = nums[0]
			cfg.Geometry.MarginLeft = nums[1]
			cfg.Geometry.MarginRight = nums[1]
		case 4:
			cfg.Geometry.MarginTop = nums[0]
			cfg.Geometry.MarginRight = nums[1]
			cfg.Geometry.MarginBottom = nums[2]
			cfg.Geometry.MarginLeft = nums[3]
		default:
			return fmt.Errorf("margin 需要 1、2 或 4 个数值，得到 %d 个", len(nums))
		}
	case "header":
		n, err := singleNumber(st, "header")
		if err != nil {
			return err
		}
		cfg.Geometry.HeaderHeight = n
	case "footer":
		n, err := singleNumber(st, "footer")
		if err != nil {
			return err
		}
		cfg.Geometry.FooterHeight = n
	case "line-height":
		n, err := singleNumber(st, "line-height")
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("line-height 必须为正数")
		}
		cfg.Geometry.LineHeight = n
	case "footer-format":
		if s := firstString(st.Values); s != "" {
			cfg.FooterFormat = s
		}
	case "font":
		if st.Block == nil {
			return fmt.Errorf("font 语句缺少子块")
		}
		for _, sub := range st.Block.Statements {
			switch strings.ToLower(sub.Key) {
			case "src":
				if s := firstString(sub.Values); s != "" {
					cfg.FontSrc = s
				}
			case "size":
				n, err := singleNumber(sub, "font size")
				if err != nil {
					return err
				}
				if n <= 0 {
					return fmt.Errorf("字号必须为正数")
				}
				cfg.FontSize = n
			}
		}
	default:
		// 未知键忽略，保持向前兼容
	}
	return nil
}

func numbers(values []*Value) []float64 {
	var out []float64
	for _, v := range values {
		if v.Number != nil {
			out = append(out, *v.Number)
		}
	}
	return out
}

func singleNumber(st *Statement, what string) (float64, error) {
	nums := numbers(st.Values)
	if len(nums) != 1 {
		return 0, fmt.Errorf("%s 需要单个数值，得到 %d 个", what, len(nums))
	}
	return nums[0], nil
}

func firstString(values []*Value) string {
	for _, v := range values {
		if v.String != nil {
			return string(*v.String)
		}
	}
	return ""
}
