package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/folio/binding"
	"github.com/ByLCY/folio/fonts"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/profile"
	"github.com/ByLCY/folio/reader"
	"github.com/ByLCY/folio/renderer"
)

// Renderer 基于 github.com/tdewolff/canvas 实现宽度测量与整页栅格渲染。
// 它同时充当 layout.Measurer 与 renderer.Renderer：分页与渲染共用同一个
// 字体面，保证两条路径的宽度测量逐字节一致。
type Renderer struct {
	baseDir string
	cfg     profile.Config

	fontMu sync.Mutex
	face   *canvas.FontFace
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// canvas 的字号以 pt 计，画布坐标这里按 1 单位 = 1 像素使用，
// 栅格化时用 DPMM(1) 还原为 1:1 像素。
const pxToPt = 72.0 / 25.4

// NewRenderer 创建渲染器并按 profile 配置加载字体；
// 指定字体不可用时回退到内置 Inter。
func NewRenderer(baseDir string, cfg profile.Config) (*Renderer, error) {
	r := &Renderer{baseDir: baseDir, cfg: cfg}
	if err := r.ensureFace(); err != nil {
		return nil, err
	}
	return r, nil
}

// Width 实现 layout.Measurer：返回文本按当前字体绘制的像素宽度。
func (r *Renderer) Width(text string) float64 {
	return r.face.TextWidth(text)
}

// LineHeight 返回字体度量给出的建议行高（像素），可用于覆盖
// Geometry.LineHeight 的配置默认值。
func (r *Renderer) LineHeight() float64 {
	return r.face.Metrics().LineHeight
}

// RenderPage 实现 renderer.Renderer：渲染会话当前页为 PNG 字节。
// 正文由布局引擎以渲染模式写入，页眉画书名，页脚画插值后的页码行。
func (r *Renderer) RenderPage(s *reader.Session) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("渲染会话为空")
	}
	geo := s.Geometry()
	c := canvas.New(geo.Width, geo.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0, 0, canvas.Rectangle(geo.Width, geo.Height))

	ascent := r.face.Metrics().Ascent
	if s.Title != "" && geo.HeaderHeight > 0 {
		title := canvas.NewTextLine(r.face, s.Title, canvas.Center)
		ctx.DrawText(geo.Width/2, geo.MarginTop+ascent, title)
	}

	if err := s.Render(&contextSurface{ctx: ctx, face: r.face, ascent: ascent}); err != nil {
		return nil, err
	}

	if geo.FooterHeight > 0 {
		footer := binding.Interpolate(r.cfg.FooterFormat, map[string]any{
			"page":  s.CurrentPage() + 1,
			"pages": s.PageCount(),
			"title": s.Title,
		})
		line := canvas.NewTextLine(r.face, footer, canvas.Center)
		ctx.DrawText(geo.Width/2, geo.Height-geo.FooterHeight+ascent, line)
	}

	img := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// contextSurface 把布局引擎的绘制调用转发到 canvas 上下文。
type contextSurface struct {
	ctx    *canvas.Context
	face   *canvas.FontFace
	ascent float64
}

// MoveTo 无需显式操作：DrawAt 自带目标坐标。
func (s *contextSurface) MoveTo(x, y float64) {}

func (s *contextSurface) DrawAt(x, y float64, text string) {
	// 布局给出行顶坐标，基线 = 行顶 + 字体上升部
	s.ctx.DrawText(x, y+s.ascent, canvas.NewTextLine(s.face, text, canvas.Left))
}

func (r *Renderer) ensureFace() error {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if r.face != nil {
		return nil
	}

	data, err := r.loadFontBytes(r.cfg.FontSrc)
	if err != nil {
		// 指定字体不可用时回退到内置 Inter
		data, err = fonts.Load("Inter/static/Inter-Regular.ttf")
		if err != nil {
			return err
		}
	}
	family := canvas.NewFontFamily("folio-body")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return fmt.Errorf("加载字体失败: %w", err)
	}
	size := r.cfg.FontSize
	if size <= 0 {
		size = profile.Default().FontSize
	}
	r.face = family.Face(size*pxToPt, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	return nil
}

func (r *Renderer) loadFontBytes(src string) ([]byte, error) {
	if src == "" {
		return nil, fmt.Errorf("profile 缺少字体 src")
	}
	if strings.HasPrefix(src, "embed:") {
		return fonts.Load(strings.TrimPrefix(src, "embed:"))
	}
	path := src
	if r.baseDir == "" && !filepath.IsAbs(path) {
		return nil, fmt.Errorf("未指定资源目录时不允许直接使用字体路径：%s（请改用 embed:）", src)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, path)
	}
	return os.ReadFile(path)
}
