package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/profile"
	"github.com/ByLCY/folio/reader"
	"github.com/ByLCY/folio/renderer"
	canvasrenderer "github.com/ByLCY/folio/renderer/canvas"
)

func main() {
	book := flag.String("book", "", "书籍文本文件路径")
	profilePath := flag.String("profile", "", "设备 profile 文件路径（缺省使用 540x960 默认几何）")
	page := flag.Int("page", -1, "要渲染的页号（从 0 起，-1 表示从进度文件恢复）")
	statePath := flag.String("state", "", "阅读进度文件路径（4 字节小端页号）")
	output := flag.String("out", "output/page.png", "PNG 输出路径")
	debugPath := flag.String("debug", "", "页表调试 JSON 输出路径")
	flag.Parse()

	if *book == "" {
		log.Fatalf("缺少 -book 参数")
	}
	if err := run(*book, *profilePath, *statePath, *output, *debugPath, *page); err != nil {
		log.Fatalf("渲染页面失败: %v", err)
	}
}

// run 串联配置解析、文档载入、分页、导航与渲染。
func run(bookPath, profilePath, statePath, outputPath, debugPath string, page int) error {
	cfg := profile.Default()
	baseDir := filepath.Dir(bookPath)
	if profilePath != "" {
		var err error
		cfg, err = profile.Load(profilePath)
		if err != nil {
			return err
		}
		baseDir = filepath.Dir(profilePath)
	}

	r, err := canvasrenderer.NewRenderer(baseDir, cfg)
	if err != nil {
		return fmt.Errorf("初始化渲染器失败: %w", err)
	}

	doc, err := reader.LoadDocument(bookPath)
	if err != nil {
		return err
	}

	session, err := reader.NewSession(doc, cfg.Geometry, r, 0)
	if err != nil {
		if !errors.Is(err, layout.ErrTooManyPages) {
			return err
		}
		// 截断的页表依然可读，书会显得比实际短；上报但不中止
		log.Printf("警告: %v", err)
	}
	session.Title = bookTitle(bookPath)

	if page < 0 && statePath != "" {
		page = reader.LoadIndex(statePath)
	}
	if page < 0 {
		page = 0
	}
	session.GoTo(page)
	log.Printf("《%s》共 %d 页，当前第 %d 页", session.Title, session.PageCount(), session.CurrentPage()+1)

	if debugPath != "" {
		if err := writeDebug(session, debugPath); err != nil {
			return err
		}
	}

	if err := renderTo(r, session, outputPath); err != nil {
		return err
	}

	if statePath != "" {
		if err := reader.SaveIndex(statePath, session.CurrentPage()); err != nil {
			// 进度写入失败不致命，但必须让人看见，否则会静默丢失阅读位置
			log.Printf("警告: %v", err)
		}
	}
	fmt.Printf("已生成页面：%s\n", outputPath)
	return nil
}

func renderTo(r renderer.Renderer, session *reader.Session, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	data, err := r.RenderPage(session)
	if err != nil {
		return fmt.Errorf("渲染 PNG 失败: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("写入 PNG 文件失败: %w", err)
	}
	return nil
}

func writeDebug(session *reader.Session, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(session.Table(), session.Geometry(), debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

// bookTitle 从文件名推导书名（去掉扩展名）。
func bookTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
