package renderer

import "github.com/ByLCY/folio/reader"

// Renderer 将会话的当前页输出为目标屏幕的位图数据（例如 PNG 字节）。
type Renderer interface {
	RenderPage(s *reader.Session) ([]byte, error)
}
