package layout

import (
	"encoding/json"
	"os"
)

// debugDump 是页表调试输出的 JSON 结构。
type debugDump struct {
	Geometry Geometry  `json:"geometry"`
	Pages    PageTable `json:"pages"`
}

// WriteDebugJSON 将页表与几何参数输出为 JSON，便于调试或可视化。
func WriteDebugJSON(table PageTable, geo Geometry, path string) error {
	data, err := json.MarshalIndent(debugDump{Geometry: geo, Pages: table}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
