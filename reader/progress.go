package reader

import (
	"encoding/binary"
	"fmt"
	"os"
)

// 阅读进度以 4 字节小端无符号整数存放在独立文件中。
// 文件缺失、过短或损坏一律按"从第 0 页开始"处理，绝不作为
// 错误上抛；写入失败则必须上报（静默丢失阅读位置是旧实现的缺陷）。

const indexSize = 4

// SaveIndex 把当前页号写入 path。
func SaveIndex(path string, page int) error {
	if page < 0 {
		page = 0
	}
	var buf [indexSize]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(page))
	if err := os.WriteFile(path, buf[:], 0o644); err != nil {
		return fmt.Errorf("写入阅读进度 %s 失败: %w", path, err)
	}
	return nil
}

// LoadIndex 从 path 读取页号；任何读取异常都回退为 0。
// 返回值未经页表收拢，调用方需自行 Clamp。
func LoadIndex(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		// 文件缺失与读失败同样回退，首页总是安全的
		return 0
	}
	if len(data) < indexSize {
		return 0
	}
	return int(binary.LittleEndian.Uint32(data[:indexSize]))
}
