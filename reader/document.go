package reader

import (
	"fmt"
	"os"
)

// LoadDocument 一次性读入整本书的字节流，并在定稿长度前
// 去除末尾空白（空格、制表、回车、换行）。载入后的缓冲在
// 本次阅读会话内不可变。
func LoadDocument(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取书籍文件 %s: %w", path, err)
	}
	return TrimTrailingWhitespace(data), nil
}

// TrimTrailingWhitespace 去除缓冲末尾的空白字节并返回截短后的切片。
func TrimTrailingWhitespace(buf []byte) []byte {
	end := len(buf)
	for end > 0 {
		switch buf[end-1] {
		case ' ', '\t', '\r', '\n':
			end--
		default:
			return buf[:end]
		}
	}
	return buf[:0]
}
