package partition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRangePath 嵌入文件系统中默认范围配置的路径
const DefaultRangePath = "ranges/default.yaml"

// RangeFile 范围配置文件
type RangeFile struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// LoadRangeFile 从磁盘加载范围配置
func LoadRangeFile(path string) (*RangeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	return parseRangeFile(data, path)
}

// LoadRangeFileFS 从文件系统（通常是嵌入 FS）加载范围配置
func LoadRangeFileFS(fsys fs.FS, path string) (*RangeFile, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	return parseRangeFile(data, path)
}

// DefaultRangeFile 加载嵌入的默认范围配置
func DefaultRangeFile() (*RangeFile, error) {
	return LoadRangeFileFS(RangeFiles, DefaultRangePath)
}

func parseRangeFile(data []byte, path string) (*RangeFile, error) {
	rf := &RangeFile{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(rf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}
	return rf, nil
}

// Range 转换为分区范围
func (f *RangeFile) Range() (Range, error) {
	if f.Start == "" || f.End == "" {
		return Range{}, &InvalidRangeError{Start: f.Start, End: f.End, Reason: "配置缺少 start 或 end"}
	}
	return ParseRange(f.Start, f.End)
}
