package partition

import "embed"

// RangeFiles 嵌入的默认范围配置
//
//go:embed ranges/*.yaml
var RangeFiles embed.FS
