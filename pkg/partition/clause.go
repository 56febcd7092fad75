package partition

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// CatchAllLine 兜底分区，永远是最后一行且不带逗号
const CatchAllLine = "    PARTITION pMax VALUES LESS THAN MAXVALUE"

// FormatLine 格式化单个月分区子句
func FormatLine(d Descriptor) string {
	return "    PARTITION p" + d.Label + " VALUES LESS THAN (" + strconv.FormatInt(d.BoundarySeconds, 10) + "),"
}

// WriteClause 逐行写出月分区及兜底分区，返回写出的月分区数
func WriteClause(w io.Writer, r Range) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for d := range r.Partitions() {
		if _, err := bw.WriteString(FormatLine(d) + "\n"); err != nil {
			return n, fmt.Errorf("写出分区 p%s 失败: %w", d.Label, err)
		}
		n++
	}
	if _, err := bw.WriteString(CatchAllLine + "\n"); err != nil {
		return n, fmt.Errorf("写出兜底分区失败: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("刷新输出失败: %w", err)
	}
	return n, nil
}
