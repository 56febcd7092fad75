package partition

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

const (
	// LabelLayout 分区标签格式：月份缩写 + 四位年份，例如 Jan2022
	LabelLayout = "Jan2006"

	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// Descriptor 单个月分区描述
type Descriptor struct {
	Label           string // 分区覆盖的月份（起始月）
	BoundarySeconds int64  // 距范围起点的秒数，VALUES LESS THAN 的上界
}

// Range 分区时间范围 [Start, End)
type Range struct {
	Start time.Time
	End   time.Time
}

// InvalidRangeError 范围无效（结束早于开始，或日期格式错误）
type InvalidRangeError struct {
	Start  string
	End    string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("无效的分区范围 [%s, %s): %s", e.Start, e.End, e.Reason)
}

// DefaultRange 默认范围 2022-01-01 ~ 2024-04-01
func DefaultRange() Range {
	return Range{
		Start: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
}

// NewRange 创建范围，日期统一截断到 UTC 零点
// start == end 视为零个月的退化范围，合法，只输出兜底分区；
// 只有 end 早于 start 或日期为空时才返回 InvalidRangeError
func NewRange(start, end time.Time) (Range, error) {
	if start.IsZero() || end.IsZero() {
		return Range{}, &InvalidRangeError{
			Start:  formatDate(start),
			End:    formatDate(end),
			Reason: "日期不能为空",
		}
	}

	r := Range{Start: midnight(start), End: midnight(end)}
	if r.End.Before(r.Start) {
		return Range{}, &InvalidRangeError{
			Start:  formatDate(r.Start),
			End:    formatDate(r.End),
			Reason: "结束日期早于开始日期",
		}
	}
	return r, nil
}

// ParseRange 解析 YYYY-MM-DD 或 YYYY-MM 格式的范围
func ParseRange(start, end string) (Range, error) {
	s, err := parseDate(start)
	if err != nil {
		return Range{}, &InvalidRangeError{Start: start, End: end, Reason: err.Error()}
	}
	e, err := parseDate(end)
	if err != nil {
		return Range{}, &InvalidRangeError{Start: start, End: end, Reason: err.Error()}
	}
	return NewRange(s, e)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(monthLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("日期 %q 格式错误，应为 YYYY-MM-DD 或 YYYY-MM", s)
}

// FirstOfNextMonth 返回 t 所在月份的下一个月 1 号零点
func FirstOfNextMonth(t time.Time) time.Time {
	// time.Date 会把 13 月归一化为次年 1 月
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// Partitions 按月惰性生成分区描述
func (r Range) Partitions() iter.Seq[Descriptor] {
	return func(yield func(Descriptor) bool) {
		for cursor := r.Start; cursor.Before(r.End); {
			next := FirstOfNextMonth(cursor)
			d := Descriptor{
				Label:           cursor.Format(LabelLayout),
				BoundarySeconds: next.Unix() - r.Start.Unix(),
			}
			if !yield(d) {
				return
			}
			cursor = next
		}
	}
}

// Months 范围内的月分区数量
func (r Range) Months() int {
	n := 0
	for range r.Partitions() {
		n++
	}
	return n
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", formatDate(r.Start), formatDate(r.End))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
