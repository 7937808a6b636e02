package report

import (
	"fmt"
	"io"

	"patterns_homework/internal/coffee"
	"patterns_homework/internal/perfume"
)

// Writer 按顺序编号输出报告行
type Writer struct {
	out   io.Writer
	index int
	err   error
}

// NewWriter 创建报告输出
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Section 开始新的段落，编号从 1 重新开始
func (w *Writer) Section() {
	w.index = 0
}

// Perfume 输出一瓶香水
func (w *Writer) Perfume(p perfume.Perfume) {
	w.printf("- Bottle %s of %s is produced in %s\n", p.Volume, p.Name, p.Origin)
}

// Coffee 输出一杯咖啡
func (w *Writer) Coffee(c *coffee.Coffee) {
	w.printf("-Your coffee cooked from the best sorts of %s\n", c.Sort)
}

func (w *Writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	w.index++
	_, w.err = fmt.Fprintf(w.out, "%d"+format, append([]interface{}{w.index}, args...)...)
}

// Err 返回第一次写入失败的错误
func (w *Writer) Err() error {
	return w.err
}
