package coffee

import (
	"patterns_homework/internal/logger"
)

// Barista 咖啡师，用当前选中的咖啡机为客人服务
type Barista struct {
	machine Machine
}

// NewBarista 创建咖啡师，默认使用通用咖啡机
func NewBarista() *Barista {
	return &Barista{machine: NewUniversalMachine()}
}

// ChooseMachine 选择咖啡机，传入 nil 时换回通用咖啡机
func (b *Barista) ChooseMachine(m Machine) {
	if m == nil {
		m = NewUniversalMachine()
	}
	b.machine = m
	logger.WithField("machine", m.Model()).Debug("Machine chosen")
}

// Machine 当前使用的咖啡机
func (b *Barista) Machine() Machine {
	return b.machine
}

// Service 按当前咖啡机准备咖啡豆
func (b *Barista) Service() {
	b.machine.FillUpBeans()
	logger.WithField("machine", b.machine.Model()).Debug("Beans filled up")
}

// MakeCoffee 煮咖啡
func (b *Barista) MakeCoffee() *Coffee {
	return b.machine.MakeCoffee()
}
