package coffee

// Coffee 一杯咖啡
type Coffee struct {
	Sort string `json:"sort"`
}

// 机器型号
const (
	ModelUniversal = "universal"
	ModelMiele     = "miele"
	ModelNespresso = "nespresso"
)

// Machine 咖啡机。只有本包内的型号可以实现该接口
type Machine interface {
	// FillUpBeans 装入该型号对应的咖啡豆
	FillUpBeans()
	// MakeCoffee 返回机器持有的那杯咖啡，多次调用返回同一对象
	MakeCoffee() *Coffee
	Model() string

	sealed()
}

// base 所有型号共享的部分
type base struct {
	coffee *Coffee
}

func newBase() base {
	return base{coffee: &Coffee{}}
}

func (b *base) MakeCoffee() *Coffee {
	return b.coffee
}

func (b *base) sealed() {}

// UniversalMachine 通用咖啡机，不装豆子
type UniversalMachine struct {
	base
}

// NewUniversalMachine 创建通用咖啡机
func NewUniversalMachine() *UniversalMachine {
	return &UniversalMachine{base: newBase()}
}

func (m *UniversalMachine) FillUpBeans() {}

func (m *UniversalMachine) Model() string {
	return ModelUniversal
}

// MieleMachine 使用阿拉比卡豆
type MieleMachine struct {
	base
}

// NewMieleMachine 创建 Miele 咖啡机
func NewMieleMachine() *MieleMachine {
	return &MieleMachine{base: newBase()}
}

func (m *MieleMachine) FillUpBeans() {
	m.coffee.Sort = "Arabica"
}

func (m *MieleMachine) Model() string {
	return ModelMiele
}

// NespressoMachine 使用利比里卡豆
type NespressoMachine struct {
	base
}

// NewNespressoMachine 创建 Nespresso 咖啡机
func NewNespressoMachine() *NespressoMachine {
	return &NespressoMachine{base: newBase()}
}

func (m *NespressoMachine) FillUpBeans() {
	m.coffee.Sort = "Liberica"
}

func (m *NespressoMachine) Model() string {
	return ModelNespresso
}
