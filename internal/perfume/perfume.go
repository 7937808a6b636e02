package perfume

// Perfume 一瓶香水
type Perfume struct {
	Name   string `json:"name"`
	Volume string `json:"volume"`
	Origin string `json:"origin"`
}

// Kind 香水品类
type Kind int

const (
	KindChanel Kind = iota
	KindGivenchy
)

func (k Kind) String() string {
	switch k {
	case KindChanel:
		return "chanel"
	case KindGivenchy:
		return "givenchy"
	default:
		return "unknown"
	}
}

// Kinds 所有品类，按生产顺序排列
var Kinds = []Kind{KindChanel, KindGivenchy}

// Family 生产线类型：正品或仿品
type Family int

const (
	Authentic Family = iota
	Counterfeit
)

func (f Family) String() string {
	if f == Counterfeit {
		return "counterfeit"
	}
	return "authentic"
}

// 正品
var (
	authenticChanel = Perfume{
		Name:   "CHANEL № 5",
		Volume: "50 ml",
		Origin: "France",
	}
	authenticGivenchy = Perfume{
		Name:   "GIVENCHY IRRESISTIBLE",
		Volume: "50 ml",
		Origin: "France",
	}
)

// 仿品
var (
	counterfeitChanel = Perfume{
		Name:   "CHANEL",
		Volume: "25 ml",
		Origin: "China",
	}
	counterfeitGivenchy = Perfume{
		Name:   "GIVENCHY",
		Volume: "25 ml",
		Origin: "China",
	}
)
