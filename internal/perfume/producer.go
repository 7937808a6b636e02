package perfume

// Producer 香水工厂，同一工厂生产的各品类属于同一系列
type Producer interface {
	ProduceChanel() Perfume
	ProduceGivenchy() Perfume
	Family() Family
}

// AuthenticProducer 正品工厂
type AuthenticProducer struct{}

func (AuthenticProducer) ProduceChanel() Perfume {
	return authenticChanel
}

func (AuthenticProducer) ProduceGivenchy() Perfume {
	return authenticGivenchy
}

func (AuthenticProducer) Family() Family {
	return Authentic
}

// CounterfeitProducer 仿品工厂
type CounterfeitProducer struct{}

func (CounterfeitProducer) ProduceChanel() Perfume {
	return counterfeitChanel
}

func (CounterfeitProducer) ProduceGivenchy() Perfume {
	return counterfeitGivenchy
}

func (CounterfeitProducer) Family() Family {
	return Counterfeit
}

// SelectProducer 根据是否仿制选择工厂
func SelectProducer(counterfeit bool) Producer {
	if counterfeit {
		return CounterfeitProducer{}
	}
	return AuthenticProducer{}
}

// Produce 按品类生产一瓶香水
func Produce(p Producer, k Kind) Perfume {
	if k == KindGivenchy {
		return p.ProduceGivenchy()
	}
	return p.ProduceChanel()
}
