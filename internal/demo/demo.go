package demo

import (
	"io"

	"patterns_homework/internal/coffee"
	"patterns_homework/internal/logger"
	"patterns_homework/internal/perfume"
	"patterns_homework/internal/report"

	"github.com/sirupsen/logrus"
)

// Run 依次运行香水工厂和咖啡师两个场景
func Run(out io.Writer) error {
	if err := RunPerfumes(out, true, false); err != nil {
		return err
	}
	return RunCoffee(out, coffee.NewMieleMachine(), coffee.NewNespressoMachine())
}

// RunPerfumes 对每个标志选择一次工厂，并输出该工厂生产的全部品类
func RunPerfumes(out io.Writer, counterfeitFlags ...bool) error {
	w := report.NewWriter(out)

	for _, counterfeit := range counterfeitFlags {
		producer := perfume.SelectProducer(counterfeit)
		for _, kind := range perfume.Kinds {
			p := perfume.Produce(producer, kind)
			logger.WithFields(logrus.Fields{
				"family": producer.Family().String(),
				"kind":   kind.String(),
			}).Debug("Perfume produced")
			w.Perfume(p)
		}
	}

	return w.Err()
}

// RunCoffee 咖啡师依次使用每台咖啡机为客人煮一杯咖啡
func RunCoffee(out io.Writer, machines ...coffee.Machine) error {
	w := report.NewWriter(out)
	barista := coffee.NewBarista()

	for _, m := range machines {
		barista.ChooseMachine(m)
		barista.Service()
		w.Coffee(barista.MakeCoffee())
	}

	return w.Err()
}
