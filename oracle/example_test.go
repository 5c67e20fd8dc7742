package oracle_test

import (
	"fmt"

	"github.com/liuhe-dev/wuxing/oracle"
	"github.com/liuhe-dev/wuxing/symbol"
)

// ExampleEvaluate runs the full pipeline on a 4-pillar chart and prints
// the headline outcome: the dominant element of the settled field and
// the day master's stability mode.
func ExampleEvaluate() {
	chart := symbol.MustParseChart([]string{"甲子", "丙寅", "庚辰", "壬午"})

	reading, err := oracle.Evaluate(chart, symbol.StemGeng)
	if err != nil {
		fmt.Println("evaluate:", err)
		return
	}

	fmt.Println("dominant:", reading.Field.Dominant())
	fmt.Println("mode:", reading.Profile.Mode)
	for _, rec := range reading.Interactions() {
		fmt.Println("interaction:", rec.Kind)
	}
}
