package symbol_test

import (
	"fmt"

	"github.com/liuhe-dev/wuxing/symbol"
)

// ExampleParseChart parses a 4-pillar chart from its 2-rune codes and
// inspects the month pillar, which drives seasonal strength.
func ExampleParseChart() {
	chart, err := symbol.ParseChart([]string{"甲子", "丙寅", "庚辰", "壬午"})
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	fmt.Println(chart)
	fmt.Println("pillars:", chart.Len())
	fmt.Println("month branch:", chart.Month().Branch)
	fmt.Println("month element:", chart.Month().Branch.Element())

	// Output:
	// 甲子 丙寅 庚辰 壬午
	// pillars: 4
	// month branch: 寅
	// month element: Wood
}
