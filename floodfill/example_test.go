package floodfill_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/floodfill"
	"github.com/katalvlaran/gridpath/grid"
)

// Example prices a garden plot layout both ways: by fence perimeter and by
// side count.
func Example() {
	rows := [][]rune{
		[]rune("AAAA"),
		[]rune("BBCD"),
		[]rune("BBCC"),
		[]rune("EEEC"),
	}
	g, err := grid.New(rows)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := floodfill.Fill(g)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("regions:", len(res.Regions))
	fmt.Println("perimeter price:", res.PerimeterPrice())
	fmt.Println("side price:", res.SidePrice())

	// Output:
	// regions: 5
	// perimeter price: 140
	// side price: 80
}
