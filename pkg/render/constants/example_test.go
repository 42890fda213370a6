package constants_test

import (
	"fmt"

	"github.com/matzehuels/blockrender/pkg/render/constants"
)

func ExampleParseOverrides() {
	// Booleans become 0 or 1
	o, err := constants.ParseOverrides([]byte("notch_width = 20\nadd_start_hats = true\n"), "toml")
	if err != nil {
		panic(err)
	}
	fmt.Println("Overrides:", o)

	p := constants.NewBase()
	if err := p.Apply(o); err != nil {
		panic(err)
	}
	fmt.Println("Notch width:", p.NotchWidth)
	fmt.Println("Start hats:", p.AddStartHats)
	// Output:
	// Overrides: map[add_start_hats:1 notch_width:20]
	// Notch width: 20
	// Start hats: true
}
