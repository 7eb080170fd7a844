// File: example_test.go
// Title: Text Interpolator Examples
// Description: Runnable examples for the interpx package.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial examples

package interpx_test

import (
	"fmt"

	"github.com/msto63/wire/utils/interpx"
)

func ExampleInterpolate() {
	symbols := interpx.NewSymbols()
	symbols.Set("name", "World")

	out, err := interpx.Interpolate("Hello, $name! Price: $$5", symbols)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: Hello, World! Price: $5
}

func ExampleInterpolate_cycle() {
	_, err := interpx.Interpolate("$a", interpx.MapResolver{"a": "$a"})
	fmt.Println(err)
	// Output: cyclic reference: a -> a
}

func ExampleSymbols_Assign() {
	symbols := interpx.NewSymbols()
	_ = symbols.Assign("host = localhost")
	_ = symbols.Assign("$port = 8080")
	_ = symbols.Assign("$(url) = http://$host:$port")

	fmt.Println(symbols.Get("url"))
	fmt.Println(interpx.GetAs[int](symbols, "port") + 1)
	// Output:
	// http://localhost:8080
	// 8081
}

func ExampleExtract() {
	fmt.Println(interpx.Extract("$user.name owes $$3 to $(friend)"))
	// Output: [user.name friend]
}
