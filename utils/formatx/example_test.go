// File: example_test.go
// Title: Formatter Examples
// Description: Runnable examples for the formatx package.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial examples

package formatx_test

import (
	"fmt"

	"github.com/msto63/wire/utils/formatx"
)

func ExampleFormat() {
	fmt.Println(formatx.Format("\x01 says hi to \x02", "Alice", "Bob"))
	// Output: Alice says hi to Bob
}

func ExampleTemplate_Apply() {
	greeting := formatx.Template("\x01, meet \x02").Apply("Alice")
	fmt.Println(greeting.Apply("unused", "Bob"))
	// Output: Alice, meet Bob
}

func ExampleJoin() {
	fmt.Println(formatx.Join([]string{"x", "y", "z"}, "[\x01]", "", ""))
	// Output: [x][y][z]
}

func ExampleJoinPairs() {
	fmt.Print(formatx.JoinPairs(map[string]int{"b": 2, "a": 1}, "\x01=\x02\n", "", ""))
	// Output:
	// a=1
	// b=2
}

func ExampleLabeled() {
	user, port := "msto63", 8080
	fmt.Print(formatx.Labeled("\x01=\x02\n", "user, cfg.port", user, port))
	// Output:
	// user=msto63
	// port=8080
}
