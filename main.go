package main

import (
	"fmt"
	"os"

	"pom/presentation/demo"
)

func main() {
	if err := demo.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
