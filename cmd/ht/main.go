package main

import (
	"fmt"
	"os"

	"github.com/HexmosTech/httpie-lite"
)

func main() {
	if err := httpie.Main(&httpie.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "httpie: error: %v\n", err)
		os.Exit(1)
	}
}
