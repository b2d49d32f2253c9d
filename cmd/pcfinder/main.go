//go:build !wasm

package main

import (
	"flag"
	"fmt"

	"github.com/fumen-tools/pcbridge/internal/boundary"
)

func main() {
	field := flag.String("field", "", "Field encoding: height*10 characters, X/x = filled, top row first")
	pieces := flag.String("pieces", "", "Piece queue, characters from IOTSZLJ (case-insensitive)")
	height := flag.Int("height", 4, "Target stack height")
	checkOnly := flag.Bool("check", false, "Only report whether a perfect clear exists")
	flag.Parse()

	if *checkOnly {
		fmt.Println(bridge.CheckPossible([]byte(*field), []byte(*pieces), *height))
		return
	}

	payload := bridge.FindPath([]byte(*field), []byte(*pieces), *height)
	fmt.Println(string(payload[:boundary.ResultLength(payload)]))
}
