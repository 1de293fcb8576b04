package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"denance.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateCodeFn = crypto.GenerateActivationCode
	fatalfFn       = log.Fatalf
)

func resolveCount(args []string) int {
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

func main() {
	count := resolveCount(os.Args[1:])

	for i := 0; i < count; i++ {
		code, err := generateCodeFn()
		if err != nil {
			fatalfFn("Failed to generate activation code: %v", err)
		}
		printfFn("%s\n", code)
	}
}
