// Package main is the entrypoint for the wily CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/wily/cmd"
	"github.com/huangsam/wily/internal/histcache"
)

func main() {
	err := cmd.Execute()
	histcache.CloseStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
