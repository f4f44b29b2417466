package main

import "github.com/Laisky/bsearch-bench/cmd"

func main() {
	cmd.Execute()
}
