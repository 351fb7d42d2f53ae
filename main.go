package main

import "github.com/axitpadasala108/roven-global/internal/cli"

func main() {
	cli.Execute()
}
