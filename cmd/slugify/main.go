package main

import "github.com/anishsharma21/cassius-frontend-sub001/internal/cli"

func main() {
	cli.Execute()
}
