package main

import "tabnav/internal/cli"

func main() {
	cli.Execute()
}
