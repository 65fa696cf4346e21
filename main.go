package main

import "github.com/mouse-blink/exportall/cmd"

func main() {
	cmd.Execute()
}
