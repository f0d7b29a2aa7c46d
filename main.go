package main

import "github.com/bvrgo/buyrent-calculator/cmd"

func main() {
	cmd.Execute()
}
