package main

import "github.com/OpenTraceLab/circe/cmd/circe/cmd"

func main() {
	cmd.Execute()
}
