// cubetimer - terminal Rubik's cube timer with random-state scrambles.
package main

import (
	"github.com/SeamusWaldron/cubetimer/internal/cli"
)

func main() {
	cli.Execute()
}
