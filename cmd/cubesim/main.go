// Command cubesim is a 3x3x3 cube simulator.
package main

import "github.com/SeamusWaldron/gocube_lattice/internal/cli"

func main() {
	cli.Execute()
}
