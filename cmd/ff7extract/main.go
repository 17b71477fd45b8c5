package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "ff7extract",
		Usage: "Decode Final Fantasy VII textures, world maps and battle scenes",
	}

	app.Commands = []*cli.Command{
		&cmdLZS,
		&cmdTEX,
		&cmdWorldmap,
		&cmdTXZ,
		&cmdScene,
		&cmdBatch,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
