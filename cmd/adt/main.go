package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logrus.Exit(1)
	}
}
