package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		logrus.WithError(err).Error("commander failed")
		os.Exit(1)
	}
}
