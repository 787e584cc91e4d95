package main

import (
	log "github.com/sirupsen/logrus"

	"fcfs-simulator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalln(err)
	}
}
