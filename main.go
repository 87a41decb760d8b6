package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/antroute/model"
	"github.com/zucenko/antroute/server"
)

func main() {
	if err := dump(os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func dump(w io.Writer) error {
	route, err := server.Parse(server.DefaultRoute)
	if err != nil {
		return err
	}
	world := model.NewWorld(route.Steps)
	_, err = fmt.Fprintf(w, "%+v\n", *world)
	return err
}
