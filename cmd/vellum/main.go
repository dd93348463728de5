package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/marcboeker/go-duckdb"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"

	"vellum"
	"vellum/store/duck"
	"vellum/util"
)

const (
	layoutFile = "vocab.yaml"
	logFile    = "vellum.log"
)

func main() {

	var dataFile string
	flag.StringVar(&dataFile, "data", "", "document metadata file (json lines or csv)")
	flag.Parse()

	ctx := context.Background()

	// log to a file, the terminal belongs to the tui
	file := util.OpenLog(logFile, 0644)
	defer util.CloseLog(file)
	lgr := &sabot.Sabot{Writer: file, MaxLen: 999}

	layout, err := vellum.LoadLayout(layoutFile)
	if err != nil {
		fail(err)
	}

	err = util.SampleConfig(layout, layoutFile, 0644)
	if err != nil {
		fail(err)
	}

	if dataFile == "" {
		dataFile = layout.Data
	}
	if dataFile == "" {
		fail(fmt.Errorf("no data file; pass -data or set data in %s", layoutFile))
	}

	dk, err := duck.New(lgr)
	if err != nil {
		fail(err)
	}
	defer dk.Close()

	err = dk.Load(dataFile)
	if err != nil {
		fail(err)
	}

	lgr.Info(ctx, "starting vellum", "data", dataFile)

	model, err := vellum.NewModel(ctx, dk, layout, lgr)
	if err != nil {
		fail(err)
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
