package main

import (
	"flag"

	"github.com/rapidmidiex/pianotui"
)

var (
	serverVar   string
	nameVar     string
	fromVar     string
	toVar       string
	keyWidthVar float64
	flatsVar    bool
	hideVar     bool
)

func init() {
	flag.StringVar(&serverVar, "server", "", "Jam server host; empty plays offline")
	flag.StringVar(&nameVar, "name", "", "Display name for jam sessions")
	flag.StringVar(&fromVar, "from", "", `Low range endpoint, ex: "C2"; with -to, skips the preset picker`)
	flag.StringVar(&toVar, "to", "", `High range endpoint, ex: "F#5"`)
	flag.Float64Var(&keyWidthVar, "keywidth", 0, "Per-key width in cells; 0 fits the range to the terminal")
	flag.BoolVar(&flatsVar, "flats", false, "Spell accidentals as flats")
	flag.BoolVar(&hideVar, "hidenames", false, "Hide note names on the keys")

	flag.Parse()
}

func main() {
	pianotui.Run(pianotui.Config{
		ServerHostURL: serverVar,
		UserName:      nameVar,
		From:          fromVar,
		To:            toVar,
		KeyWidth:      keyWidthVar,
		Flats:         flatsVar,
		HideNames:     hideVar,
	})
}
