// Copyright 2026 The EdgeTX Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// build-font-bitmap renders a TrueType or OpenType font into the glyph
// strip used by the radio firmware:
//
//	build-font-bitmap --font Roboto --size 16 --subset fr --output font_16
//
// writes font_16.png and font_16.specs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/raphaelcoeffic/edgetx/internal/charset"
	"github.com/raphaelcoeffic/edgetx/internal/fontbitmap"
	"github.com/raphaelcoeffic/edgetx/internal/proof"
)

var (
	outputFlag  = flag.String("output", "", "output file name, without extension")
	subsetFlag  = flag.String("subset", "", "character subset: "+strings.Join(charset.Subsets(), ", "))
	sizeFlag    = flag.Int("size", 0, "font size in pixels")
	fontFlag    = flag.String("font", "", "font name, without extension")
	fontsFlag   = flag.String("fonts", defaultFontsDir(), "directory holding the fonts and extra_<size>px.png bitmaps")
	charsFlag   = flag.String("chars", "", "UTF-8 file with additional characters, one glyph per character")
	strictFlag  = flag.Bool("strict", false, "fail if the subset has extra chars but there is no extra bitmap")
	proofFlag   = flag.String("proof", "", "also write a PDF proof sheet to this file")
	noSpecsFlag = flag.Bool("no-specs", false, "do not write the .specs coordinate file")
	verboseFlag = flag.Bool("v", false, "debug logging")
)

// defaultFontsDir is radio/src/fonts relative to the tools directory the
// binary is installed in.
func defaultFontsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("..", "radio", "src", "fonts")
	}
	if p, err := filepath.EvalSymlinks(exe); err == nil {
		exe = p
	}
	return filepath.Join(filepath.Dir(exe), "..", "radio", "src", "fonts")
}

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	if *outputFlag == "" || *subsetFlag == "" || *sizeFlag == 0 || *fontFlag == "" {
		fmt.Fprintln(os.Stderr, "--output, --subset, --size and --font are required")
		flag.Usage()
		os.Exit(2)
	}

	var chars []rune
	if *charsFlag != "" {
		var err error
		chars, err = charset.ReadCharsFile(*charsFlag)
		if err != nil {
			log.Fatal(err)
		}
	}

	b, err := fontbitmap.New(fontbitmap.Options{
		Subset:   *subsetFlag,
		Chars:    chars,
		Size:     *sizeFlag,
		Font:     *fontFlag,
		FontsDir: *fontsFlag,
		Strict:   *strictFlag,
		Logger:   log.StandardLogger(),
	})
	if err != nil {
		log.Fatal(err)
	}
	s, err := b.Generate(*outputFlag, !*noSpecsFlag)
	if err != nil {
		log.Fatal(err)
	}

	if *proofFlag != "" {
		err := proof.Write(*proofFlag, s, proof.Options{Title: filepath.Base(*outputFlag)})
		if err != nil {
			log.Fatal(err)
		}
	}
}
