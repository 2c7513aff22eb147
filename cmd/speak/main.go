package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	speak "github.com/ieee0824/speak-go"
	"github.com/ieee0824/speak-go/audio"
)

func main() {
	voicePath := flag.String("voice", "", "path to voice definition (YAML)")
	dictPaths := flag.String("dict", "", "comma-separated compiled dictionary paths")
	text := flag.String("text", "", "text to speak")
	inPath := flag.String("in", "", "read text from file instead of -text")
	outPath := flag.String("out", "out.wav", "output WAV path")
	phonemes := flag.Bool("phonemes", false, "print the phoneme string instead of writing audio")
	rate := flag.Float64("rate", 0, "speaking rate multiplier (0 = voice default)")
	pitch := flag.Float64("pitch", 0, "pitch baseline in Hz (0 = voice default)")
	verbose := flag.Bool("v", false, "verbose output")

	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	input := *text
	if *inPath != "" {
		data, err := os.ReadFile(*inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		input = string(data)
	}
	if strings.TrimSpace(input) == "" {
		fmt.Fprintln(os.Stderr, "Usage: speak -text TEXT [-voice VOICE] [-dict DICT,...] [-out FILE.wav]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var dicts []string
	if *dictPaths != "" {
		dicts = strings.Split(*dictPaths, ",")
	}

	eng, err := speak.NewFromFiles(*voicePath, dicts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := speak.Config{Rate: *rate, PitchBase: *pitch}
	ctx := context.Background()

	if *phonemes {
		list, err := eng.Phonemes(ctx, input, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(list.String())
		return
	}

	res, err := eng.SynthesizeWithConfig(ctx, input, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := audio.WriteWAVFile(*outPath, res.Samples, res.SampleRate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "%d phonemes, %d samples (%.1f ms) -> %s\n",
			len(res.List), len(res.Samples), res.List.TotalDuration(), *outPath)
	}
}
