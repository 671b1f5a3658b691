/*
Command cleanlist prepares the filelists of a speech corpus.

It reads a filelist, cleans the text of every utterance with a list of named
cleaners, and writes a training and a validation filelist:

    cleanlist -in filelists/wave_info.txt -source \
              -train filelists/train.txt -val filelists/val.txt

With -source, input lines are "id|text" and audio paths are derived from
the id; otherwise input lines are "path|speaker|text".

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/npillmayer/cleaners/filelist"
	"github.com/npillmayer/cleaners/mixture"
	"github.com/npillmayer/cleaners/pipeline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	in := flag.String("in", "", "input filelist (required)")
	source := flag.Bool("source", false, "input lines are id|text")
	pathPattern := flag.String("path", filelist.DefaultSource.PathPattern, "audio path pattern for -source, %s is replaced by the id")
	speaker := flag.String("speaker", filelist.DefaultSource.Speaker, "speaker id for -source")
	names := flag.String("cleaners", mixture.CleanerName, "comma separated list of cleaners")
	trainOut := flag.String("train", "", "output training filelist (required)")
	valOut := flag.String("val", "", "output validation filelist (required)")
	limit := flag.Int("limit", 160, "use the first n utterances only, 0 for all")
	ntrain := flag.Int("ntrain", 128, "number of training utterances, taken from the front")
	nval := flag.Int("nval", 32, "number of validation utterances, taken from the back")
	segmenter := flag.String("segmenter", pipeline.SegmenterDictionary, "word segmenter: dict or uax29")
	userDicts := flag.String("dict", "", "comma separated segmenter dictionary files")
	repeats := flag.Bool("repeats", false, "spell out repeated numerals, too")
	dupSpans := flag.Bool("dupspans", false, "clean repeated identical language spans, too")
	workers := flag.Int("workers", runtime.NumCPU(), "number of parallel cleaners")
	level := flag.String("trace", "Info", "trace level: Debug, Info or Error")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: cleanlist -in FILELIST -train TRAINLIST -val VALLIST")
		fmt.Fprintln(os.Stderr, "  Cleans the texts of a speech corpus filelist and splits it.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *in == "" || *trainOut == "" || *valOut == "" {
		fmt.Fprintln(os.Stderr, "error: -in, -train and -val are required")
		flag.Usage()
		os.Exit(1)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(*level))
	//
	cfg := pipeline.Config{
		Segmenter:         *segmenter,
		UserDicts:         splitList(*userDicts),
		RepeatedNumerals:  *repeats,
		ReplaceDuplicates: *dupSpans,
	}
	src := filelist.Source{PathPattern: *pathPattern, Speaker: *speaker}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg, *in, *source, src, splitList(*names), *workers,
		*limit, *ntrain, *nval, *trainOut, *valOut); err != nil {
		gtrace.CoreTracer.Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg pipeline.Config, in string, isSource bool, src filelist.Source,
	names []string, workers, limit, ntrain, nval int, trainOut, valOut string) error {
	//
	records, err := readRecords(in, isSource, src)
	if err != nil {
		return err
	}
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	reg, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	clean, err := reg.Pipeline(names...)
	if err != nil {
		return err
	}
	cleaned, err := filelist.Clean(ctx, records, clean, workers)
	if err != nil {
		return err
	}
	train, val := filelist.Split(cleaned, limit, ntrain, nval)
	if err = writeRecords(trainOut, train); err != nil {
		return err
	}
	if err = writeRecords(valOut, val); err != nil {
		return err
	}
	gtrace.CoreTracer.Infof("wrote %d training and %d validation utterances", len(train), len(val))
	return nil
}

func readRecords(path string, isSource bool, src filelist.Source) ([]filelist.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if isSource {
		return filelist.ReadSource(f, src)
	}
	return filelist.Read(f)
}

func writeRecords(path string, records []filelist.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = filelist.Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}
