package span

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/cleaners"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

func TestScanFindsSpans(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := "[ZH]你好[ZH][JA]こんにちは[JA]"
	spans, err := Scan(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, have %v", spans)
	}
	zh, ja := spans[0], spans[1]
	if zh.Marker.Tag != language.Chinese || zh.Payload != "你好" || zh.Tagged != "[ZH]你好[ZH]" {
		t.Errorf("unexpected Chinese span %v", zh)
	}
	if ja.Marker.Tag != language.Japanese || ja.Payload != "こんにちは" {
		t.Errorf("unexpected Japanese span %v", ja)
	}
	if zh.Start != 0 || zh.End != ja.Start || ja.End != len(input) {
		t.Errorf("expected spans to cover the input, have %v", spans)
	}
	for _, s := range spans {
		if input[s.Start:s.End] != s.Tagged {
			t.Errorf("expected positions of %v to select %q", s, s.Tagged)
		}
	}
}

func TestScanWithoutMarkers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, input := range []string{"", "你好", "[ZX]not a marker[JAPAN]", "[[Z]H]"} {
		spans, err := Scan(input)
		if err != nil || len(spans) != 0 {
			t.Errorf("expected no spans in %q, have %v, %v", input, spans, err)
		}
		if pos := defaultScanner.markerPositions(input); len(pos) != 0 {
			t.Errorf("expected no markers in %q, have %v", input, pos)
		}
	}
}

func TestScanRepeatedAndEmptySpans(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	spans, err := Scan("[ZH]a[ZH] [ZH]a[ZH][JA][JA][[ZH]b[ZH]")
	if err != nil {
		t.Fatal(err)
	}
	if len(spans) != 4 {
		t.Fatalf("expected 4 spans, have %v", spans)
	}
	if spans[0].Tagged != spans[1].Tagged || spans[0].Start == spans[1].Start {
		t.Errorf("expected identical spans at different positions, have %v and %v", spans[0], spans[1])
	}
	if spans[2].Payload != "" || spans[2].Marker != Japanese {
		t.Errorf("expected empty Japanese span, have %v", spans[2])
	}
	if spans[3].Payload != "b" {
		t.Errorf("expected payload 'b' after stray bracket, have %v", spans[3])
	}
}

func TestMalformedMarkers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, input := range []string{
		"[ZH]你好",
		"你好[ZH]",
		"[ZH]你[JA]好[ZH][JA]",
		"[ZH]a[ZH][JA]b",
	} {
		_, err := Scan(input)
		var mie *cleaners.MalformedInputError
		if !errors.As(err, &mie) {
			t.Errorf("expected %q to be malformed, have %v", input, err)
		} else if mie.Stage != StageName {
			t.Errorf("expected error from %s, is from %s", StageName, mie.Stage)
		}
	}
}

func TestCustomMarkers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	ko := Marker{Literal: "<ko>", Tag: language.Korean}
	sc := NewScanner(ko, Chinese)
	spans, err := sc.Scan("<ko>안녕<ko>[ZH]你好[ZH][JA]")
	if err != nil || len(spans) != 2 || spans[0].Marker.Tag != language.Korean {
		t.Errorf("expected a Korean and a Chinese span, [JA] ignored, have %v, %v", spans, err)
	}
}

func ExampleScan() {
	spans, _ := Scan("[JA]はい[JA][ZH]是[ZH]")
	for _, s := range spans {
		fmt.Println(s.Marker.Tag, s.Payload)
	}
	// Output:
	// ja はい
	// zh 是
}
