package numerals

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZingYao/chinese_number"
	"golang.org/x/text/width"
)

// HanConverter spells out numerals with simplified Chinese numerals.
// The integer part is read as a number ("123" → "一百二十三"), the fraction
// digit by digit ("3.14" → "三点一四"). Full-width digits are accepted.
type HanConverter struct{}

var hanDigits = [...]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// Convert is part of interface Converter.
func (HanConverter) Convert(numeral string) (string, error) {
	numeral = width.Narrow.String(numeral)
	intpart, fraction, hasFraction := strings.Cut(numeral, ".")
	var b strings.Builder
	if n, err := strconv.ParseInt(intpart, 10, 64); err == nil {
		b.WriteString(chinese_number.Number2Simplified(n))
	} else if d, err := readDigits(intpart); err == nil {
		tracer().Debugf("numeral %q too large, reading it digit by digit", intpart)
		b.WriteString(d)
	} else {
		return "", err
	}
	if hasFraction {
		d, err := readDigits(fraction)
		if err != nil {
			return "", err
		}
		b.WriteString("点")
		b.WriteString(d)
	}
	return b.String(), nil
}

func readDigits(s string) (string, error) {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("cannot read digit %#U", r)
		}
		b.WriteString(hanDigits[r-'0'])
	}
	return b.String(), nil
}
