/*
Package cleaners is about preparing bilingual Mandarin/Japanese text as
training targets for speech synthesis.

Description

Text to be spoken by a TTS voice rarely arrives in a form a model can learn
from directly. Numerals have to be spelled out, Han characters have to be
turned into phonetic symbols, Latin letters embedded in Chinese sentences
have to be read letter by letter, and utterances mixing Chinese and Japanese
have to be routed to the respective phonetic front-end, span by span.

The transformations are organized as cleaners: sequences of deterministic,
rule-table-driven text-to-text stages. The cleaners available are

    chinese_cleaners        numerals → bopomofo → spelled-out Latin
    japanese_cleaners       romaji with the usual token substitutions
    zh_ja_mixture_cleaners  [ZH]…[ZH] and [JA]…[JA] spans, romanized

Caller's text is expected to be single language or to be completely
covered by language spans:

    [ZH]你好[ZH][JA]こんにちは[JA]

BSD License

Copyright (c) 2022, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The stages of the cleaners live in sub-packages of cleaners:
numerals, bopomofo, mandarin, japanese and mixture. Package ruletable
holds the ordered substitution tables all of them share. Package pipeline
is the driver: it wires collaborators and lets clients apply cleaners by name.

Base package cleaners provides the means the sub-packages have in common:
the Stage type and its composition, the error taxonomy, and a small rune
recognizing machinery used for finding language markers.

Stages

A Stage is a pure function from string to string (plus an error). It holds
no state between calls; the only long-lived data are rule tables, which are
built once and never mutated afterwards. Stages are therefore safe for
concurrent use, as long as the external collaborators they call are.

Stages compose by ordered application:

    clean := cleaners.Compose(numberStage, bopomofoStage, latinStage)
    out, err := clean("我有2个iPhone")

Rune Events

Language markers are recognized by small automata, realized as state
functions. Every step within a marker is performed by executing a function.
This function recognizes a single rune and returns another function, which
represents the expectation for the next rune. Matching by function is
continued until a marker is accepted or aborted.

The helper type to perform this kind of matching is called Recognizer.
Recognizers receive rune events from a RunePublisher and therefore
implement interface RuneSubscriber. Recognizers are short-lived and pooled.
*/
package cleaners

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
