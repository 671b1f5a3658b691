package ruletable

// LatinToBopomofo spells out Latin letters the way a Mandarin speaker
// pronounces them, e.g. "b" → "ㄅㄧˋ". Matching ignores case.
//
// Entries are ordered a → z. Replacements consist of bopomofo and tone marks
// only; no replacement may contain a Latin letter, otherwise a later entry
// would re-trigger on the output of an earlier one.
var LatinToBopomofo = New("latin→bopomofo",
	Fold("a", "ㄟˉ"),
	Fold("b", "ㄅㄧˋ"),
	Fold("c", "ㄙㄧˉ"),
	Fold("d", "ㄉㄧˋ"),
	Fold("e", "ㄧˋ"),
	Fold("f", "ㄝˊㄈㄨˋ"),
	Fold("g", "ㄐㄧˋ"),
	Fold("h", "ㄝˇㄑㄩˋ"),
	Fold("i", "ㄞˋ"),
	Fold("j", "ㄐㄟˋ"),
	Fold("k", "ㄎㄟˋ"),
	Fold("l", "ㄝˊㄛˋ"),
	Fold("m", "ㄝˊㄇㄨˋ"),
	Fold("n", "ㄣˉ"),
	Fold("o", "ㄡˉ"),
	Fold("p", "ㄆㄧˉ"),
	Fold("q", "ㄎㄧㄡˉ"),
	Fold("r", "ㄚˋ"),
	Fold("s", "ㄝˊㄙˋ"),
	Fold("t", "ㄊㄧˋ"),
	Fold("u", "ㄧㄡˉ"),
	Fold("v", "ㄨㄧˉ"),
	Fold("w", "ㄉㄚˋㄅㄨˋㄌㄧㄡˋ"),
	Fold("x", "ㄝˉㄎㄨˋㄙˋ"),
	Fold("y", "ㄨㄞˋ"),
	Fold("z", "ㄗㄟˋ"),
)

// BopomofoToRomaji maps bopomofo, tone marks and full-width punctuation to an
// IPA-influenced romanization.
//
// Compound patterns precede their constituents: the four syllables with
// medial ㄛ first, then ㄧㄢ before ㄢ, ㄧㄣ before ㄣ, and the three
// ㄥ-clusters before ㄥ. Medials ㄧ ㄨ ㄩ are mapped after all clusters
// containing them.
var BopomofoToRomaji = New("bopomofo→romaji",
	Text("ㄅㄛ", "p⁼wo"),
	Text("ㄆㄛ", "pʰwo"),
	Text("ㄇㄛ", "mwo"),
	Text("ㄈㄛ", "fwo"),
	Text("ㄅ", "p⁼"),
	Text("ㄆ", "pʰ"),
	Text("ㄇ", "m"),
	Text("ㄈ", "f"),
	Text("ㄉ", "t⁼"),
	Text("ㄊ", "tʰ"),
	Text("ㄋ", "n"),
	Text("ㄌ", "l"),
	Text("ㄍ", "k⁼"),
	Text("ㄎ", "kʰ"),
	Text("ㄏ", "h"),
	Text("ㄐ", "ʧ⁼"),
	Text("ㄑ", "ʧʰ"),
	Text("ㄒ", "ʃ"),
	Text("ㄓ", "ʦ`⁼"),
	Text("ㄔ", "ʦ`ʰ"),
	Text("ㄕ", "s`"),
	Text("ㄖ", "ɹ`"),
	Text("ㄗ", "ʦ⁼"),
	Text("ㄘ", "ʦʰ"),
	Text("ㄙ", "s"),
	Text("ㄚ", "a"),
	Text("ㄛ", "o"),
	Text("ㄜ", "ə"),
	Text("ㄝ", "e"),
	Text("ㄞ", "ai"),
	Text("ㄟ", "ei"),
	Text("ㄠ", "au"),
	Text("ㄡ", "ou"),
	Text("ㄧㄢ", "yeNN"),
	Text("ㄢ", "aNN"),
	Text("ㄧㄣ", "iNN"),
	Text("ㄣ", "əNN"),
	Text("ㄤ", "aNg"),
	Text("ㄧㄥ", "iNg"),
	Text("ㄨㄥ", "uNg"),
	Text("ㄩㄥ", "yuNg"),
	Text("ㄥ", "əNg"),
	Text("ㄦ", "əɻ"),
	Text("ㄧ", "i"),
	Text("ㄨ", "u"),
	Text("ㄩ", "ɥ"),
	Text("ˉ", "→"),
	Text("ˊ", "↑"),
	Text("ˇ", "↓↑"),
	Text("ˋ", "↓"),
	Text("˙", ""),
	Text("，", ","),
	Text("。", "."),
	Text("！", "!"),
	Text("？", "?"),
	Text("—", "-"),
)

// RomajiCorrections are the post-romanization passes for Mandarin:
// glide insertion for i and u, followed by the insertion of an explicit
// vowel after retroflex and dental sibilants which carry a tone directly.
//
// The retroflex pass has to run before the dental pass: the dental pattern
// would otherwise match the retroflex consonants as well, and both match
// glyphs introduced by the preceding entries.
var RomajiCorrections = New("romaji corrections",
	Template("i([aoe])", "y${1}"),
	Template("u([aoəe])", "w${1}"),
	Template("([ʦsɹ]`[⁼ʰ]?)([→↓↑]+)", "${1}ɹ`${2}"),
	Text("ɻ", "ɹ`"),
	Template("([ʦs][⁼ʰ]?)([→↓↑]+)", "${1}ɹ${2}"),
)

// ClauseSeparators folds the enumeration comma, the full-width semicolon and
// the full-width colon into a full-width comma.
var ClauseSeparators = New("clause separators",
	Text("、", "，"),
	Text("；", "，"),
	Text("：", "，"),
)

// PinyinToBopomofo converts a single syllable of numbered pinyin ("zhong1",
// "lv4", "ma" or "ma5" for the neutral tone) into bopomofo.
// Neither the first nor the neutral tone carries a mark; both receive the
// default tone mark from the syllable mapper.
//
// The first part of the table rewrites pinyin spelling conventions into an
// intermediate alphabet with one letter per bopomofo symbol, the second part
// maps this alphabet to bopomofo.
var PinyinToBopomofo = New("pinyin→bopomofo",
	Template(`^m(\d)$`, "mu${1}"),
	Template(`^n(\d)$`, "N${1}"),
	Literal(`^r5$`, "er5"),
	Literal("5$", ""),
	Literal("iu", "iou"),
	Literal("ui", "uei"),
	Literal("ong", "ung"),
	Literal("^yi?", "i"),
	Literal("^wu?", "u"),
	Literal("iu", "v"),
	Template("^([jqx])u", "${1}v"),
	Template("([iuv])n", "${1}en"),
	Literal("^zhi?", "Z"),
	Literal("^chi?", "C"),
	Literal("^shi?", "S"),
	Template("^([zcsr])i", "${1}"),
	Literal("ai", "A"),
	Literal("ei", "I"),
	Literal("ao", "O"),
	Literal("ou", "U"),
	Literal("ang", "K"),
	Literal("eng", "G"),
	Literal("an", "M"),
	Literal("en", "N"),
	Literal("er", "R"),
	Literal("eh", "E"),
	Template("([iv])e", "${1}E"),
	Literal("1$", ""),
).Then("pinyin→bopomofo", pinyinAlphabet)

var pinyinAlphabet = alphabet("pinyin alphabet",
	"bpmfdtnlgkhjqxZCSrzcsiuvaoeEAIOUMNKGR234ê",
	"ㄅㄆㄇㄈㄉㄊㄋㄌㄍㄎㄏㄐㄑㄒㄓㄔㄕㄖㄗㄘㄙㄧㄨㄩㄚㄛㄜㄝㄞㄟㄠㄡㄢㄣㄤㄥㄦˊˇˋㄝ",
)

// alphabet creates a table mapping each rune of from to the rune at the same
// position in to. Patterns are single runes and no rune of to is contained
// in from, so the order of entries is irrelevant.
func alphabet(name, from, to string) *Table {
	f, t := []rune(from), []rune(to)
	if len(f) != len(t) {
		panic("ruletable: alphabet of unequal length")
	}
	entries := make([]Entry, len(f))
	for i := range f {
		entries[i] = Text(string(f[i]), string(t[i]))
	}
	return New(name, entries...)
}
