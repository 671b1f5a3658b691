package ruletable

// KanaToRomaji romanizes katakana. Hiragana has to be folded to katakana
// beforehand.
//
// Contracted sounds (yōon) and the loan-word combinations are listed before
// the single kana they consist of. Sibilants use ʃ and ʧ, the sokuon is
// written "Q" and the moraic nasal "N". The long vowel mark repeats the
// preceding vowel.
var KanaToRomaji = New("kana→romaji",
	// yōon
	Text("キャ", "kya"), Text("キュ", "kyu"), Text("キョ", "kyo"),
	Text("ギャ", "gya"), Text("ギュ", "gyu"), Text("ギョ", "gyo"),
	Text("シャ", "ʃa"), Text("シュ", "ʃu"), Text("ショ", "ʃo"), Text("シェ", "ʃe"),
	Text("ジャ", "ja"), Text("ジュ", "ju"), Text("ジョ", "jo"), Text("ジェ", "je"),
	Text("チャ", "ʧa"), Text("チュ", "ʧu"), Text("チョ", "ʧo"), Text("チェ", "ʧe"),
	Text("ニャ", "nya"), Text("ニュ", "nyu"), Text("ニョ", "nyo"),
	Text("ヒャ", "hya"), Text("ヒュ", "hyu"), Text("ヒョ", "hyo"),
	Text("ビャ", "bya"), Text("ビュ", "byu"), Text("ビョ", "byo"),
	Text("ピャ", "pya"), Text("ピュ", "pyu"), Text("ピョ", "pyo"),
	Text("ミャ", "mya"), Text("ミュ", "myu"), Text("ミョ", "myo"),
	Text("リャ", "rya"), Text("リュ", "ryu"), Text("リョ", "ryo"),
	// loan words
	Text("ティ", "ti"), Text("ディ", "di"), Text("トゥ", "tu"), Text("ドゥ", "du"),
	Text("テュ", "tyu"), Text("デュ", "dyu"),
	Text("ファ", "fa"), Text("フィ", "fi"), Text("フェ", "fe"), Text("フォ", "fo"), Text("フュ", "fyu"),
	Text("ウィ", "wi"), Text("ウェ", "we"), Text("ウォ", "wo"),
	Text("ヴァ", "va"), Text("ヴィ", "vi"), Text("ヴェ", "ve"), Text("ヴォ", "vo"),
	Text("ツァ", "tsa"), Text("ツィ", "tsi"), Text("ツェ", "tse"), Text("ツォ", "tso"),
	Text("イェ", "ye"), Text("クァ", "kwa"), Text("グァ", "gwa"),
	// gojūon
	Text("ア", "a"), Text("イ", "i"), Text("ウ", "u"), Text("エ", "e"), Text("オ", "o"),
	Text("カ", "ka"), Text("キ", "ki"), Text("ク", "ku"), Text("ケ", "ke"), Text("コ", "ko"),
	Text("ガ", "ga"), Text("ギ", "gi"), Text("グ", "gu"), Text("ゲ", "ge"), Text("ゴ", "go"),
	Text("サ", "sa"), Text("シ", "ʃi"), Text("ス", "su"), Text("セ", "se"), Text("ソ", "so"),
	Text("ザ", "za"), Text("ジ", "ji"), Text("ズ", "zu"), Text("ゼ", "ze"), Text("ゾ", "zo"),
	Text("タ", "ta"), Text("チ", "ʧi"), Text("ツ", "tsu"), Text("テ", "te"), Text("ト", "to"),
	Text("ダ", "da"), Text("ヂ", "ji"), Text("ヅ", "zu"), Text("デ", "de"), Text("ド", "do"),
	Text("ナ", "na"), Text("ニ", "ni"), Text("ヌ", "nu"), Text("ネ", "ne"), Text("ノ", "no"),
	Text("ハ", "ha"), Text("ヒ", "hi"), Text("フ", "fu"), Text("ヘ", "he"), Text("ホ", "ho"),
	Text("バ", "ba"), Text("ビ", "bi"), Text("ブ", "bu"), Text("ベ", "be"), Text("ボ", "bo"),
	Text("パ", "pa"), Text("ピ", "pi"), Text("プ", "pu"), Text("ペ", "pe"), Text("ポ", "po"),
	Text("マ", "ma"), Text("ミ", "mi"), Text("ム", "mu"), Text("メ", "me"), Text("モ", "mo"),
	Text("ヤ", "ya"), Text("ユ", "yu"), Text("ヨ", "yo"),
	Text("ラ", "ra"), Text("リ", "ri"), Text("ル", "ru"), Text("レ", "re"), Text("ロ", "ro"),
	Text("ワ", "wa"), Text("ヰ", "i"), Text("ヱ", "e"), Text("ヲ", "o"),
	Text("ヴ", "vu"),
	Text("ァ", "a"), Text("ィ", "i"), Text("ゥ", "u"), Text("ェ", "e"), Text("ォ", "o"),
	Text("ャ", "ya"), Text("ュ", "yu"), Text("ョ", "yo"), Text("ヮ", "wa"),
	Text("ン", "N"),
	Text("ッ", "Q"),
	// long vowels
	Template("([aiueo])ー", "${1}${1}"),
	Text("ー", ""),
	// punctuation
	Text("、", ","),
	Text("。", "."),
	Text("！", "!"),
	Text("？", "?"),
	Text("～", "~"),
	Text("・", " "),
	Text("「", ""),
	Text("」", ""),
)
