package numera

import "github.com/roach88/numera/codec"

// System identifies one supported numeral system. The set is closed
// and defined at build time; see Systems for the full list.
type System string

// Systems referenced directly by the resolution layer, the catalog and
// tests. The positional script table below registers the rest.
const (
	Arabic         System = "arabic"
	Roman          System = "roman"
	Aegean         System = "aegean"
	Attic          System = "attic"
	Ethiopic       System = "ethiopic"
	Cuneiform      System = "cuneiform"
	Hanzi          System = "hanzi"
	HanziFinancial System = "hanzi_financial"
	Japanese       System = "japanese"
	Mayan          System = "mayan"
	Kaktovik       System = "kaktovik"
	Base12         System = "base12"
)

// positionalScripts parametrizes every plain digit-per-position system
// by the code point of its zero digit and its radix. Pure data: the
// shared Positional codec holds the algorithm. Ordered by code point.
var positionalScripts = []struct {
	id    System
	base  rune
	radix int64
}{
	{Arabic, '0', 10},
	{"arabic_indic", 0x0660, 10},
	{"extended_arabic_indic", 0x06F0, 10},
	{"nko", 0x07C0, 10},
	{"devanagari", 0x0966, 10},
	{"bengali", 0x09E6, 10},
	{"gurmukhi", 0x0A66, 10},
	{"gujarati", 0x0AE6, 10},
	{"oriya", 0x0B66, 10},
	{"tamil", 0x0BE6, 10},
	{"telugu", 0x0C66, 10},
	{"kannada", 0x0CE6, 10},
	{"malayalam", 0x0D66, 10},
	{"sinhala_lith", 0x0DE6, 10},
	{"thai", 0x0E50, 10},
	{"lao", 0x0ED0, 10},
	{"tibetan", 0x0F20, 10},
	{"myanmar", 0x1040, 10},
	{"myanmar_shan", 0x1090, 10},
	{"khmer", 0x17E0, 10},
	{"mongolian", 0x1810, 10},
	{"limbu", 0x1946, 10},
	{"new_tai_lue", 0x19D0, 10},
	{"balinese", 0x1B50, 10},
	{"sundanese", 0x1BB0, 10},
	{"lepcha", 0x1C40, 10},
	{"ol_chiki", 0x1C50, 10},
	{"vai", 0xA620, 10},
	{"saurashtra", 0xA8D0, 10},
	{"kayah_li", 0xA900, 10},
	{"javanese", 0xA9D0, 10},
	{"myanmar_tai_laing", 0xA9F0, 10},
	{"cham", 0xAA50, 10},
	{"meetei_mayek", 0xABF0, 10},
	{"fullwidth", 0xFF10, 10},
	{"osmanya", 0x104A0, 10},
	{"brahmi", 0x11066, 10},
	{"sora_sompeng", 0x110F0, 10},
	{"chakma", 0x11136, 10},
	{"sharada", 0x111D0, 10},
	{"khudawadi", 0x112F0, 10},
	{"newa", 0x11450, 10},
	{"tirhuta", 0x114D0, 10},
	{"modi", 0x11650, 10},
	{"takri", 0x116C0, 10},
	{"ahom", 0x11730, 10},
	{"warang_citi", 0x118E0, 10},
	{"bhaiksuki", 0x11C50, 10},
	{"masaram_gondi", 0x11D50, 10},
	{"gunjala_gondi", 0x11DA0, 10},
	{"mro", 0x16A60, 10},
	{"pahawh_hmong", 0x16B50, 10},
	{Kaktovik, 0x1D2C0, 20},
	{Mayan, 0x1D2E0, 20},
	{"math_bold", 0x1D7CE, 10},
	{"math_double_struck", 0x1D7D8, 10},
	{"math_sans", 0x1D7E2, 10},
	{"math_sans_bold", 0x1D7EC, 10},
	{"math_monospace", 0x1D7F6, 10},
	{"adlam", 0x1E950, 10},
	{"segmented", 0x1FBF0, 10},
}

// base12Digits extends the Western digits with the turned two and
// turned three. The set is non-contiguous, so base-12 carries an
// explicit digit table instead of a code point range.
var base12Digits = []rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '↊', '↋'}

var registry = buildRegistry()

func buildRegistry() map[System]codec.Codec {
	reg := map[System]codec.Codec{
		Roman:     codec.NewRoman(),
		Aegean:    codec.NewAegean(),
		Attic:     codec.NewAttic(),
		Ethiopic:  codec.NewEthiopic(),
		Cuneiform: codec.NewCuneiform(),
		Hanzi: codec.NewHan(string(Hanzi),
			[10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
			[4]string{"", "十", "百", "千"},
			[]string{"万", "亿", "兆", "京"},
			"负"),
		HanziFinancial: codec.NewHan(string(HanziFinancial),
			[10]string{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"},
			[4]string{"", "拾", "佰", "仟"},
			[]string{"万", "亿", "兆", "京"},
			"负"),
		Japanese: codec.NewHan(string(Japanese),
			[10]string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
			[4]string{"", "十", "百", "千"},
			[]string{"万", "億", "兆", "京"},
			"マイナス"),
	}
	for _, ps := range positionalScripts {
		reg[ps.id] = codec.NewPositional(string(ps.id), ps.base, ps.radix)
	}
	reg[Base12] = codec.NewPositionalDigits(string(Base12), base12Digits)
	return reg
}
