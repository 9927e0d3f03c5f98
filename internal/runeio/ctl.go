package runeio

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ControlRune represents a named control unicode codepoint.
type ControlRune struct {
	N string
	R rune
}

// C0Ctls contains the classic ASCII control characters.
var C0Ctls = [32]ControlRune{
	{"<NUL>", 0x00}, {"<SOH>", 0x01}, {"<STX>", 0x02}, {"<ETX>", 0x03},
	{"<EOT>", 0x04}, {"<ENQ>", 0x05}, {"<ACK>", 0x06}, {"<BEL>", 0x07},
	{"<BS>", 0x08}, {"<HT>", 0x09}, {"<NL>", 0x0A}, {"<VT>", 0x0B},
	{"<NP>", 0x0C}, {"<CR>", 0x0D}, {"<SO>", 0x0E}, {"<SI>", 0x0F},
	{"<DLE>", 0x10}, {"<DC1>", 0x11}, {"<DC2>", 0x12}, {"<DC3>", 0x13},
	{"<DC4>", 0x14}, {"<NAK>", 0x15}, {"<SYN>", 0x16}, {"<ETB>", 0x17},
	{"<CAN>", 0x18}, {"<EM>", 0x19}, {"<SUB>", 0x1A}, {"<ESC>", 0x1B},
	{"<FS>", 0x1C}, {"<GS>", 0x1D}, {"<RS>", 0x1E}, {"<US>", 0x1F},
}

// PseudoCtls provides the typical mnemonics for space and delete.
var PseudoCtls = [2]ControlRune{
	{"<SP>", 0x20},
	{"<DEL>", 0x7F},
}

// ControlWords maps control mnemonic strings to runes.
// Includes alias for caret forms like ^@ for <NUL>, ^C for <ETX>, and ^[ for <ESC> .
var ControlWords map[string]rune

var controlNames map[rune]string

func init() {
	ControlWords = make(map[string]rune, 3*(len(C0Ctls)+len(PseudoCtls)))
	controlNames = make(map[rune]string, len(C0Ctls)+len(PseudoCtls))
	for _, ctls := range [][]ControlRune{C0Ctls[:], PseudoCtls[:]} {
		for _, ctl := range ctls {
			ControlWords[strings.ToUpper(ctl.N)] = ctl.R
			ControlWords[strings.ToLower(ctl.N)] = ctl.R
			if caret := CaretForm(ctl.R); caret != "" {
				ControlWords[caret] = ctl.R
			}
			controlNames[ctl.R] = ctl.N
		}
	}
}

// CaretForm computes the ^-escaped printable form of a C0 or C1 control rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

// Glyph renders a board cell for diagnostics: printable runes are quoted,
// spaces and controls use their mnemonic or caret form.
func Glyph(r rune) string {
	if name, ok := controlNames[r]; ok {
		return name
	}
	if caret := CaretForm(r); caret != "" {
		return caret
	}
	if !unicode.IsPrint(r) {
		return strconv.QuoteRune(r)
	}
	return "'" + string(r) + "'"
}

var errInvalidRune = errors.New(`rune literal must be "^X" "<NAME>" or 'X'`)

// UnquoteRune extends the standard strconv.UnquoteChar parsing with additional
// mnemonics like <ESC> and caret-forms like ^[.
func UnquoteRune(token string) (rune, error) {
	if r, defined := ControlWords[token]; defined {
		return r, nil
	}

	runes := []rune(token)
	if len(runes) < 1 || runes[0] != '\'' {
		return 0, errInvalidRune
	}

	switch len(runes) {
	case 3:
		if runes[2] != '\'' {
			return 0, errInvalidRune
		}
	case 4:
		if runes[3] != '\'' {
			return 0, errInvalidRune
		}
	default:
		return 0, errInvalidRune
	}

	value, _, tail, err := strconv.UnquoteChar(token[1:], '\'')
	if err == nil && tail != "'" {
		return 0, errInvalidRune
	}
	return value, err
}
