package terminfo

import (
	"regexp"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokText tokenKind = iota
	tokDelay
	tokFormat
	tokPushParam
	tokSetVar
	tokGetVar
	tokCharConst
	tokIntConst
	tokOp
)

// formatSpec is the parsed form of a printf-like %[flags][width[.prec]]verb
// token. It is a plain field bag (not a tagged variant) because every
// field is meaningful for every verb; only presence of width/precision
// varies, which the hasWidth/hasPrecision flags record.
type formatSpec struct {
	alt, zero, minus, plus, space bool
	width, precision              int
	hasWidth, hasPrecision        bool
	verb                          byte
}

// token is one lexical unit of a capability string. Only the fields
// relevant to kind are populated, following the tagged-instruction style
// used by the compiler's Instruction type.
type token struct {
	kind tokenKind

	text string // tokText: literal output bytes, already unescaped.

	delayMS    float64 // tokDelay
	delayMandt bool    // tokDelay: trailing '/' (mandatory delay)

	format formatSpec // tokFormat

	paramN int  // tokPushParam: 1-9
	reg    byte // tokSetVar / tokGetVar: register letter A-Z or a-z

	charVal byte // tokCharConst
	intVal  int  // tokIntConst

	op byte // tokOp: i l A O + - * / m & | ^ ~ = > < ! ? t e ; %
}

// One global pattern, named groups per token family, matched left to right
// over the capability source; unmatched runs between matches are literal
// text. This is the regex/named-group idiom Go's regexp package is built
// for, applied to the grammar term(5) documents.
var capToken = regexp.MustCompile(
	`\$<(?P<delayval>[0-9]+(?:\.[0-9]+)?)\*?(?P<delaymandt>/?)>` +
		`|%(?P<flags>[-+ #0]*)(?P<width>[0-9]*)(?:\.(?P<prec>[0-9]*))?(?P<verb>[doxXsc])` +
		`|%p(?P<pn>[1-9])` +
		`|%P(?P<setreg>[A-Za-z])` +
		`|%g(?P<getreg>[A-Za-z])` +
		`|%'(?P<charconst>[\s\S])'` +
		`|%\{(?P<intconst>[0-9]+)\}` +
		`|%(?P<opch>[ilAO+\-*/m&|^~=><!?te;%])`,
)

var groupNames = capToken.SubexpNames()

// lex splits a capability source string into tokens, unescaping literal
// text as it goes.
func lex(src string) ([]token, error) {
	var toks []token
	pos := 0
	for pos < len(src) {
		loc := capToken.FindStringSubmatchIndex(src[pos:])
		if loc == nil {
			text, err := unescape(src[pos:])
			if err != nil {
				return nil, &ParseError{Source: src, Pos: pos, Msg: err.Error()}
			}
			if text != "" {
				toks = append(toks, token{kind: tokText, text: text})
			}
			break
		}
		start, end := loc[0]+pos, loc[1]+pos
		if start > pos {
			text, err := unescape(src[pos:start])
			if err != nil {
				return nil, &ParseError{Source: src, Pos: pos, Msg: err.Error()}
			}
			if text != "" {
				toks = append(toks, token{kind: tokText, text: text})
			}
		}

		tok, err := buildToken(src, pos, loc)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		pos = end
	}
	return toks, nil
}

func submatch(src string, base int, loc []int, name string) (string, bool) {
	for i, n := range groupNames {
		if n != name {
			continue
		}
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 {
			return "", false
		}
		return src[base+s : base+e], true
	}
	return "", false
}

func buildToken(src string, base int, loc []int) (token, error) {
	if v, ok := submatch(src, base, loc, "delayval"); ok {
		ms, _ := strconv.ParseFloat(v, 64)
		mandt, _ := submatch(src, base, loc, "delaymandt")
		return token{kind: tokDelay, delayMS: ms, delayMandt: mandt == "/"}, nil
	}
	if verb, ok := submatch(src, base, loc, "verb"); ok {
		flags, _ := submatch(src, base, loc, "flags")
		width, hasW := submatch(src, base, loc, "width")
		prec, hasP := submatch(src, base, loc, "prec")
		fs := formatSpec{verb: verb[0]}
		for _, f := range flags {
			switch f {
			case '#':
				fs.alt = true
			case '0':
				fs.zero = true
			case '-':
				fs.minus = true
			case '+':
				fs.plus = true
			case ' ':
				fs.space = true
			}
		}
		if hasW && width != "" {
			fs.hasWidth = true
			fs.width, _ = strconv.Atoi(width)
		}
		if hasP {
			fs.hasPrecision = true
			if prec != "" {
				fs.precision, _ = strconv.Atoi(prec)
			}
		}
		return token{kind: tokFormat, format: fs}, nil
	}
	if v, ok := submatch(src, base, loc, "pn"); ok {
		n, _ := strconv.Atoi(v)
		return token{kind: tokPushParam, paramN: n}, nil
	}
	if v, ok := submatch(src, base, loc, "setreg"); ok {
		return token{kind: tokSetVar, reg: v[0]}, nil
	}
	if v, ok := submatch(src, base, loc, "getreg"); ok {
		return token{kind: tokGetVar, reg: v[0]}, nil
	}
	if v, ok := submatch(src, base, loc, "charconst"); ok {
		return token{kind: tokCharConst, charVal: v[0]}, nil
	}
	if v, ok := submatch(src, base, loc, "intconst"); ok {
		n, _ := strconv.Atoi(v)
		return token{kind: tokIntConst, intVal: n}, nil
	}
	if v, ok := submatch(src, base, loc, "opch"); ok {
		return token{kind: tokOp, op: v[0]}, nil
	}
	return token{}, &ParseError{Source: src, Pos: base, Msg: "internal: matched token with no recognized group"}
}

// unescape expands the ^X control-character and backslash escapes term(5)
// defines for literal text runs.
func unescape(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '^' && i+1 < len(s):
			i++
			ctl := s[i]
			if ctl == '?' {
				b.WriteByte(0x7f)
			} else {
				b.WriteByte(ctl & 0x1f)
			}
		case c == '\\' && i+1 < len(s):
			i++
			e := s[i]
			switch e {
			case 'E', 'e':
				b.WriteByte(0x1b)
			case 'n':
				b.WriteString("\r\n")
			case 'l':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'b':
				b.WriteByte(0x08)
			case 'f':
				b.WriteByte(0x0c)
			case 's':
				b.WriteByte(' ')
			case '^':
				b.WriteByte('^')
			case '\\':
				b.WriteByte('\\')
			case ',':
				b.WriteByte(',')
			case ':':
				b.WriteByte(':')
			case '0', '1', '2', '3', '4', '5', '6', '7':
				j := i
				for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7' {
					j++
				}
				n, err := strconv.ParseUint(s[i:j], 8, 8)
				if err != nil {
					return "", err
				}
				b.WriteByte(byte(n))
				i = j - 1
			default:
				b.WriteByte(e)
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
