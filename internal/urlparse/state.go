package urlparse

import "strconv"

// state is one node of the WHATWG URL parsing state machine (spec.md
// §4.1). The pointer-driven loop below implements "decrement pointer
// and reprocess" by only auto-advancing the pointer when a state
// handler doesn't explicitly request a rewind.
type state int

const (
	stateSchemeStart state = iota
	stateScheme
	stateNoScheme
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment
	stateDone
)

type parser struct {
	input []byte
	ptr   int

	state state
	buf   []byte

	url  URL
	base *URL

	insideBrackets bool
	atSignSeen     bool
}

// FromBaseURL is the single constructor (spec.md §4.1): parses s,
// resolving it against base when s is not itself an absolute URL.
// Malformed input never panics and never fails: the state machine
// always runs to completion, so ok is always true and the URL is
// best-effort. Input with no scheme and no base yields an opaque URL
// whose Scheme is empty.
func FromBaseURL(s string, base *URL) (*URL, bool) {
	p := &parser{
		input: []byte(trimC0AndSpace(s)),
		base:  base,
		state: stateSchemeStart,
	}
	p.input = stripTabsAndNewlines(p.input)
	ok := p.run()
	if !ok {
		return nil, false
	}
	out := p.url
	return &out, true
}

func trimC0AndSpace(s string) string {
	isC0OrSpace := func(b byte) bool { return b <= 0x20 }
	i, j := 0, len(s)
	for i < j && isC0OrSpace(s[i]) {
		i++
	}
	for j > i && isC0OrSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

func stripTabsAndNewlines(b []byte) []byte {
	out := b[:0:0]
	for _, c := range b {
		if c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		out = append(out, c)
	}
	return out
}

func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIIAlphanumeric(c byte) bool {
	return isASCIIAlpha(c) || isASCIIDigit(c)
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// peek returns the byte at ptr+offset, and whether it is in-bounds.
func (p *parser) peek(offset int) (byte, bool) {
	i := p.ptr + offset
	if i < 0 || i >= len(p.input) {
		return 0, false
	}
	return p.input[i], true
}

func (p *parser) eof() bool {
	return p.ptr >= len(p.input)
}

func (p *parser) cur() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.ptr]
}

func (p *parser) remaining() []byte {
	if p.ptr >= len(p.input) {
		return nil
	}
	return p.input[p.ptr:]
}

func (p *parser) run() bool {
	for {
		rewind := p.step()
		if p.state == stateDone {
			break
		}
		if !rewind {
			p.ptr++
			if p.ptr > len(p.input) {
				break
			}
		}
	}
	p.finishPath()
	return true
}

// step executes one state-machine transition for the current pointer
// position and returns true if the pointer should NOT be advanced
// (i.e. "decrement pointer and reprocess" in the WHATWG prose -- since
// we never advance past the current char in that case, returning true
// here is equivalent).
func (p *parser) step() bool {
	switch p.state {
	case stateSchemeStart:
		return p.stepSchemeStart()
	case stateScheme:
		return p.stepScheme()
	case stateNoScheme:
		return p.stepNoScheme()
	case stateRelative:
		return p.stepRelative()
	case stateRelativeSlash:
		return p.stepRelativeSlash()
	case stateSpecialAuthoritySlashes:
		return p.stepSpecialAuthoritySlashes()
	case stateSpecialAuthorityIgnoreSlashes:
		return p.stepSpecialAuthorityIgnoreSlashes()
	case stateAuthority:
		return p.stepAuthority()
	case stateHost:
		return p.stepHost()
	case statePort:
		return p.stepPort()
	case stateFile:
		return p.stepFile()
	case stateFileSlash:
		return p.stepFileSlash()
	case stateFileHost:
		return p.stepFileHost()
	case statePathStart:
		return p.stepPathStart()
	case statePath:
		return p.stepPath()
	case stateOpaquePath:
		return p.stepOpaquePath()
	case stateQuery:
		return p.stepQuery()
	case stateFragment:
		return p.stepFragment()
	}
	p.state = stateDone
	return false
}

func (p *parser) stepSchemeStart() bool {
	c := p.cur()
	if !p.eof() && isASCIIAlpha(c) {
		p.buf = append(p.buf, lowerByte(c))
		p.state = stateScheme
		return false
	}
	// Not a scheme start: fall back to relative-reference parsing
	// against base, reprocessing this same character.
	p.state = stateNoScheme
	return true
}

func (p *parser) stepScheme() bool {
	c := p.cur()
	if !p.eof() && (isASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.') {
		p.buf = append(p.buf, lowerByte(c))
		return false
	}
	if !p.eof() && c == ':' {
		p.url.Scheme = string(p.buf)
		p.buf = p.buf[:0]
		if p.url.Scheme == "file" {
			p.state = stateFile
			return false
		}
		if p.url.IsSpecial() {
			// A same-scheme special rebase ("http:" against an
			// "http:" base) and a fresh special scheme both land in
			// SpecialAuthoritySlashes; the WHATWG "special relative
			// or authority" state exists only to share that code
			// path with stateRelative, which we fold in here.
			p.state = stateSpecialAuthoritySlashes
			return false
		}
		if rest, ok := p.peek(1); ok && rest == '/' {
			p.state = stateAuthority
			p.ptr += 2
			return true
		}
		p.url.IsOpaque = true
		p.state = stateOpaquePath
		return false
	}
	// Invalid scheme character encountered before ':': this wasn't a
	// scheme after all. Reset and treat the whole input as a relative
	// reference against base.
	p.buf = p.buf[:0]
	p.ptr = -1 // will become 0 after the caller's ptr++
	p.url = URL{}
	p.state = stateNoScheme
	return false
}

func (p *parser) stepNoScheme() bool {
	if p.base == nil {
		// No base to resolve against: fail quietly, but still produce
		// a best-effort opaque URL out of whatever we have, per
		// spec.md §7 ("unparseable segments accept best-effort
		// behavior").
		p.url.Scheme = ""
		p.url.IsOpaque = true
		p.url.OpaquePath = string(p.remaining())
		p.state = stateDone
		return false
	}
	p.url.Scheme = p.base.Scheme
	if p.base.IsOpaque {
		p.url.IsOpaque = true
		p.url.OpaquePath = p.base.OpaquePath
		p.state = stateOpaquePath
		return true
	}
	if !p.eof() && p.cur() == '#' {
		p.copyAuthorityAndPathFromBase()
		p.url.Fragment = nil
		p.state = stateFragment
		return false
	}
	p.state = stateRelative
	return true
}

func (p *parser) copyAuthorityAndPathFromBase() {
	p.url.Username = p.base.Username
	p.url.Password = p.base.Password
	p.url.Host = p.base.Host
	p.url.Port = p.base.Port
	p.url.Path = append([]string(nil), p.base.Path...)
}

// stepRelative only copies base's path for the "bare relative path"
// case (e.g. "new.html"). An absolute-path reference ("/x") or a
// network-path reference ("//host/x") must start from an empty path,
// so it defers to stateRelativeSlash / stateAuthority without copying
// anything here -- copying unconditionally would leave a leading
// directory from base's path behind.
func (p *parser) stepRelative() bool {
	if p.eof() {
		p.copyAuthorityAndPathFromBase()
		p.state = stateDone
		return false
	}
	switch p.cur() {
	case '/':
		p.state = stateRelativeSlash
		return false
	default:
		if p.url.IsSpecial() && p.cur() == '\\' {
			p.state = stateRelativeSlash
			return false
		}
		p.copyAuthorityAndPathFromBase()
		switch p.cur() {
		case '?':
			p.state = stateQuery
			return false
		case '#':
			p.state = stateFragment
			return false
		default:
			p.url.Query = nil
			// relative path reference: drop the last base segment,
			// then continue as a normal path.
			if n := len(p.url.Path); n > 0 {
				p.url.Path = p.url.Path[:n-1]
			}
			p.state = statePath
			return true
		}
	}
}

func (p *parser) stepRelativeSlash() bool {
	if p.url.IsSpecial() && (p.cur() == '/' || p.cur() == '\\') {
		p.state = stateSpecialAuthorityIgnoreSlashes
		return false
	}
	if p.cur() == '/' {
		p.state = stateAuthority
		return false
	}
	p.url.Username = p.base.Username
	p.url.Password = p.base.Password
	p.url.Host = p.base.Host
	p.url.Port = p.base.Port
	p.state = statePath
	return true
}

func (p *parser) stepSpecialAuthoritySlashes() bool {
	if p.cur() == '/' {
		if c, ok := p.peek(1); ok && c == '/' {
			p.ptr++
			p.state = stateSpecialAuthorityIgnoreSlashes
			return false
		}
	}
	p.state = stateSpecialAuthorityIgnoreSlashes
	return true
}

func (p *parser) stepSpecialAuthorityIgnoreSlashes() bool {
	if p.cur() != '/' && p.cur() != '\\' {
		p.state = stateAuthority
		return true
	}
	return false
}

// stepAuthority accumulates everything between "//" and the end of the
// authority component into buf, re-splitting it into username/password
// only when an "@" is actually seen. Until "@" appears, a bare ":" is
// NOT a userinfo separator -- it might be a host:port separator
// instead, which Host/Port state (not Authority) is responsible for.
// On reaching the end of the authority, the pointer rewinds to
// wherever the still-unconsumed buffer began so Host state reparses
// it (this lets "host:port" be handled once, by Host/Port, even when
// no "@" ever appeared).
func (p *parser) stepAuthority() bool {
	if p.eof() || p.cur() == '/' || p.cur() == '?' || p.cur() == '#' ||
		(p.url.IsSpecial() && p.cur() == '\\') {
		p.ptr -= len(p.buf)
		p.buf = p.buf[:0]
		p.state = stateHost
		return true
	}
	if p.cur() == '@' {
		p.atSignSeen = true
		if idx := indexByte(p.buf, ':'); idx >= 0 {
			p.url.Username = string(p.buf[:idx])
			p.url.Password = string(p.buf[idx+1:])
		} else {
			p.url.Username = string(p.buf)
		}
		p.buf = p.buf[:0]
		return false
	}
	p.buf = append(p.buf, p.cur())
	return false
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

func (p *parser) stepHost() bool {
	if p.cur() == '[' {
		p.insideBrackets = true
	}
	if p.insideBrackets {
		p.buf = append(p.buf, p.cur())
		if p.cur() == ']' {
			p.insideBrackets = false
		}
		if !p.eof() {
			return false
		}
	}
	if p.eof() || p.cur() == '/' || p.cur() == '?' || p.cur() == '#' ||
		(p.url.IsSpecial() && p.cur() == '\\') {
		p.url.Host = string(p.buf)
		p.buf = p.buf[:0]
		p.state = statePathStart
		return true
	}
	if p.cur() == ':' && !p.insideBrackets {
		p.url.Host = string(p.buf)
		p.buf = p.buf[:0]
		p.state = statePort
		return false
	}
	p.buf = append(p.buf, p.cur())
	return false
}

func (p *parser) stepPort() bool {
	if isASCIIDigit(p.cur()) {
		p.buf = append(p.buf, p.cur())
		return false
	}
	if p.eof() || p.cur() == '/' || p.cur() == '?' || p.cur() == '#' ||
		(p.url.IsSpecial() && p.cur() == '\\') {
		if len(p.buf) > 0 {
			n, err := strconv.Atoi(string(p.buf))
			if err == nil {
				if def, special := specialSchemes[p.url.Scheme]; !special || def != n {
					p.url.Port = &n
				}
			}
		}
		p.buf = p.buf[:0]
		p.state = statePathStart
		return true
	}
	// Invalid port character: best-effort, just stop parsing the port.
	p.buf = p.buf[:0]
	p.state = statePathStart
	return true
}

func (p *parser) stepFile() bool {
	p.url.Host = ""
	if p.eof() {
		p.state = statePathStart
		return true
	}
	switch p.cur() {
	case '/', '\\':
		p.state = stateFileSlash
		return false
	default:
		if p.base != nil && p.base.Scheme == "file" {
			p.url.Host = p.base.Host
			p.url.Path = append([]string(nil), p.base.Path...)
		}
		p.state = statePath
		return true
	}
}

func (p *parser) stepFileSlash() bool {
	if p.cur() == '/' || p.cur() == '\\' {
		p.state = stateFileHost
		return false
	}
	if p.base != nil && p.base.Scheme == "file" {
		p.url.Host = p.base.Host
	}
	p.state = statePath
	return true
}

func (p *parser) stepFileHost() bool {
	if p.eof() || p.cur() == '/' || p.cur() == '\\' || p.cur() == '?' || p.cur() == '#' {
		p.url.Host = string(p.buf)
		p.buf = p.buf[:0]
		p.state = statePathStart
		return true
	}
	p.buf = append(p.buf, p.cur())
	return false
}

func (p *parser) stepPathStart() bool {
	if p.url.IsSpecial() {
		if !p.eof() && (p.cur() == '/' || p.cur() == '\\') {
			p.state = statePath
			return false
		}
		p.state = statePath
		return true
	}
	if !p.eof() && p.cur() == '?' {
		p.state = stateQuery
		return false
	}
	if !p.eof() && p.cur() == '#' {
		p.state = stateFragment
		return false
	}
	if !p.eof() {
		p.state = statePath
		return true
	}
	p.state = stateDone
	return false
}

func (p *parser) stepPath() bool {
	atSegmentEnd := p.eof() || p.cur() == '/' || (p.url.IsSpecial() && p.cur() == '\\') || p.cur() == '?' || p.cur() == '#'
	if atSegmentEnd {
		seg := string(p.buf)
		p.buf = p.buf[:0]
		switch seg {
		case "..":
			if n := len(p.url.Path); n > 0 {
				p.url.Path = p.url.Path[:n-1]
			}
		case ".":
			// drop
		default:
			p.url.Path = append(p.url.Path, seg)
		}
		if p.eof() {
			p.state = stateDone
			return false
		}
		if p.cur() == '?' {
			p.state = stateQuery
			return false
		}
		if p.cur() == '#' {
			p.state = stateFragment
			return false
		}
		return false
	}
	p.buf = append(p.buf, p.cur())
	return false
}

func (p *parser) finishPath() {
	if len(p.buf) > 0 && p.state == statePath {
		p.url.Path = append(p.url.Path, string(p.buf))
		p.buf = p.buf[:0]
	}
}

func (p *parser) stepOpaquePath() bool {
	if p.eof() || p.cur() == '?' || p.cur() == '#' {
		p.url.OpaquePath = string(p.buf)
		p.buf = p.buf[:0]
		if p.eof() {
			p.state = stateDone
			return false
		}
		if p.cur() == '?' {
			p.state = stateQuery
			return false
		}
		p.state = stateFragment
		return false
	}
	p.buf = append(p.buf, p.cur())
	return false
}

func (p *parser) stepQuery() bool {
	if p.eof() || p.cur() == '#' {
		q := string(p.buf)
		p.url.Query = &q
		p.buf = p.buf[:0]
		if p.eof() {
			p.state = stateDone
			return false
		}
		p.state = stateFragment
		return false
	}
	p.buf = append(p.buf, p.cur())
	return false
}

func (p *parser) stepFragment() bool {
	if p.eof() {
		f := string(p.buf)
		p.url.Fragment = &f
		p.buf = p.buf[:0]
		p.state = stateDone
		return false
	}
	p.buf = append(p.buf, p.cur())
	return false
}
