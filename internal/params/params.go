// Package params decodes the ';'-separated decimal parameter lists that
// follow a CSI introducer. ECMA-48 treats an omitted parameter as "use
// the default"; the contract here is that an empty slot leaves the
// caller's default value untouched rather than overwriting it with zero.
package params

import "termic/internal/logx"

// View is a cursor over an unparsed CSI parameter tail, e.g. "5;3" or
// ";1;1234;;". Callers advance it with Next.
type View struct {
	s   string
	pos int
}

// NewView wraps the raw parameter bytes collected by the decoder's CSI
// state (everything before the final command byte, digits/';'/':'/'<=>?').
func NewView(s string) *View {
	return &View{s: s}
}

// Remainder returns the unconsumed tail, used to report extra parameters.
func (v *View) Remainder() string {
	return v.s[v.pos:]
}

// AtEnd reports whether the view has been fully consumed. Used by
// callers like SGR's parameter loop that need to know whether another
// slot follows after they've consumed a variable number of parameters
// (e.g. an extended 38/48 color sequence) rather than relying on the
// single-slot "more" flag Next returns.
func (v *View) AtEnd() bool {
	return v.pos >= len(v.s)
}

// Next scans the next decimal parameter. If a digit precedes the
// terminator, out is overwritten; if the slot is empty (leading or
// doubled ';'), out is left at whatever the caller set as default.
// Non-digit, non-';' bytes (":", "<", "=", ">", "?") are skipped
// silently, matching the private-mode prefix bytes CSI tolerates.
// Next reports whether another parameter slot follows.
func Next(v *View, out *int) bool {
	val := 0
	sawDigit := false
	for v.pos < len(v.s) {
		c := v.s[v.pos]
		if c >= '0' && c <= '9' {
			val = val*10 + int(c-'0')
			sawDigit = true
			v.pos++
			continue
		}
		if c == ';' {
			v.pos++
			if sawDigit {
				*out = val
			}
			return true
		}
		v.pos++
	}
	if sawDigit {
		*out = val
	}
	return false
}

// Parse fills each of outs in order via Next, then logs a warning if
// parameters remain beyond the slots the caller asked for.
func Parse(name string, v *View, outs ...*int) {
	more := false
	for _, out := range outs {
		more = Next(v, out)
		if !more {
			return
		}
	}
	if more && v.Remainder() != "" {
		logx.Warnf("%s: ignoring extra parameters %q", name, v.Remainder())
	} else if more {
		logx.Warnf("%s: trailing parameter separator with no value", name)
	}
}
