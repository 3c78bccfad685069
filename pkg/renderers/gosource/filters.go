package gosource

import (
	"strconv"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// Filters returns the pongo2 filters gosource.tmpl relies on. Custom template
// bundles passed through WithTemplatesFS or WithTemplatesDir may use them too.
func Filters() map[string]pongo2.FilterFunction {
	return map[string]pongo2.FilterFunction{
		"cbytes":  filterCBytes,
		"goquote": filterGoQuote,
	}
}

// filterCBytes renders a string as the elements of a Go byte array literal
// followed by a NUL terminator: "FF" becomes 'F', 'F', 0.
func filterCBytes(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	s := in.String()
	var b strings.Builder
	b.Grow(len(s)*5 + 1)
	for i := 0; i < len(s); i++ {
		b.WriteString(strconv.QuoteRuneToASCII(rune(s[i])))
		b.WriteString(", ")
	}
	b.WriteByte('0')
	return pongo2.AsValue(b.String()), nil
}

func filterGoQuote(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strconv.Quote(in.String())), nil
}
