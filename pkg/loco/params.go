package loco

import (
	"net/url"
	"strings"
)

// Params holds the optional export parameters of the Loco export API.
// Empty fields are not sent.
//
// See https://localise.biz/api/docs/export/exportlocale for their meaning.
type Params struct {
	Format     string
	Filter     []string
	Index      string
	Source     string
	Namespace  string
	Fallback   string
	Order      string
	Status     string
	Printf     string
	Charset    string
	Breaks     string
	NoComments string
	NoFolding  string
}

// Values returns the non-empty parameters as query values.
func (p Params) Values() url.Values {
	v := url.Values{}
	set := func(name, value string) {
		if value != "" {
			v.Set(name, value)
		}
	}

	set("format", p.Format)
	if len(p.Filter) > 0 {
		set("filter", strings.Join(p.Filter, ","))
	}
	set("index", p.Index)
	set("source", p.Source)
	set("namespace", p.Namespace)
	set("fallback", p.Fallback)
	set("order", p.Order)
	set("status", p.Status)
	set("printf", p.Printf)
	set("charset", p.Charset)
	set("breaks", p.Breaks)
	set("no-comments", p.NoComments)
	set("no-folding", p.NoFolding)

	return v
}
