package loco

import (
	"fmt"
	"mime"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ToUTF8 converts body from the charset declared in contentType to UTF-8.
// Bodies without a declared charset, or already in UTF-8, are returned unchanged.
func ToUTF8(body []byte, contentType string) ([]byte, error) {
	label := declaredCharset(contentType)
	if label == "" {
		return body, nil
	}

	enc, err := lookupEncoding(label)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return body, nil
	}

	return decode(enc, body)
}

// lookupEncoding resolves a charset label with the IANA registry, so iso-8859-1 is
// ISO-8859-1 and not windows-1252 as in the HTML label table. Labels only the HTML
// table knows fall back to it.
func lookupEncoding(label string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(label); err == nil && enc != nil {
		return enc, nil
	}

	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, fmt.Errorf("unsupported response charset %q", label)
	}
	if name == "utf-8" {
		return unicode.UTF8, nil
	}
	return enc, nil
}

func decode(enc encoding.Encoding, body []byte) ([]byte, error) {
	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	return out, nil
}

// declaredCharset returns the charset parameter of a Content-Type header value.
func declaredCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err == nil {
		return strings.TrimSpace(params["charset"])
	}

	// Be lenient with malformed headers and look for the parameter directly.
	for _, part := range strings.Split(contentType, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if ok && strings.EqualFold(strings.TrimSpace(k), "charset") {
			return strings.Trim(strings.TrimSpace(v), `"`)
		}
	}
	return ""
}
