// Copyright Musicdott B.V., 2026. All rights reserved.

// Package media normalizes the embedded media markup found in legacy
// export cells. Ten years of teacher input left Groovescribe notation in
// three shapes (pasted iframes, share URLs, bare querystrings) and YouTube
// links in every URL form the site ever had; everything is rewritten to
// the canonical embeds the 2.0 player renders.
package media

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultGrooveHost is the Groovescribe embed endpoint the 2.0 platform
// serves. Old cells may point at mikeslessons.com or an old instance; only
// the querystring (the groove itself) is kept.
const DefaultGrooveHost = "https://teacher.musicdott.com/groovescribe/GrooveEmbed.html"

// iframeSrcPattern extracts the src attribute from pasted iframe markup.
// Both quote styles occur in the wild.
var iframeSrcPattern = regexp.MustCompile(`(?i)src=["']([^"']+)["']`)

// Groovescribe rewrites a notation cell to the canonical embed iframe on
// host (DefaultGrooveHost when empty). It accepts pasted iframe HTML, full
// share URLs, and bare querystrings ("?TimeSig=..." or "TimeSig=...").
// Cells that are empty or the literal "nan" return ""; anything not
// recognizable as Groovescribe content is returned unchanged.
func Groovescribe(input, host string) string {
	s := strings.TrimSpace(input)
	if s == "" || strings.EqualFold(s, "nan") {
		return ""
	}
	if host == "" {
		host = DefaultGrooveHost
	}

	switch {
	case strings.HasPrefix(s, "<iframe"):
		if m := iframeSrcPattern.FindStringSubmatch(s); m != nil {
			if query := grooveQuery(m[1]); query != "" {
				return grooveIframe(host, query)
			}
		}

	case strings.HasPrefix(s, "http"):
		if query := grooveQuery(s); query != "" {
			return grooveIframe(host, query)
		}

	case strings.HasPrefix(s, "?TimeSig=") || strings.HasPrefix(s, "TimeSig="):
		return grooveIframe(host, strings.TrimPrefix(s, "?"))
	}

	return s
}

// grooveQuery pulls the groove parameters out of a URL: everything after
// the first "?", or from "TimeSig=" onward when the URL lost its "?".
func grooveQuery(url string) string {
	if i := strings.Index(url, "?"); i >= 0 {
		return url[i+1:]
	}
	if i := strings.Index(url, "TimeSig="); i >= 0 {
		return url[i:]
	}
	return ""
}

func grooveIframe(host, query string) string {
	return fmt.Sprintf(`<iframe width="100%%" height="240" src="%s?%s" frameborder="0"></iframe>`, host, query)
}
