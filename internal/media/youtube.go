// Copyright Musicdott B.V., 2026. All rights reserved.

package media

import (
	"fmt"
	"regexp"
	"strings"
)

// youtubePatterns match the URL forms found in the export: watch links,
// short links, shorts, and the mobile site. The capture group is the
// video ID. Scheme and www. are optional because many cells hold
// hand-typed addresses.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?:https?://)?(?:m\.)?youtube\.com/watch\?v=([a-zA-Z0-9_-]+)`),
}

// youtubeEmbed is the player markup the 2.0 frontend expects, matching
// YouTube's own share-embed snippet.
const youtubeEmbed = `<iframe width="560" height="315" src="https://www.youtube.com/embed/%s" title="YouTube video player" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share" referrerpolicy="strict-origin-when-cross-origin" allowfullscreen></iframe>`

// YouTubeEmbed rewrites a YouTube URL to the fixed embed iframe. Empty or
// "nan" cells return ""; strings with no recognizable video URL are
// returned unchanged.
func YouTubeEmbed(input string) string {
	s := strings.TrimSpace(input)
	if s == "" || strings.EqualFold(s, "nan") {
		return ""
	}

	for _, p := range youtubePatterns {
		if m := p.FindStringSubmatch(s); m != nil {
			return fmt.Sprintf(youtubeEmbed, m[1])
		}
	}
	return s
}
