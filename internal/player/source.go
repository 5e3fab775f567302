// Package player classifies catalog video URLs into an embeddable source.
package player

import (
	"regexp"
	"strings"
)

// Kind tags the playback source for a video URL.
type Kind int

const (
	// KindInvalid marks a recognized host whose media id could not be
	// extracted. Unrecognized hosts are never invalid; they fall through
	// to direct playback.
	KindInvalid Kind = iota
	KindYouTube
	KindVimeo
	KindDirect
)

func (k Kind) String() string {
	switch k {
	case KindYouTube:
		return "youtube"
	case KindVimeo:
		return "vimeo"
	case KindDirect:
		return "direct"
	default:
		return "invalid"
	}
}

// Source is the classified playback target for a video URL.
type Source struct {
	Kind Kind
	// ID is the platform media id for YouTube and Vimeo sources.
	ID string
	// URL is the raw media URL for direct sources.
	URL string
}

// EmbedURL returns the iframe src for platform sources, empty otherwise.
func (s Source) EmbedURL() string {
	switch s.Kind {
	case KindYouTube:
		return "https://www.youtube.com/embed/" + s.ID + "?autoplay=1"
	case KindVimeo:
		return "https://player.vimeo.com/video/" + s.ID + "?autoplay=1"
	default:
		return ""
	}
}

var (
	youTubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|/v/|/u/\w/|/embed/|\?v=|&v=)([^#&?]*)`)
	vimeoIDPattern   = regexp.MustCompile(`(?i)vimeo\.com.*(?:videos|video|channels)?/([0-9]+)`)
)

// Classify maps a video URL to its playback source by host sniffing,
// matching what the site has always done: youtube.com and youtu.be are
// YouTube, vimeo.com is Vimeo, anything else plays as a direct file.
func Classify(rawURL string) Source {
	switch {
	case strings.Contains(rawURL, "youtube.com") || strings.Contains(rawURL, "youtu.be"):
		if id, ok := ExtractYouTubeID(rawURL); ok {
			return Source{Kind: KindYouTube, ID: id}
		}
		return Source{Kind: KindInvalid}
	case strings.Contains(rawURL, "vimeo.com"):
		if id, ok := ExtractVimeoID(rawURL); ok {
			return Source{Kind: KindVimeo, ID: id}
		}
		return Source{Kind: KindInvalid}
	default:
		return Source{Kind: KindDirect, URL: rawURL}
	}
}

// ExtractYouTubeID pulls the 11-character video id out of the URL shapes
// YouTube uses: youtu.be/<id>, /v/<id>, /u/<n>/<id>, /embed/<id>, ?v=<id>
// and &v=<id>. Candidates of any other length are rejected.
func ExtractYouTubeID(rawURL string) (string, bool) {
	matches := youTubeIDPattern.FindAllStringSubmatch(rawURL, -1)
	if len(matches) == 0 {
		return "", false
	}
	id := matches[len(matches)-1][1]
	if len(id) != 11 {
		return "", false
	}
	return id, true
}

// ExtractVimeoID pulls the numeric video id from a vimeo.com URL, with or
// without a videos/video/channels path segment in front of it.
func ExtractVimeoID(rawURL string) (string, bool) {
	m := vimeoIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}
