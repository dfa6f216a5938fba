package api

import (
	"sort"
	"strings"
)

// Platform identifies a publishing destination supported by the vendor.
type Platform string

const (
	TikTok    Platform = "tiktok"
	Instagram Platform = "instagram"
	YouTube   Platform = "youtube"
	LinkedIn  Platform = "linkedin"
	Facebook  Platform = "facebook"
	Pinterest Platform = "pinterest"
	Threads   Platform = "threads"
	Reddit    Platform = "reddit"
	Bluesky   Platform = "bluesky"
	X         Platform = "x"
)

// AllPlatforms lists every destination the vendor can publish to.
var AllPlatforms = []Platform{
	TikTok, Instagram, YouTube, LinkedIn, Facebook,
	Pinterest, Threads, Reddit, Bluesky, X,
}

// uploadKind selects which variant of the upload form is being built.
// Several platform options are only valid for one variant.
type uploadKind int

const (
	kindVideo uploadKind = iota
	kindPhotos
	kindText
	kindDocument
)

func (k uploadKind) String() string {
	switch k {
	case kindVideo:
		return "video"
	case kindPhotos:
		return "photos"
	case kindText:
		return "text"
	default:
		return "document"
	}
}

// Supported platform sets per upload variant. These mirror the vendor's
// endpoint capabilities: video uploads cannot target Reddit, photo uploads
// cannot target YouTube, text posts are limited to the six text platforms,
// and document uploads are LinkedIn only.
var (
	videoPlatforms    = platformSet(TikTok, Instagram, YouTube, LinkedIn, Facebook, Pinterest, Threads, Bluesky, X)
	photoPlatforms    = platformSet(TikTok, Instagram, LinkedIn, Facebook, Pinterest, Threads, Reddit, Bluesky, X)
	textPlatforms     = platformSet(X, LinkedIn, Facebook, Threads, Reddit, Bluesky)
	documentPlatforms = platformSet(LinkedIn)
)

func platformSet(ps ...Platform) map[Platform]bool {
	set := make(map[Platform]bool, len(ps))
	for _, p := range ps {
		set[p] = true
	}
	return set
}

func supportedPlatforms(kind uploadKind) map[Platform]bool {
	switch kind {
	case kindVideo:
		return videoPlatforms
	case kindPhotos:
		return photoPlatforms
	case kindText:
		return textPlatforms
	default:
		return documentPlatforms
	}
}

func platformNames(set map[Platform]bool) []string {
	names := make([]string, 0, len(set))
	for p := range set {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return names
}

// PlatformNames returns the lowercase identifiers of every supported platform,
// sorted. Used by the CLI for completion and did-you-mean suggestions.
func PlatformNames() []string {
	names := make([]string, len(AllPlatforms))
	for i, p := range AllPlatforms {
		names[i] = string(p)
	}
	return names
}

// ParsePlatform normalizes a user-supplied platform identifier.
// It accepts any casing and the common "twitter" alias for x.
func ParsePlatform(s string) (Platform, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "twitter" {
		name = "x"
	}
	for _, p := range AllPlatforms {
		if name == string(p) {
			return p, nil
		}
	}
	return "", NewValidationError("platform", s, PlatformNames())
}

// ParsePlatforms normalizes a list of platform identifiers, rejecting the
// first unknown entry.
func ParsePlatforms(names []string) ([]Platform, error) {
	platforms := make([]Platform, 0, len(names))
	for _, name := range names {
		p, err := ParsePlatform(name)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

func containsPlatform(platforms []Platform, p Platform) bool {
	for _, candidate := range platforms {
		if candidate == p {
			return true
		}
	}
	return false
}

// tiktokOnly reports whether TikTok is the only requested destination.
// TikTok is the one platform that accepts untitled uploads.
func tiktokOnly(platforms []Platform) bool {
	if len(platforms) == 0 {
		return false
	}
	for _, p := range platforms {
		if p != TikTok {
			return false
		}
	}
	return true
}

// validateTargets applies the client-side checks shared by every upload
// variant: user and platforms are mandatory, every platform must be in the
// variant's supported set, and title is mandatory unless the request targets
// TikTok exclusively. These checks run before any network I/O.
func validateTargets(kind uploadKind, user, title string, platforms []Platform) error {
	if strings.TrimSpace(user) == "" {
		return NewMissingFieldError("user")
	}
	if len(platforms) == 0 {
		return NewMissingFieldError("platforms")
	}
	allowed := supportedPlatforms(kind)
	for _, p := range platforms {
		if !allowed[p] {
			return NewUnsupportedPlatformError(string(p), kind.String(), platformNames(allowed))
		}
	}
	if title == "" && !tiktokOnly(platforms) {
		return NewMissingFieldError("title")
	}
	return nil
}
