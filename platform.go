package tldr

import "strings"

// Platform identifies a directory of pages inside a language tree.
type Platform string

// Known platforms. PlatformCommon holds pages that apply everywhere.
const (
	PlatformLinux   Platform = "linux"
	PlatformOSX     Platform = "osx"
	PlatformWindows Platform = "windows"
	PlatformSunOS   Platform = "sunos"
	PlatformCommon  Platform = "common"
)

// DefaultPlatform is used when the configuration names no valid platform.
const DefaultPlatform = PlatformWindows

// Platforms lists the selectable platforms in their fixed order.
// PlatformCommon is not selectable.
var Platforms = []Platform{PlatformLinux, PlatformOSX, PlatformWindows, PlatformSunOS}

// ParsePlatform returns the platform named by s, ignoring case.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Platforms {
		if p == known {
			return p, nil
		}
	}
	return "", Errorf(EINVALIDOPTIONS, "The platform %q is either incorrect or not yet supported.", s)
}

// PlatformSearchOrder returns the platforms to search for a page, most
// preferred first: the requested platform, then common, then every other
// known platform in fixed order.
func PlatformSearchOrder(requested Platform) []Platform {
	order := make([]Platform, 0, len(Platforms)+1)
	order = append(order, requested, PlatformCommon)
	for _, p := range Platforms {
		if p != requested {
			order = append(order, p)
		}
	}
	return order
}
