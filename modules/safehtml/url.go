// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import "strings"

// urlScheme returns the lower-cased scheme of link, or "" for a relative link
func urlScheme(link string) string {
	colon := strings.IndexByte(link, ':')
	if colon < 0 {
		return ""
	}
	// a colon after a path, query or fragment delimiter does not end a scheme
	if strings.ContainsAny(link[:colon], "/?#") {
		return ""
	}
	return strings.ToLower(link[:colon])
}

// IsSafeURL reports whether link is relative or uses the http, https or mailto scheme
func IsSafeURL(link string) bool {
	switch urlScheme(link) {
	case "", "http", "https", "mailto":
		return true
	}
	return false
}

func hasLinkScheme(link string) bool {
	switch urlScheme(link) {
	case "", "http", "https":
		return true
	}
	return false
}
