// Package capture decides which browser downloads are redirected to a daemon
package capture

import (
	"net/url"
	"regexp"
	"strings"

	"aria2-integration/pkg/models"

	"github.com/samber/lo"
)

// AlwaysExcludedProtocols can never be fetched by a remote daemon
var AlwaysExcludedProtocols = []string{"blob:", "data:", "file:"}

// ExcludedProtocols returns the configured protocols plus the always
// excluded ones, each with a single trailing colon, without duplicates.
func ExcludedProtocols(configured []string) []string {
	normalized := lo.FilterMap(configured, func(p string, _ int) (string, bool) {
		p = strings.ToLower(strings.TrimRight(strings.TrimSpace(p), ":"))
		return p + ":", p != ""
	})
	return lo.Uniq(append(normalized, AlwaysExcludedProtocols...))
}

// FileTypesPattern compiles the excluded file types into one end-anchored
// alternation. Types are matched literally. It returns nil when no type is
// configured.
func FileTypesPattern(fileTypes []string) *regexp.Regexp {
	quoted := lo.FilterMap(fileTypes, func(ft string, _ int) (string, bool) {
		return regexp.QuoteMeta(ft), ft != ""
	})
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile("(?:" + strings.Join(lo.Uniq(quoted), "|") + ")$")
}

// hostExcluded matches the lowercased host against the entries as typed
func hostExcluded(host string, sites []string) bool {
	host = strings.ToLower(host)
	return lo.SomeBy(sites, func(site string) bool {
		return site != "" && strings.Contains(host, site)
	})
}

// ShouldCapture evaluates the exclusion rules in order and reports whether
// item must be redirected. referrer may be empty.
func ShouldCapture(opts *models.ExtensionOptions, item models.DownloadItem, referrer string) bool {
	if opts.CaptureServer == "" {
		return false
	}

	excludedProtocols := ExcludedProtocols(opts.ExcludedProtocols)
	fileTypes := FileTypesPattern(opts.ExcludedFileTypes)

	u, err := url.Parse(item.EffectiveURL)
	if err != nil || u.Scheme == "" {
		return false
	}
	var refererURL *url.URL
	if referrer != "" {
		if parsed, err := url.Parse(referrer); err == nil {
			refererURL = parsed
		}
	}

	if item.TotalBytes != models.UnknownSize && item.TotalBytes < opts.MinFileSizeInBytes {
		return false
	}

	if lo.Contains(excludedProtocols, u.Scheme+":") {
		return false
	}

	if hostExcluded(u.Hostname(), opts.ExcludedSites) {
		return false
	}

	if refererURL != nil && hostExcluded(refererURL.Hostname(), opts.ExcludedSites) {
		return false
	}

	if fileTypes != nil {
		if fileTypes.MatchString(u.Path) ||
			(refererURL != nil && fileTypes.MatchString(refererURL.Path)) ||
			fileTypes.MatchString(item.Filename) {
			return false
		}
	}

	return true
}

// FormatCookies renders cookies as a Cookie header value
func FormatCookies(cookies []models.Cookie) string {
	var b strings.Builder
	for _, c := range cookies {
		b.WriteString(c.Name)
		b.WriteByte('=')
		b.WriteString(c.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// SelectedURLs returns the link under the cursor, or the whitespace separated
// words of the selected text
func SelectedURLs(click models.MenuClick) []string {
	if click.LinkURL != "" {
		return []string{click.LinkURL}
	}
	if click.SelectionText != "" {
		return strings.Fields(click.SelectionText)
	}
	return []string{}
}
