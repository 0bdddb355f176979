// Package presenter derives the display attributes of a project card:
// demo and thumbnail URLs plus timestamp formatting.
package presenter

import (
	"fmt"
	"strings"
	"time"

	"github.com/ysaito/ghfolio/internal/domain"
)

// renderServiceBase is the third-party URL-to-image service used when a
// repository ships no screenshot of its own.
const renderServiceBase = "https://image.thum.io/get/width/600/crop/800"

// DemoURL picks the link a card points at: the explicit homepage when
// present, a derived GitHub Pages URL when the repository declares pages
// capability, and the canonical repository URL otherwise.
//
// The root-pages repository ({account}.github.io) maps to the account's
// root pages URL rather than a subpath.
func DemoURL(account string, r domain.Repository) string {
	if r.Homepage != "" {
		return r.Homepage
	}
	if r.HasPages {
		if strings.EqualFold(r.Name, account+".github.io") {
			return fmt.Sprintf("https://%s.github.io/", account)
		}
		return fmt.Sprintf("https://%s.github.io/%s/", account, r.Name)
	}
	return r.HTMLURL
}

// ScreenshotURL is the conventional screenshot location inside the
// repository, on its default branch.
func ScreenshotURL(account string, r domain.Repository) string {
	branch := r.DefaultBranch
	if branch == "" {
		branch = "main"
	}
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/screenshot.png", account, r.Name, branch)
}

// RenderServiceURL is the fallback thumbnail: a third-party render of the
// demo URL, or of the canonical repository URL when no demo target exists.
func RenderServiceURL(account string, r domain.Repository) string {
	target := DemoURL(account, r)
	if target == "" {
		target = r.HTMLURL
	}
	return fmt.Sprintf("%s/%s", renderServiceBase, target)
}

// FormatUpdatedAt renders the last-updated instant in the short date form
// shown on cards.
func FormatUpdatedAt(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
