package presenter

import (
	"context"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ysaito/ghfolio/internal/domain"
)

// ThumbnailState is the terminal state of the two-stage image resolution
// machine: try-primary → try-fallback → failed.
type ThumbnailState int

const (
	// ThumbPrimary means the repository's own screenshot resolved.
	ThumbPrimary ThumbnailState = iota
	// ThumbFallback means the screenshot was absent and the render
	// service URL is used instead.
	ThumbFallback
	// ThumbFailed means neither candidate resolved; the card renders
	// without an image.
	ThumbFailed
)

// Thumbnail is the resolved image source for one project card.
type Thumbnail struct {
	State ThumbnailState
	URL   string
}

// Resolver resolves card thumbnails by probing candidate URLs, replacing the
// markup-embedded onerror fallback chain with an explicit state machine.
// Probe failures never fail a load cycle; they only degrade the card.
type Resolver struct {
	client *http.Client
	logger *log.Logger
	limit  int

	// candidates yields the primary and fallback URL for a project.
	// Overridable so tests can point probes at a local server.
	candidates func(account string, p domain.Repository) (primary, fallback string)
}

// NewResolver creates a Resolver. Probes carry their own short timeout so a
// slow image host cannot stall rendering.
func NewResolver(logger *log.Logger) *Resolver {
	return &Resolver{
		client:     &http.Client{Timeout: 5 * time.Second},
		logger:     logger,
		limit:      4,
		candidates: defaultCandidates,
	}
}

func defaultCandidates(account string, p domain.Repository) (string, string) {
	return ScreenshotURL(account, p), RenderServiceURL(account, p)
}

// ResolveAll resolves one Thumbnail per project, in input order. Probes for
// different projects run in parallel, bounded by the resolver's limit.
func (r *Resolver) ResolveAll(ctx context.Context, account string, projects []domain.Repository) []Thumbnail {
	thumbs := make([]Thumbnail, len(projects))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.limit)
	for i, p := range projects {
		eg.Go(func() error {
			thumbs[i] = r.resolve(egCtx, account, p)
			return nil
		})
	}
	// Goroutines only record results, so Wait cannot fail.
	_ = eg.Wait()

	return thumbs
}

func (r *Resolver) resolve(ctx context.Context, account string, p domain.Repository) Thumbnail {
	primary, fallback := r.candidates(account, p)
	return r.resolveFrom(ctx, p.Name, primary, fallback)
}

// resolveFrom runs the two-stage machine over explicit candidate URLs.
func (r *Resolver) resolveFrom(ctx context.Context, name, primary, fallback string) Thumbnail {
	if r.probe(ctx, primary) {
		return Thumbnail{State: ThumbPrimary, URL: primary}
	}
	if r.probe(ctx, fallback) {
		return Thumbnail{State: ThumbFallback, URL: fallback}
	}
	r.logger.Printf("  No thumbnail resolved for %s", name)
	return Thumbnail{State: ThumbFailed}
}

// probe reports whether the URL answers with a success status.
func (r *Resolver) probe(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
