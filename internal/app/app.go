// Package app implements the application layer for lunchcal: the weekly
// pipeline from scraped menu to hosted calendar, plus the on-demand
// exports built on top of it.
package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/lunchcal/internal/adapters/export"
	"go.trai.ch/lunchcal/internal/adapters/scraper"
	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/lunchcal/internal/core/ports"
	"go.trai.ch/lunchcal/internal/engine/compositor"
	"go.trai.ch/lunchcal/internal/engine/imagecache"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cache      *imagecache.Cache
	compositor *compositor.Compositor
	scraper    ports.MenuScraper
	store      ports.ObjectStore
	meta       ports.MetadataStore
	pdf        *export.PDFExporter
	mailer     *export.Mailer
	logger     ports.Logger
	clock      ports.Clock
}

// New creates a new App instance.
func New(
	cache *imagecache.Cache,
	comp *compositor.Compositor,
	menuScraper ports.MenuScraper,
	store ports.ObjectStore,
	meta ports.MetadataStore,
	pdf *export.PDFExporter,
	mailer *export.Mailer,
	log ports.Logger,
	clock ports.Clock,
) *App {
	return &App{
		cache:      cache,
		compositor: comp,
		scraper:    menuScraper,
		store:      store,
		meta:       meta,
		pdf:        pdf,
		mailer:     mailer,
		logger:     log,
		clock:      clock,
	}
}

// GenerateCalendar runs the weekly pipeline over an already parsed menu:
// ensure a cached or fresh image per day, compose the calendar, upload it,
// and persist the menu document. The caller's menu is never mutated; image
// URLs land on copies. A failed composite upload is a hard error, unlike
// the per-day image failures inside EnsureImage.
func (a *App) GenerateCalendar(ctx context.Context, menu domain.WeekMenu, weekID domain.WeekID) (string, error) {
	if len(menu) == 0 {
		return "", domain.ErrEmptyMenu
	}

	items := menu.Ordered()
	for i := range items {
		url, err := a.cache.EnsureImage(ctx, items[i], weekID)
		if err != nil {
			return "", err
		}
		items[i].ImageURL = url
	}

	data, err := a.compositor.ComposePNG(ctx, items)
	if err != nil {
		return "", zerr.Wrap(err, "failed to compose calendar")
	}

	calendarURL, err := a.store.Upload(ctx, domain.CalendarPath(weekID), data, "image/png")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrUploadFailed.Error())
	}

	stored := make(domain.WeekMenu, len(items))
	for _, item := range items {
		stored[item.Day] = item
	}
	doc := domain.MenuDocument{
		WeekID:      weekID,
		Items:       stored,
		CalendarURL: calendarURL,
		CreatedAt:   a.clock.Now(),
	}
	if err := a.meta.PutMenu(doc); err != nil {
		return "", zerr.Wrap(err, "failed to persist menu document")
	}

	a.logger.Info(fmt.Sprintf("calendar for %s ready at %s", weekID, calendarURL))
	return calendarURL, nil
}

// ScrapeWeek scrapes the menu page and parses it into a dated week menu.
func (a *App) ScrapeWeek(ctx context.Context, url string, offset int) (domain.WeekMenu, error) {
	if url == "" {
		return nil, domain.ErrMissingURL
	}

	raw, err := a.scraper.Scrape(ctx, url)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, zerr.With(domain.ErrScrapeFailed, "url", url)
	}

	return scraper.ParseMenuData(raw, a.clock.Now(), offset), nil
}

// ScrapeToday scrapes the menu page and returns today's item.
func (a *App) ScrapeToday(ctx context.Context, url string) (*domain.MenuItem, error) {
	menu, err := a.ScrapeWeek(ctx, url, 0)
	if err != nil {
		return nil, err
	}

	todayKey := strings.ToLower(a.clock.Now().Weekday().String())
	item, ok := menu[todayKey]
	if !ok {
		return nil, zerr.With(domain.ErrDayNotFound, "day", todayKey)
	}
	return &item, nil
}

// ExportPDF renders the menu as a printable PDF and uploads it.
func (a *App) ExportPDF(ctx context.Context, menu domain.WeekMenu, weekID domain.WeekID) (string, error) {
	return a.pdf.CreateAndUpload(ctx, menu, weekID)
}

// SendEmail mails the recipient links to the week's artifacts.
func (a *App) SendEmail(recipient, calendarURL, pdfURL string, weekID domain.WeekID) error {
	return a.mailer.SendMenu(recipient, calendarURL, pdfURL, weekID)
}

// GetMenu returns the stored menu document for a week.
func (a *App) GetMenu(weekID domain.WeekID) (*domain.MenuDocument, error) {
	doc, err := a.meta.GetMenu(weekID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, zerr.With(domain.ErrMenuNotFound, "week_id", weekID.String())
	}
	return doc, nil
}

// CurrentWeek returns the identifier of the week containing today, shifted
// by offset weeks.
func (a *App) CurrentWeek(offset int) domain.WeekID {
	return domain.WeekIDFor(a.clock.Now(), offset)
}
