package sources

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"

	"github.com/nextwipe/wipetime/backend/config"
)

var chromeExecutablePath = func() string {
	if path, _ := exec.LookPath("google-chrome"); path != "" {
		return path
	}
	if path, _ := exec.LookPath("chromium"); path != "" {
		return path
	}
	return "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"
}()

// Browser owns one headless Chrome process shared across scraper calls.
// Acquiring a page health-checks the process and relaunches it when it has
// crashed or hung, so one bad run does not poison every later headless scrape.
type Browser struct {
	mu            sync.Mutex
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// NewBrowser returns an unstarted handle; Chrome launches lazily on first use.
func NewBrowser() *Browser {
	return &Browser{}
}

func (b *Browser) launchLocked() error {
	allocCtx, allocCancel := chromedp.NewExecAllocator(
		context.Background(),
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.ExecPath(chromeExecutablePath),
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return fmt.Errorf("failed to launch headless browser: %w", err)
	}

	b.allocCancel = allocCancel
	b.browserCtx = browserCtx
	b.browserCancel = browserCancel
	log.Info().Str("executable", chromeExecutablePath).Msg("Headless browser launched")
	return nil
}

// acquire returns a healthy browser context, relaunching Chrome if the
// current process no longer responds.
func (b *Browser) acquire() (context.Context, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browserCtx != nil {
		healthCtx, cancel := context.WithTimeout(b.browserCtx, 5*time.Second)
		err := chromedp.Run(healthCtx)
		cancel()
		if err == nil {
			return b.browserCtx, nil
		}
		log.Warn().Err(err).Msg("Headless browser unhealthy, relaunching")
		b.closeLocked()
	}

	if err := b.launchLocked(); err != nil {
		return nil, err
	}
	return b.browserCtx, nil
}

// Render navigates a fresh tab to the URL, waits for the DOM plus an extra
// settle delay for client-side rendering, and returns the page HTML. The tab
// is always closed before returning.
func (b *Browser) Render(ctx context.Context, url string, settle time.Duration) (string, error) {
	if !config.AppConfig.Scraper.BrowserEnabled {
		return "", fmt.Errorf("headless browser is disabled, cannot render %s", url)
	}

	browserCtx, err := b.acquire()
	if err != nil {
		return "", err
	}

	tabCtx, closeTab := chromedp.NewContext(browserCtx)
	defer closeTab()

	runCtx, cancel := context.WithTimeout(tabCtx, config.AppConfig.Scraper.BrowserTimeout)
	defer cancel()

	// Stop waiting early if the caller's context ends first.
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-runCtx.Done():
		}
	}()

	var html string
	err = chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.Sleep(settle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", url, err)
	}
	return html, nil
}

// Close shuts the browser down. Safe to call on an unstarted handle.
func (b *Browser) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closeLocked()
}

func (b *Browser) closeLocked() {
	if b.browserCancel != nil {
		b.browserCancel()
		b.browserCancel = nil
		b.browserCtx = nil
	}
	if b.allocCancel != nil {
		b.allocCancel()
		b.allocCancel = nil
	}
}
