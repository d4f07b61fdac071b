// Package rod implements browser-backed fetching with go-rod. The fetcher
// owns one headless Chrome session and one page object, reused
// sequentially across URLs.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/api2md"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements api2md.Fetcher at compile time.
var _ api2md.Fetcher = (*Fetcher)(nil)

// DefaultUserAgent is the request user-agent sent with every navigation.
// Documentation sites occasionally serve degraded markup to unknown
// agents, so a mainstream desktop Chrome string is pinned.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Default timing bounds for navigation and collapsible revelation.
const (
	DefaultNavTimeout   = 30 * time.Second
	DefaultIdleTimeout  = 5 * time.Second
	DefaultClickTimeout = time.Second
	DefaultSettleDelay  = 500 * time.Millisecond
	DefaultFinalSettle  = 2 * time.Second
)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Between navigation and capture it runs the collapsible
// revelation pass so content hidden behind disclosure widgets reaches the
// serialized markup.
//
// The single page object is the only shared mutable resource; Fetch is
// serialized by a mutex and every navigation fully resets DOM state, so
// no state carries over between URLs.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher

	mu   sync.Mutex
	page *rod.Page

	navTimeout   time.Duration
	idleTimeout  time.Duration
	clickTimeout time.Duration
	settleDelay  time.Duration
	finalSettle  time.Duration
	userAgent    string
	heuristics   []api2md.RevealHeuristic
	observer     api2md.RevealObserverFunc
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithNavTimeout bounds navigation plus load waiting per URL.
func WithNavTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.navTimeout = d }
}

// WithIdleTimeout bounds the best-effort wait for network idle after load.
// Reaching the bound is not an error.
func WithIdleTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.idleTimeout = d }
}

// WithClickTimeout bounds each simulated activation during revelation.
func WithClickTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.clickTimeout = d }
}

// WithSettleDelay sets the pause after each successful click, allowing
// expansion transitions to run.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) { f.settleDelay = d }
}

// WithFinalSettle sets the fixed wait after all heuristics have run.
func WithFinalSettle(d time.Duration) Option {
	return func(f *Fetcher) { f.finalSettle = d }
}

// WithUserAgent overrides the request user-agent string.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithRevealHeuristics replaces the default reveal heuristic list.
func WithRevealHeuristics(hs []api2md.RevealHeuristic) Option {
	return func(f *Fetcher) { f.heuristics = hs }
}

// WithRevealObserver registers a callback receiving each heuristic's
// outcome.
func WithRevealObserver(fn api2md.RevealObserverFunc) Option {
	return func(f *Fetcher) { f.observer = fn }
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		navTimeout:   DefaultNavTimeout,
		idleTimeout:  DefaultIdleTimeout,
		clickTimeout: DefaultClickTimeout,
		settleDelay:  DefaultSettleDelay,
		finalSettle:  DefaultFinalSettle,
		userAgent:    DefaultUserAgent,
		heuristics:   api2md.DefaultRevealHeuristics(),
	}
	for _, opt := range opts {
		opt(f)
	}

	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = lnchr
	return f, nil
}

// Fetch navigates to the URL, reveals collapsed content, and returns the
// rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.acquirePage()
	if err != nil {
		return "", err
	}

	if err := f.navigate(ctx, page, url); err != nil {
		return "", err
	}

	// Revelation is advisory: whatever it could not expand stays hidden
	// and the pipeline continues with the content that is present.
	f.reveal(ctx, page)

	if err := sleep(ctx, f.finalSettle); err != nil {
		return "", err
	}

	html, err := page.Context(ctx).HTML()
	if err != nil {
		return "", err
	}
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
		f.page = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// acquirePage lazily creates the single reused page and pins the
// user-agent override. Must be called with mu held.
func (f *Fetcher) acquirePage() (*rod.Page, error) {
	if f.page != nil {
		return f.page, nil
	}
	if f.browser == nil {
		return nil, api2md.Errorf(api2md.EUNAVAILABLE, "browser session closed")
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			_ = page.Close()
			return nil, fmt.Errorf("setting user agent: %w", err)
		}
	}

	f.page = page
	return page, nil
}

// navigate loads the URL and waits for load plus a bounded best-effort
// network idle. Reaching the idle bound is not an error.
func (f *Fetcher) navigate(ctx context.Context, page *rod.Page, url string) error {
	navCtx, cancel := context.WithTimeout(ctx, f.navTimeout)
	defer cancel()

	p := page.Context(navCtx)
	if err := p.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("waiting for load of %s: %w", url, err)
	}

	idleCtx, cancelIdle := context.WithTimeout(navCtx, f.idleTimeout)
	defer cancelIdle()
	wait := page.Context(idleCtx).WaitRequestIdle(300*time.Millisecond, nil, nil, nil)
	wait()

	return nil
}

// reveal runs every heuristic in order against the live page. Each
// element's failure to expand is swallowed; it aborts neither the
// remaining elements nor the remaining heuristics.
func (f *Fetcher) reveal(ctx context.Context, page *rod.Page) {
	p := page.Context(ctx)

	for _, h := range f.heuristics {
		if ctx.Err() != nil {
			return
		}

		attempt := api2md.RevealAttempt{Heuristic: h.Name}

		var elements rod.Elements
		var err error
		if h.XPath != "" {
			elements, err = p.ElementsX(h.XPath)
		} else {
			elements, err = p.Elements(h.CSS)
		}
		if err != nil {
			attempt.Err = err
			f.observe(attempt)
			continue
		}

		attempt.Matched = len(elements)
		for _, el := range elements {
			if ctx.Err() != nil {
				break
			}
			if f.expand(ctx, el, h.Action) {
				attempt.Expanded++
			}
		}

		f.observe(attempt)
	}
}

// expand attempts a single element expansion and reports success.
func (f *Fetcher) expand(ctx context.Context, el *rod.Element, action api2md.RevealAction) bool {
	switch action {
	case api2md.RevealOpen:
		_, err := el.Timeout(f.clickTimeout).Eval(`() => this.setAttribute("open", "")`)
		return err == nil
	default:
		if err := el.Timeout(f.clickTimeout).Click(proto.InputMouseButtonLeft, 1); err != nil {
			return false
		}
		// Let any expansion transition or animation run.
		_ = sleep(ctx, f.settleDelay)
		return true
	}
}

func (f *Fetcher) observe(attempt api2md.RevealAttempt) {
	if f.observer != nil {
		f.observer(attempt)
	}
}

// sleep waits for d or until the context is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
