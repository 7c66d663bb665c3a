// Package playwright adapts a Playwright page to the driver contract the
// ui core consumes.
package playwright

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"pom/domain/entities"
	"pom/domain/interfaces"
	"pom/infrastructure/config"
)

// Driver owns a Playwright browser and a single page. It implements
// interfaces.Session.
type Driver struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	logger  *logrus.Logger
}

// NewDriver - launches Chromium and opens a page
func NewDriver(cfg *config.Config, logger *logrus.Logger) (*Driver, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	page, err := browser.NewPage()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return &Driver{
		pw:      pw,
		browser: browser,
		page:    page,
		logger:  logger,
	}, nil
}

// Navigate - navigates the page to specified URL
func (d *Driver) Navigate(url string) error {
	d.logger.Infof("Navigating to: %s", url)
	_, err := d.page.Goto(url)
	return err
}

// FindNode - finds a single node on the page
func (d *Driver) FindNode(locator entities.Locator) (interfaces.Node, error) {
	handle, err := d.page.QuerySelector(translate(locator))
	if err != nil {
		return nil, classify(err)
	}
	if handle == nil {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrNoSuchNode, locator)
	}
	return &node{handle: handle}, nil
}

// FindNodes - finds all matching nodes on the page
func (d *Driver) FindNodes(locator entities.Locator) ([]interfaces.Node, error) {
	handles, err := d.page.QuerySelectorAll(translate(locator))
	if err != nil {
		return nil, classify(err)
	}
	nodes := make([]interfaces.Node, len(handles))
	for i, handle := range handles {
		nodes[i] = &node{handle: handle}
	}
	return nodes, nil
}

// RunScript - executes a script in the page context
func (d *Driver) RunScript(script string, args ...interface{}) (interface{}, error) {
	if len(args) > 0 {
		return d.page.Evaluate(script, args[0])
	}
	return d.page.Evaluate(script)
}

// Close - closes the browser and stops playwright
func (d *Driver) Close() error {
	var closeErr error
	if d.browser != nil {
		if err := d.browser.Close(); err != nil {
			closeErr = fmt.Errorf("failed to close browser: %w", err)
		}
		d.browser = nil
	}
	if d.pw != nil {
		if err := d.pw.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop playwright: %w", err)
		}
		d.pw = nil
	}
	return closeErr
}
