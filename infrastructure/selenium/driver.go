// Package selenium adapts a Selenium WebDriver session to the driver
// contract the ui core consumes.
package selenium

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"

	"pom/domain/entities"
	"pom/domain/interfaces"
	"pom/infrastructure/config"
)

// Driver owns a Selenium WebDriver session and the ChromeDriver service
// behind it. It implements interfaces.Session.
type Driver struct {
	wd      selenium.WebDriver
	service *selenium.Service
	logger  *logrus.Logger
}

// findChromeDriver - finds ChromeDriver executable path
func findChromeDriver(cfg *config.Config) (string, error) {
	if cfg.DriverPath != "" {
		if _, err := os.Stat(cfg.DriverPath); err == nil {
			return cfg.DriverPath, nil
		}
	}

	commonPaths := []string{
		"/usr/local/bin/chromedriver",
		"/usr/bin/chromedriver",
		"/opt/homebrew/bin/chromedriver",
		filepath.Join(os.Getenv("HOME"), "bin", "chromedriver"),
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("chromedriver not found. Please install it or set BROWSER_DRIVER_PATH environment variable")
}

// findChromeBinary - finds Chrome/Chromium browser executable path
func findChromeBinary(cfg *config.Config) string {
	if cfg.ChromeBinary != "" {
		if _, err := os.Stat(cfg.ChromeBinary); err == nil {
			return cfg.ChromeBinary
		}
	}

	chromePaths := []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
	}

	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	return ""
}

// NewDriver - starts ChromeDriver and opens a WebDriver session
func NewDriver(cfg *config.Config, logger *logrus.Logger) (*Driver, error) {
	driverPath, err := findChromeDriver(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to find chromedriver: %w", err)
	}
	logger.Infof("Using ChromeDriver at: %s", driverPath)

	chromeBinary := findChromeBinary(cfg)
	if chromeBinary != "" {
		logger.Infof("Using Chrome binary at: %s", chromeBinary)
	}

	service, err := selenium.NewChromeDriverService(driverPath, cfg.DriverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver: %w", err)
	}

	caps := selenium.Capabilities{
		"browserName": "chrome",
	}

	args := []string{
		"--disable-blink-features=AutomationControlled",
		"--disable-dev-shm-usage",
		"--no-sandbox",
	}
	if cfg.Headless {
		args = append(args, "--headless=new")
	}

	chromeCaps := chrome.Capabilities{
		Args: args,
	}
	if chromeBinary != "" {
		chromeCaps.Path = chromeBinary
	}
	caps.AddChrome(chromeCaps)

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", cfg.DriverPort))
	if err != nil {
		service.Stop()
		return nil, fmt.Errorf("failed to create webdriver: %w", err)
	}

	return &Driver{
		wd:      wd,
		service: service,
		logger:  logger,
	}, nil
}

// Navigate - navigates browser to specified URL
func (d *Driver) Navigate(url string) error {
	d.logger.Infof("Navigating to: %s", url)
	return d.wd.Get(url)
}

// FindNode - finds a single node on the page
func (d *Driver) FindNode(locator entities.Locator) (interfaces.Node, error) {
	el, err := d.wd.FindElement(locator.By, locator.Value)
	if err != nil {
		return nil, classify(err)
	}
	return &node{el: el, wd: d.wd}, nil
}

// FindNodes - finds all matching nodes on the page
func (d *Driver) FindNodes(locator entities.Locator) ([]interfaces.Node, error) {
	els, err := d.wd.FindElements(locator.By, locator.Value)
	if err != nil {
		return nil, classify(err)
	}
	nodes := make([]interfaces.Node, len(els))
	for i, el := range els {
		nodes[i] = &node{el: el, wd: d.wd}
	}
	return nodes, nil
}

// RunScript - executes a script in the page context
func (d *Driver) RunScript(script string, args ...interface{}) (interface{}, error) {
	return d.wd.ExecuteScript(script, args)
}

// Close - closes the session and stops the ChromeDriver service
func (d *Driver) Close() error {
	if d.wd != nil {
		d.wd.Quit()
		d.wd = nil
	}
	if d.service != nil {
		d.service.Stop()
		d.service = nil
	}
	return nil
}
