// Package demo wires the framework end to end against a live browser: it
// declares a login page with the widget types, binds it to the configured
// driver adapter and walks through a sign-in flow.
package demo

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"pom/application/ui"
	"pom/application/widgets"
	"pom/domain/entities"
	"pom/domain/interfaces"
	"pom/infrastructure/config"
	"pom/infrastructure/playwright"
	"pom/infrastructure/selenium"
)

// driver is the adapter surface the demo needs beyond the core contract.
type driver interface {
	interfaces.Session
	Navigate(url string) error
	Close() error
}

var loginUI = ui.RegisterUI(map[string]ui.Declaration{
	"username": widgets.NewTextField(entities.ByID, "username"),
	"password": widgets.NewTextField(entities.ByID, "password"),
	"remember": widgets.NewCheckBox(entities.ByName, "remember-me"),
	"submit":   widgets.NewButton(entities.ByID, "submit-btn"),
	"error":    ui.New(entities.ByClass, "login-error"),
})

// LoginPage is the demo's page object.
type LoginPage struct {
	ui.Container
}

// NewLoginPage binds a login page to a driver session.
func NewLoginPage(session interfaces.Session) *LoginPage {
	page := &LoginPage{}
	page.Init(session, loginUI)
	return page
}

func (p *LoginPage) Username() *widgets.TextField {
	return ui.Get[*widgets.TextField](p, "username")
}

func (p *LoginPage) Password() *widgets.TextField {
	return ui.Get[*widgets.TextField](p, "password")
}

func (p *LoginPage) Remember() *widgets.CheckBox {
	return ui.Get[*widgets.CheckBox](p, "remember")
}

func (p *LoginPage) Submit() *widgets.Button {
	return ui.Get[*widgets.Button](p, "submit")
}

func (p *LoginPage) LoginError() *ui.Element {
	return ui.Get[*ui.Element](p, "error")
}

// newDriver builds the adapter the configuration selects.
func newDriver(cfg *config.Config, logger *logrus.Logger) (driver, error) {
	switch cfg.Driver {
	case config.DriverSelenium:
		d, err := selenium.NewDriver(cfg, logger)
		if err != nil {
			return nil, err
		}
		return d, nil
	case config.DriverPlaywright:
		d, err := playwright.NewDriver(cfg, logger)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, fmt.Errorf("unknown driver %q: valid kinds are %q and %q",
		cfg.Driver, config.DriverSelenium, config.DriverPlaywright)
}

// Run executes the demo flow against the configured driver.
func Run() error {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	ui.SetLogger(logger)

	drv, err := newDriver(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize driver: %w", err)
	}
	defer drv.Close()

	if err := drv.Navigate(cfg.BaseURL); err != nil {
		return fmt.Errorf("failed to open %s: %w", cfg.BaseURL, err)
	}

	page := NewLoginPage(drv)

	if err := page.Username().SetValue("demo"); err != nil {
		return err
	}
	if err := page.Password().SetValue("demo"); err != nil {
		return err
	}
	if err := page.Remember().Select(); err != nil {
		return err
	}
	if err := page.Submit().Click(); err != nil {
		return err
	}

	if err := page.LoginError().WaitForAbsence(cfg.Timeout); err != nil {
		message, _ := page.LoginError().Value()
		return fmt.Errorf("login failed: %s: %w", message, err)
	}

	logger.Info("Signed in")
	return nil
}
