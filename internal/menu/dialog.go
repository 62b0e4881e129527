package menu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/net2share/go-corelib/tui"
	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/dialog"
	"github.com/net2share/walletnet/internal/network"
	"github.com/net2share/walletnet/internal/server"
	"github.com/net2share/walletnet/internal/torprobe"
)

const (
	optHost       = "host"
	optPort       = "port"
	optSSL        = "ssl"
	optAuto       = "auto"
	optList       = "list"
	optProxyMode  = "proxy_mode"
	optProxyHost  = "proxy_host"
	optProxyPort  = "proxy_port"
	optProxyUser  = "proxy_user"
	optProxyPass  = "proxy_password"
	optTor        = "tor"
	optSave       = "save"
	optCancel     = "cancel"
	passwordShown = "********"
)

// RunNetworkDialog shows the network settings form. In wizard mode the form
// is the first-run server choice and can be skipped to stay offline.
func RunNetworkDialog(wizard bool) error {
	n, err := network.Open()
	if err != nil {
		return err
	}

	c := dialog.New(n, n.Config())
	c.Wizard = wizard

	probe := torprobe.New()
	probe.Logger = slog.Default()
	torCh := c.StartTorDetection(probe)

	for {
		// The probe delivers at most one endpoint; stop polling once the
		// channel yields or closes.
		select {
		case ep, ok := <-torCh:
			if ok {
				c.SuggestProxy(ep)
			}
			torCh = nil
		default:
		}

		title, saveLabel, cancelLabel := "Network", "Save", "Cancel"
		if wizard {
			title, saveLabel, cancelLabel = "Network Setup", "Next", "Skip (stay offline)"
		}

		description := ""
		if probe.State() == torprobe.StateRunning {
			description = "Looking for a local Tor proxy..."
		}

		options := dialogOptions(c)
		options = append(options,
			tui.MenuOption{Label: saveLabel, Value: optSave},
			tui.MenuOption{Label: cancelLabel, Value: optCancel},
		)

		choice, err := tui.RunMenu(tui.MenuConfig{
			Header:      c.Status(),
			Title:       title,
			Description: description,
			Options:     options,
		})
		if err != nil {
			return err
		}

		switch choice {
		case "", optCancel:
			return errCancelled
		case optSave:
			err := c.Accept()
			if err == nil {
				_ = tui.ShowMessage(tui.AppMessage{Type: "success", Message: "Network settings saved"})
				return nil
			}
			if errors.Is(err, server.ErrInvalidServerAddress) {
				err = actions.InvalidServerError(err)
			}
			showError(err)
		default:
			if err := handleDialogChoice(c, choice); err != nil {
				showError(err)
			}
		}
	}
}

func checkbox(v bool) string {
	if v {
		return actions.SymbolChecked
	}
	return actions.SymbolUnchecked
}

// dialogOptions renders the form fields as menu entries.
func dialogOptions(c *dialog.Choice) []tui.MenuOption {
	proxy := c.Proxy()

	options := []tui.MenuOption{
		{Label: fmt.Sprintf("%s Select server automatically", checkbox(c.AutoConnect())), Value: optAuto},
		{Label: fmt.Sprintf("Server: %s", c.Host()), Value: optHost},
		{Label: fmt.Sprintf("Port: %s", c.Port()), Value: optPort},
		{Label: fmt.Sprintf("%s Use SSL", checkbox(c.SSL())), Value: optSSL},
		{Label: fmt.Sprintf("%s (%s) %s", c.ServerListLabel(), c.Protocol().DisplayName(), actions.SymbolArrow), Value: optList},
		{Label: fmt.Sprintf("Proxy: %s", config.GetProxyModeDisplayName(proxy.Mode)), Value: optProxyMode},
	}

	if proxy.Enabled() {
		password := ""
		if proxy.Password != "" {
			password = passwordShown
		}
		options = append(options,
			tui.MenuOption{Label: fmt.Sprintf("  Host: %s", proxy.Host), Value: optProxyHost},
			tui.MenuOption{Label: fmt.Sprintf("  Port: %s", proxy.Port), Value: optProxyPort},
			tui.MenuOption{Label: fmt.Sprintf("  User: %s", proxy.User), Value: optProxyUser},
			tui.MenuOption{Label: fmt.Sprintf("  Password: %s", password), Value: optProxyPass},
		)
	}

	if _, checked, ok := c.TorSuggestion(); ok {
		options = append(options, tui.MenuOption{
			Label: fmt.Sprintf("%s %s", checkbox(checked), c.TorLabel()),
			Value: optTor,
		})
	}
	return options
}

var optionControls = map[string]dialog.Control{
	optHost:      dialog.ControlServerHost,
	optPort:      dialog.ControlServerPort,
	optSSL:       dialog.ControlSSL,
	optAuto:      dialog.ControlAutoConnect,
	optList:      dialog.ControlServerList,
	optProxyMode: dialog.ControlProxyMode,
	optProxyHost: dialog.ControlProxyHost,
	optProxyPort: dialog.ControlProxyPort,
	optProxyUser: dialog.ControlProxyUser,
	optProxyPass: dialog.ControlProxyPassword,
	optTor:       dialog.ControlProxyMode,
}

// handleDialogChoice forwards a menu pick to the form.
func handleDialogChoice(c *dialog.Choice, choice string) error {
	if ctl, ok := optionControls[choice]; ok && !c.Enabled(ctl) {
		msg := "This setting is locked"
		if c.AutoConnect() && (ctl == dialog.ControlServerHost || ctl == dialog.ControlServerPort || ctl == dialog.ControlServerList) {
			msg = "Turn off automatic server selection to choose a server"
		}
		return tui.ShowMessage(tui.AppMessage{Type: "info", Message: msg})
	}

	switch choice {
	case optAuto:
		c.SetAutoConnect(!c.AutoConnect())
	case optSSL:
		c.ChangeProtocol(!c.SSL())
	case optHost:
		return promptField("Server", "Server host name or IP address", c.Host(), false, c.SetHost)
	case optPort:
		return promptField("Port", "Server port", c.Port(), false, c.SetPort)
	case optList:
		return pickServer(c)
	case optProxyMode:
		return pickProxyMode(c)
	case optProxyHost:
		return promptField("Proxy host", "", c.Proxy().Host, false, c.SetProxyHost)
	case optProxyPort:
		return promptField("Proxy port", "", c.Proxy().Port, false, c.SetProxyPort)
	case optProxyUser:
		return promptField("Proxy user", "Leave empty for none", c.Proxy().User, false, c.SetProxyUser)
	case optProxyPass:
		return promptField("Proxy password", "Leave empty for none", c.Proxy().Password, true, c.SetProxyPassword)
	case optTor:
		_, checked, _ := c.TorSuggestion()
		c.UseTorProxy(!checked)
	}
	return nil
}

func promptField(title, description, value string, password bool, set func(string)) error {
	val, confirmed, err := tui.RunInput(tui.InputConfig{
		Title:       title,
		Description: description,
		Value:       value,
		Password:    password,
	})
	if err != nil {
		return err
	}
	if confirmed {
		set(val)
	}
	return nil
}

func pickServer(c *dialog.Choice) error {
	var options []tui.MenuOption
	for _, it := range c.ServerList() {
		label := it.Host
		if it.Pruning != "" {
			label = fmt.Sprintf("%s (pruning %s)", it.Host, it.Pruning)
		}
		options = append(options, tui.MenuOption{Label: label, Value: it.Host})
	}
	options = append(options, tui.MenuOption{Label: "Back", Value: ""})

	host, err := tui.RunMenu(tui.MenuConfig{
		Title:   c.ServerListLabel(),
		Options: options,
	})
	if err != nil {
		return err
	}
	c.SelectServer(host)
	return nil
}

func pickProxyMode(c *dialog.Choice) error {
	var options []tui.MenuOption
	for _, opt := range actions.ProxyModeOptions() {
		options = append(options, tui.MenuOption{Label: opt.Label, Value: opt.Value})
	}

	mode, err := tui.RunMenu(tui.MenuConfig{
		Title:   "Proxy mode",
		Options: options,
	})
	if err != nil || mode == "" {
		return err
	}
	c.SetProxyMode(config.ProxyMode(mode))
	return nil
}
