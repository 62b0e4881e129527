// Package menu provides the interactive menu for walletnet.
package menu

import (
	"errors"
	"fmt"
	"os"

	"github.com/net2share/go-corelib/osdetect"
	"github.com/net2share/go-corelib/tui"
	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/network"
)

// errCancelled is returned when user cancels/backs out.
var errCancelled = errors.New("cancelled")

// Version and BuildTime are set by cmd package.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const walletnetBanner = `
               _ _      _              _
__      ____ _| | | ___| |_ _ __   ___| |_
\ \ /\ / / _` + "`" + ` | | |/ _ \ __| '_ \ / _ \ __|
 \ V  V / (_| | | |  __/ |_| | | |  __/ |_
  \_/\_/ \__,_|_|_|\___|\__|_| |_|\___|\__|
`

// PrintBanner displays the walletnet banner with version info.
func PrintBanner() {
	tui.PrintBanner(tui.BannerConfig{
		AppName:   "Wallet Network Settings",
		Version:   Version,
		BuildTime: BuildTime,
		ASCII:     walletnetBanner,
	})
}

// buildStatusSummary builds the one-line status for the main menu header.
func buildStatusSummary() string {
	n, err := network.Open()
	if err != nil {
		return fmt.Sprintf("%s Config error: %v", actions.SymbolWarning, err)
	}

	p := n.GetParameters()
	conn := actions.SymbolDisconnected + " Disconnected"
	if n.IsConnected() {
		conn = fmt.Sprintf("%s Connected | Height: %d", actions.SymbolConnected, n.GetLocalHeight())
	}

	selection := "auto"
	if !p.AutoConnect {
		selection = "manual"
	}

	summary := fmt.Sprintf("%s | Server: %s (%s, %s)", conn, p.Address().HostPort(), p.Transport.DisplayName(), selection)
	if p.Proxy.Enabled() {
		summary += " | Proxy: " + p.Proxy.Redacted()
	}
	return summary
}

// RunInteractive shows the main interactive menu.
func RunInteractive() error {
	PrintBanner()

	osInfo, err := osdetect.Detect()
	if err != nil {
		tui.PrintWarning("Could not detect OS: " + err.Error())
	} else {
		tui.PrintInfo(fmt.Sprintf("Detected OS: %s", osInfo.PrettyName))
	}
	tui.PrintInfo(fmt.Sprintf("Architecture: %s", osdetect.GetArch()))

	if _, err := os.Stat(config.Path()); errors.Is(err, os.ErrNotExist) {
		showError(RunNetworkDialog(true))
	}

	return runMainMenu()
}

func runMainMenu() error {
	for {
		options := []tui.MenuOption{
			{Label: "Network Settings", Value: "dialog"},
			{Label: "Status", Value: actions.ActionNetworkShow},
			{Label: "Servers", Value: actions.ActionNetworkServers},
			{Label: "Proxy " + actions.SymbolArrow, Value: actions.ActionProxy},
			{Label: "Configure " + actions.SymbolArrow, Value: actions.ActionConfig},
			{Label: "Check Updates", Value: actions.ActionUpdate},
			{Label: "Exit", Value: "exit"},
		}

		choice, err := tui.RunMenu(tui.MenuConfig{
			Header:  buildStatusSummary(),
			Title:   "Wallet Network",
			Options: options,
		})
		if err != nil {
			return err
		}
		if choice == "" || choice == "exit" {
			return nil
		}

		showError(handleMainMenuChoice(choice))
	}
}

func handleMainMenuChoice(choice string) error {
	if choice == "dialog" {
		return RunNetworkDialog(false)
	}
	if action := actions.Get(choice); action != nil && action.IsSubmenu {
		return RunSubmenu(choice)
	}
	return RunAction(choice)
}
