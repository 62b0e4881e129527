package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/net2share/go-corelib/tui"
	"github.com/net2share/walletnet/internal/actions"
)

// TUIOutput writes action output to the terminal, or into a progress view
// while one is open.
type TUIOutput struct {
	progress *tui.ProgressView
}

// NewTUIOutput creates a new TUI output writer.
func NewTUIOutput() *TUIOutput {
	return &TUIOutput{}
}

type level int

const (
	levelText level = iota
	levelInfo
	levelSuccess
	levelWarning
	levelError
	levelStatus
)

// write sends msg to the open progress view, or prints it.
func (t *TUIOutput) write(l level, msg string) {
	if pv := t.progress; pv != nil {
		switch l {
		case levelInfo:
			pv.AddInfo(msg)
		case levelSuccess:
			pv.AddSuccess(msg)
		case levelWarning:
			pv.AddWarning(msg)
		case levelError:
			pv.AddError(msg)
		case levelStatus:
			pv.AddStatus(msg)
		default:
			pv.AddText(msg)
		}
		return
	}

	switch l {
	case levelInfo:
		tui.PrintInfo(msg)
	case levelSuccess:
		tui.PrintSuccess(msg)
	case levelWarning:
		tui.PrintWarning(msg)
	case levelError:
		tui.PrintError(msg)
	case levelStatus:
		tui.PrintStatus(msg)
	default:
		fmt.Println(msg)
	}
}

func (t *TUIOutput) Print(msg string) {
	if t.progress != nil {
		t.progress.AddText(msg)
		return
	}
	fmt.Print(msg)
}

func (t *TUIOutput) Printf(format string, args ...interface{}) {
	t.Print(fmt.Sprintf(format, args...))
}

func (t *TUIOutput) Println(args ...interface{}) {
	t.write(levelText, fmt.Sprint(args...))
}

func (t *TUIOutput) Info(msg string) { t.write(levelInfo, msg) }
func (t *TUIOutput) Success(msg string) { t.write(levelSuccess, msg) }
func (t *TUIOutput) Warning(msg string) { t.write(levelWarning, msg) }
func (t *TUIOutput) Error(msg string) { t.write(levelError, msg) }
func (t *TUIOutput) Status(msg string) { t.write(levelStatus, msg) }

func (t *TUIOutput) Step(current, total int, msg string) {
	if t.progress != nil {
		t.progress.AddInfo(fmt.Sprintf("[%d/%d] %s", current, total, msg))
		return
	}
	tui.PrintStep(current, total, msg)
}

func (t *TUIOutput) Box(title string, lines []string) {
	if t.progress == nil {
		tui.PrintBox(title, lines)
		return
	}
	if title != "" {
		t.progress.AddText(title)
	}
	for _, line := range lines {
		t.progress.AddText("  " + line)
	}
}

func (t *TUIOutput) KV(key, value string) string {
	return tui.KV(key+": ", value)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func (t *TUIOutput) Table(headers []string, rows [][]string) {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderBottom(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	out := tbl.String()
	if t.progress == nil {
		fmt.Println(out)
		return
	}
	for _, line := range strings.Split(out, "\n") {
		t.write(levelText, line)
	}
}

func (t *TUIOutput) ShowInfo(cfg actions.InfoConfig) error {
	out := tui.InfoConfig{Title: cfg.Title, Description: cfg.Description}
	for _, s := range cfg.Sections {
		section := tui.InfoSection{Title: s.Title}
		for _, r := range s.Rows {
			section.Rows = append(section.Rows, tui.InfoRow{Key: r.Key, Value: r.Value, Columns: r.Columns})
		}
		out.Sections = append(out.Sections, section)
	}
	return tui.ShowInfo(out)
}

func (t *TUIOutput) BeginProgress(title string) {
	t.progress = tui.NewProgressView(title)
}

func (t *TUIOutput) EndProgress() {
	if t.progress != nil {
		t.progress.Done()
		t.progress = nil
	}
}

var _ actions.OutputWriter = (*TUIOutput)(nil)
