package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"silver-advisor/internal/types"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Options struct {
	Format string
	Color  bool
}

// Write renders the result to w in the requested format
func Write(w io.Writer, res *types.Result, opts Options) error {
	var out string
	switch opts.Format {
	case FormatJSON:
		b, err := JSON(res)
		if err != nil {
			return err
		}
		out = string(b) + "\n"
	case FormatText, "":
		if opts.Color {
			out = Styled(res) + "\n"
		} else {
			out = Text(res)
		}
	default:
		return fmt.Errorf("unknown report format %q", opts.Format)
	}
	_, err := io.WriteString(w, out)
	return err
}

// Text is the plain report, also used as the notification body
func Text(res *types.Result) string {
	var b strings.Builder
	for _, l := range lines(res) {
		if l.key == "" {
			b.WriteString("\n")
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", l.key, l.value)
	}
	return b.String()
}

// Styled is the terminal report with the action and watch highlighted
func Styled(res *types.Result) string {
	rows := make([]string, 0, 8)
	for _, l := range lines(res) {
		if l.key == "" {
			rows = append(rows, "")
			continue
		}
		value := l.value
		if l.style != nil {
			value = l.style.Render(value)
		}
		rows = append(rows, labelStyle.Render(l.key+":")+" "+value)
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func JSON(res *types.Result) ([]byte, error) {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return b, nil
}

type line struct {
	key   string
	value string
	style *lipgloss.Style
}

func lines(res *types.Result) []line {
	actionStyle := &holdStyle
	if res.Action == types.ActionSell {
		actionStyle = &sellStyle
	}
	var indiaStyle *lipgloss.Style
	if res.WatchHeadline != nil {
		indiaStyle = &watchStyle
	}
	var momentumStyle *lipgloss.Style
	if res.Momentum == types.MomentumUnknown {
		momentumStyle = &mutedStyle
	}

	return []line{
		{key: "ETF vs NAV", value: fmt.Sprintf("%.2f%% (%s)", res.PremiumPct, res.PremiumDirection)},
		{key: "Silver Trend", value: string(res.SilverLabel)},
		{key: "USD Trend", value: string(res.USDLabel)},
		{key: "India News", value: res.WatchSummary, style: indiaStyle},
		{key: "Silver Momentum", value: string(res.Momentum), style: momentumStyle},
		{},
		{key: "FINAL ACTION", value: string(res.Action), style: actionStyle},
		{key: "REASON", value: res.Reason},
	}
}
