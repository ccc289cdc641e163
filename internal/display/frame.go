package display

import (
	"fmt"
	"strings"
	"time"

	"nsqtop/internal/models"
)

// Severity classifies a row's backlog depth against the configured
// thresholds.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityCritical
)

// Thresholds holds the depth levels at which a channel is flagged.
type Thresholds struct {
	Warn int64
	Crit int64
}

var DefaultThresholds = Thresholds{Warn: 100, Crit: 1000}

func (t Thresholds) Classify(depth int64) Severity {
	switch {
	case depth >= t.Crit:
		return SeverityCritical
	case depth >= t.Warn:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// Row is one rendered channel line. Cells are pre-padded to their column
// widths; the renderer only joins them with separators and applies color.
type Row struct {
	Name     string
	Depth    string
	InFlight string
	RateSec  string
	RateMin  string
	Severity Severity
}

// Frame is everything the renderer draws for one cycle.
type Frame struct {
	Header    string
	Error     string // non-empty renders a banner instead of the table
	Summary   string
	Separator string
	HeaderRow string
	Rows      []Row
	Omitted   int
	Footer    string
}

// FrameInput carries one cycle's results plus the screen geometry into the
// layout pass.
type FrameInput struct {
	Channels        []*models.AggregatedChannel
	TotalDepth      int64
	TotalInFlight   int64
	History         []int64
	LookupAddresses []string
	Err             string
	Width           int
	Height          int
	Now             time.Time
	Thresholds      Thresholds
}

// Fixed numeric column widths; the name column absorbs whatever remains.
const (
	depthWidth    = 9
	inFlightWidth = 9
	rateSecWidth  = 8
	rateMinWidth  = 8
	minNameWidth  = 25

	screenMargin    = 6
	separatorBudget = 10

	// Lines spent on header, summary, table chrome, omitted line and footer.
	reservedLines = 12
)

// BuildFrame lays the cycle's data out against the available screen
// geometry: it sizes columns to fill the width, truncates the channel list
// to the rows that fit the height, and classifies each row's severity.
func BuildFrame(input FrameInput) *Frame {
	frame := &Frame{
		Header: buildHeader(input.Now, input.LookupAddresses),
		Footer: "Press Ctrl+C to exit",
	}

	if input.Err != "" {
		frame.Error = "Error: " + input.Err
		return frame
	}

	frame.Summary = fmt.Sprintf("Total Depth: %s | Total In-Flight: %s | Channels: %d | Trend: %s",
		formatCount(input.TotalDepth), formatCount(input.TotalInFlight),
		len(input.Channels), Sparkline(input.History))

	nameWidth := input.Width - screenMargin - separatorBudget -
		depthWidth - inFlightWidth - rateSecWidth - rateMinWidth
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}

	frame.Separator = "+" + strings.Repeat("-", nameWidth+2) +
		"+" + strings.Repeat("-", depthWidth+2) +
		"+" + strings.Repeat("-", inFlightWidth+2) +
		"+" + strings.Repeat("-", rateSecWidth+2) +
		"+" + strings.Repeat("-", rateMinWidth+2) + "+"
	frame.HeaderRow = joinCells(
		padRight("Topic/Channel", nameWidth),
		padLeft("Depth", depthWidth),
		padLeft("In-Flight", inFlightWidth),
		padLeft("Rate/sec", rateSecWidth),
		padLeft("Rate/min", rateMinWidth),
	)

	maxRows := input.Height - reservedLines
	if maxRows < 0 {
		maxRows = 0
	}

	for _, channel := range input.Channels {
		if len(frame.Rows) >= maxRows {
			break
		}
		frame.Rows = append(frame.Rows, buildRow(channel, nameWidth, input.Thresholds))
	}
	frame.Omitted = len(input.Channels) - len(frame.Rows)

	return frame
}

func buildRow(channel *models.AggregatedChannel, nameWidth int, thresholds Thresholds) Row {
	name := truncateLeading(channel.Key(), nameWidth)

	rateSec := "--"
	if channel.RatePerSecond > 0 {
		rateSec = fmt.Sprintf("%.1f", channel.RatePerSecond)
	}
	rateMin := "--"
	if channel.RatePerMinute > 0 {
		rateMin = fmt.Sprintf("%.0f", channel.RatePerMinute)
	}

	return Row{
		Name:     padRight(name, nameWidth),
		Depth:    padLeft(formatCount(channel.Depth), depthWidth),
		InFlight: padLeft(formatCount(channel.InFlightCount), inFlightWidth),
		RateSec:  padLeft(rateSec, rateSecWidth),
		RateMin:  padLeft(rateMin, rateMinWidth),
		Severity: thresholds.Classify(channel.Depth),
	}
}

func buildHeader(now time.Time, addresses []string) string {
	lookupDisplay := strings.Join(addresses, ", ")
	if len(addresses) > 3 {
		lookupDisplay = fmt.Sprintf("%d servers", len(addresses))
	}
	return fmt.Sprintf(" NSQ Top - %s - Connected to %s ",
		now.Format("2006-01-02 15:04:05"), lookupDisplay)
}

// Text assembles a row's full line, used by the renderer and by tests.
func (r Row) Text() string {
	return joinCells(r.Name, r.Depth, r.InFlight, r.RateSec, r.RateMin)
}

func joinCells(cells ...string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
