package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tui "github.com/charmbracelet/bubbletea"
	styles "github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	plot "github.com/chriskim06/drawille-go"
)

type Config struct {
	// trace display
	Window   time.Duration
	PlotFPS  int
	ItemsFPS int

	// render layout
	ViewSplit int
	AltScreen bool

	// input
	InputPath      string
	MaxRecords     int
	Pace           time.Duration
	Replay         bool
	ReplaySpeed    float64
	ReplayMaxSleep time.Duration

	// simulator
	SimPulseBPM     float64
	SimBreathingRPM float64
	SimNoise        float64
	SimHz           float64
	SimSeed         uint64

	// measurement
	ReadingCapacity int

	StatsEnabled bool
	StatsWindow  int
}

var config = Config{
	Window:   12 * time.Second,
	PlotFPS:  20,
	ItemsFPS: 4,

	ViewSplit: 35,
	AltScreen: true,

	InputPath:      "",
	MaxRecords:     0,
	Pace:           0,
	Replay:         false,
	ReplaySpeed:    1.0,
	ReplayMaxSleep: 0,

	SimPulseBPM:     72,
	SimBreathingRPM: 14,
	SimNoise:        0.03,
	SimHz:           4,
	SimSeed:         0,

	ReadingCapacity: 50,

	StatsEnabled: true,
	StatsWindow:  256,
}

var (
	selectedColor = styles.AdaptiveColor{Light: "0", Dark: "9"}
	borderColor   = styles.AdaptiveColor{Light: "#555", Dark: "#555"}
	borderFg      = styles.NewStyle().Foreground(borderColor)
	plotStyle     = styles.NewStyle().
			BorderStyle(styles.NormalBorder()).
			Foreground(borderColor).
			BorderForeground(borderColor)
)

func main() {
	log.SetOutput(os.Stdout)
	flag.DurationVar(&config.Window, "window", config.Window, "Trace display window length")
	flag.IntVar(&config.PlotFPS, "plot-fps", config.PlotFPS, "Trace refresh rate (frames per second)")
	flag.IntVar(&config.ItemsFPS, "items-fps", config.ItemsFPS, "Channel list refresh rate (frames per second)")
	flag.IntVar(&config.ViewSplit, "view-split", config.ViewSplit, "Split the view at this % of the total screen width [20,80]")
	flag.BoolVar(&config.AltScreen, "alt-screen", config.AltScreen, "Use the terminal alternate screen buffer (recommended inside IDE terminals)")
	flag.StringVar(&config.InputPath, "in", config.InputPath, "Read a JSON capture stream from this file instead of stdin")
	flag.IntVar(&config.MaxRecords, "max-records", config.MaxRecords, "Stop after reading this many records (0 = unlimited)")
	flag.DurationVar(&config.Pace, "pace", config.Pace, "Sleep between input records (e.g. 5ms, 50ms)")
	flag.BoolVar(&config.Replay, "replay", config.Replay, "Replay the input stream in (scaled) sample time")
	flag.Float64Var(&config.ReplaySpeed, "replay-speed", config.ReplaySpeed, "Replay speed factor (1=real-time, 2=2x faster, 0.5=2x slower)")
	flag.DurationVar(&config.ReplayMaxSleep, "replay-max-sleep", config.ReplayMaxSleep, "Cap per-record replay sleep (0 = no cap)")
	flag.Float64Var(&config.SimPulseBPM, "sim-pulse-bpm", config.SimPulseBPM, "Simulated pulse rate (beats per minute)")
	flag.Float64Var(&config.SimBreathingRPM, "sim-breathing-rpm", config.SimBreathingRPM, "Simulated breathing rate (breaths per minute)")
	flag.Float64Var(&config.SimNoise, "sim-noise", config.SimNoise, "Simulated waveform noise amplitude")
	flag.Float64Var(&config.SimHz, "sim-hz", config.SimHz, "Average simulated sample rate per vital (Hz, jittered)")
	flag.Uint64Var(&config.SimSeed, "sim-seed", config.SimSeed, "Simulator random seed (0 = time-based)")
	flag.IntVar(&config.ReadingCapacity, "readings", config.ReadingCapacity, "Max high-confidence rate readings kept per vital for averaging")
	flag.BoolVar(&config.StatsEnabled, "stats", config.StatsEnabled, "Show runtime performance stats")
	flag.IntVar(&config.StatsWindow, "stats-window", config.StatsWindow, "Number of recent frame latencies kept for stats")

	flag.Parse()

	if err := validateAndNormalizeConfig(); err != nil {
		log.Fatal(err)
	}

	m := newModel()
	opts := []tui.ProgramOption{tui.WithInputTTY()}
	if config.AltScreen {
		opts = append(opts, tui.WithAltScreen())
	}
	if _, err := tui.NewProgram(m, opts...).Run(); err != nil {
		log.Fatal(err)
	}
}

func validateAndNormalizeConfig() error {
	if config.Window <= 0 {
		return fmt.Errorf("-window must be > 0")
	}
	if config.PlotFPS < 1 {
		return fmt.Errorf("-plot-fps must be >= 1")
	}
	if config.ItemsFPS < 1 {
		return fmt.Errorf("-items-fps must be >= 1")
	}
	if config.MaxRecords < 0 {
		return fmt.Errorf("-max-records must be >= 0")
	}
	if config.Pace < 0 {
		return fmt.Errorf("-pace must be >= 0")
	}
	if config.ReplaySpeed <= 0 {
		return fmt.Errorf("-replay-speed must be > 0")
	}
	if config.ReplayMaxSleep < 0 {
		return fmt.Errorf("-replay-max-sleep must be >= 0")
	}
	if config.SimPulseBPM <= 0 {
		return fmt.Errorf("-sim-pulse-bpm must be > 0")
	}
	if config.SimBreathingRPM <= 0 {
		return fmt.Errorf("-sim-breathing-rpm must be > 0")
	}
	if config.SimNoise < 0 {
		return fmt.Errorf("-sim-noise must be >= 0")
	}
	if config.SimHz <= 0 {
		return fmt.Errorf("-sim-hz must be > 0")
	}
	if config.ReadingCapacity < 1 {
		return fmt.Errorf("-readings must be >= 1")
	}
	config.ViewSplit = max(20, config.ViewSplit)
	config.ViewSplit = min(80, config.ViewSplit)
	if config.StatsWindow < 16 {
		config.StatsWindow = 16
	}
	if config.SimSeed == 0 {
		config.SimSeed = uint64(time.Now().UnixNano())
	}
	return nil
}

// vitalChannel is one vital sign's trace, measurement set and render
// state. One per vital per recording session; all access goes through
// the model's traceMu.
type vitalChannel struct {
	name string
	unit string

	buffer   *TraceBuffer
	renderer *ScrollingTraceRenderer
	averager *ConfidenceAverager

	samples int
}

func newVitalChannel(name, unit, label string) *vitalChannel {
	ch := &vitalChannel{
		name:     name,
		unit:     unit,
		buffer:   NewTraceBuffer(),
		renderer: &ScrollingTraceRenderer{WindowSeconds: config.Window.Seconds(), Label: label},
		averager: NewConfidenceAverager(config.ReadingCapacity),
	}
	ch.buffer.Subscribe(func(series []Sample) {
		ch.samples = len(series)
	})
	return ch
}

func (ch *vitalChannel) resetSession() {
	ch.buffer.Reset()
	ch.renderer.Reset()
	ch.averager.Reset()
	ch.samples = 0
}

type model struct {
	width, height  int
	leftPaneWidth  int
	rightPaneWidth int

	err error

	paused    bool
	pauseMu   sync.Mutex
	pauseCond *sync.Cond

	list      list.Model
	listStyle styles.Style
	help      help.Model
	plot      *plot.Canvas

	channels     []*vitalChannel
	channelIndex map[string]int
	traceMu      sync.Mutex

	state RecordingState
	hint  string

	plotData    [][]float64
	plotColors  []plot.Color
	plotPixelW  int
	plotPixelH  int
	placeholder bool

	simulated     bool
	sessionCtx    context.Context
	sessionCancel context.CancelFunc

	metrics *sessionMetrics
}

func newModel() *model {
	const (
		defaultWidth  = 80
		defaultHeight = 20
	)

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = styles.NewStyle().
		Border(styles.NormalBorder(), false, false, false, true).
		BorderForeground(borderColor).
		Foreground(selectedColor).
		Bold(false).
		Padding(0, 0, 0, 1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.
		Foreground(selectedColor)
	d.ShowDescription = true

	l := list.New(make([]list.Item, 0), d, defaultWidth/2-2, defaultHeight)
	l.Styles.NoItems = l.Styles.NoItems.
		Padding(0, 2)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)

	channels := []*vitalChannel{
		newVitalChannel(vitalPulse, "bpm", "PULSE"),
		newVitalChannel(vitalBreathing, "rpm", "BREATHING"),
	}
	channelIndex := make(map[string]int, len(channels))
	for i, ch := range channels {
		channelIndex[ch.name] = i
	}

	metrics := newSessionMetrics(config.StatsWindow)
	metrics.setEnabled(config.StatsEnabled)

	ctx, cancel := context.WithCancel(context.Background())

	m := &model{
		list:          l,
		help:          help.New(),
		channels:      channels,
		channelIndex:  channelIndex,
		state:         StateIdle,
		hint:          "waiting for capture stream",
		sessionCtx:    ctx,
		sessionCancel: cancel,
		metrics:       metrics,
	}
	m.leftPaneWidth, m.rightPaneWidth = computePaneWidths(defaultWidth, config.ViewSplit)
	m.pauseCond = sync.NewCond(&m.pauseMu)
	m.resizePlot(defaultWidth/2, defaultHeight-3)
	m.simulated = config.InputPath == "" && term.IsTerminal(os.Stdin.Fd())
	return m
}

func (m *model) leftWidth() int {
	if m.leftPaneWidth > 0 {
		return m.leftPaneWidth
	}
	left, _ := computePaneWidths(m.width, config.ViewSplit)
	return left
}

func (m *model) rightWidth() int {
	if m.rightPaneWidth > 0 {
		return m.rightPaneWidth
	}
	_, right := computePaneWidths(m.width, config.ViewSplit)
	return right
}

// WaveformSample implements streamSink. Called from the producer
// goroutine; the buffer append and its observers run under traceMu so
// a concurrent render tick sees the series either before or after the
// append, never mid-write.
func (m *model) WaveformSample(vital string, s Sample) {
	m.waitIfPaused()
	now := time.Now()
	m.traceMu.Lock()
	i, ok := m.channelIndex[vital]
	var accepted bool
	if ok {
		accepted = m.channels[i].buffer.Append(s)
	}
	m.traceMu.Unlock()
	if ok {
		m.metrics.observeSample(now, accepted)
	}
}

// RateReading implements streamSink.
func (m *model) RateReading(vital string, value, confidence float64) {
	m.waitIfPaused()
	m.traceMu.Lock()
	if i, ok := m.channelIndex[vital]; ok {
		m.channels[i].averager.Observe(value, confidence)
		m.metrics.observeRateReading()
	}
	m.traceMu.Unlock()
}

// StatusUpdate implements streamSink.
func (m *model) StatusUpdate(state RecordingState, hint string) {
	m.traceMu.Lock()
	m.state = state
	m.hint = hint
	m.traceMu.Unlock()
}

func (m *model) runProducer() tui.Cmd {
	ctx := m.sessionCtx
	return func() tui.Msg {
		if m.simulated {
			sim := newWaveformSimulator(config.SimPulseBPM, config.SimBreathingRPM, config.SimNoise, config.SimHz, config.SimSeed)
			sim.Run(ctx, m)
			return nil
		}
		r, err := m.openInput()
		if err != nil {
			return errMsg{err}
		}
		defer func() { _ = r.Close() }()
		m.StatusUpdate(StateRecording, "reading capture stream")
		reader := &jsonStreamReader{
			MaxRecords: config.MaxRecords,
			Pace:       config.Pace,
			Replay:     config.Replay,
			Speed:      config.ReplaySpeed,
			MaxSleep:   config.ReplayMaxSleep,
		}
		if err := reader.Run(r, m); err != nil {
			return errMsg{err}
		}
		m.StatusUpdate(StateStopped, "capture stream ended")
		return nil
	}
}

func (m *model) openInput() (io.ReadCloser, error) {
	if config.InputPath != "" {
		return os.Open(config.InputPath)
	}
	return io.NopCloser(os.Stdin), nil
}

// restartSession clears every per-session structure and, in simulator
// mode, spawns a fresh producer. A piped stream keeps feeding the new
// session; the cleared buffers accept its later timestamps as usual.
func (m *model) restartSession() tui.Cmd {
	m.sessionCancel()
	ctx, cancel := context.WithCancel(context.Background())
	m.sessionCtx = ctx
	m.sessionCancel = cancel

	m.traceMu.Lock()
	for _, ch := range m.channels {
		ch.resetSession()
	}
	m.state = StateIdle
	m.hint = "session restarted"
	m.traceMu.Unlock()
	m.metrics.resetSession()

	if m.simulated {
		return m.runProducer()
	}
	return nil
}

type PlotTickMsg time.Time

func doPlotTick() tui.Cmd {
	return tui.Every(time.Second/time.Duration(config.PlotFPS), func(t time.Time) tui.Msg {
		return PlotTickMsg(t)
	})
}

type ItemsTickMsg time.Time

func doItemsTick() tui.Cmd {
	return tui.Every(time.Second/time.Duration(config.ItemsFPS), func(t time.Time) tui.Msg {
		return ItemsTickMsg(t)
	})
}

type errMsg struct{ err error }

func (m *model) Init() tui.Cmd {
	return tui.Batch(m.runProducer(), doPlotTick(), doItemsTick())
}

func (m *model) Update(msg tui.Msg) (tui.Model, tui.Cmd) {
	switch msg := msg.(type) {
	case errMsg:
		m.traceMu.Lock()
		m.err = msg.err
		m.traceMu.Unlock()
		return m, nil
	case ItemsTickMsg:
		cmdList := m.updateChannelList(msg)
		return m, tui.Batch(cmdList, doItemsTick())
	case PlotTickMsg:
		// The plot keeps ticking while ingest is paused: the tail
		// extrapolation is what keeps the line moving.
		m.updatePlot(time.Time(msg))
		return m, doPlotTick()
	case tui.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.leftPaneWidth, m.rightPaneWidth = computePaneWidths(m.width, config.ViewSplit)
		statsLines := 0
		if config.StatsEnabled {
			// title + 6 metric lines
			statsLines = 7
		}
		// status/hint line + help line
		bottomLines := statsLines + 2
		available := m.height - bottomLines
		available = max(1, available)

		leftW := max(1, m.leftWidth())
		rightW := max(1, m.rightWidth())

		m.list.SetSize(leftW, available)
		m.list.Styles.Title = styles.NewStyle()
		m.list.Styles.PaginationStyle = styles.NewStyle()
		m.list.Styles.HelpStyle = styles.NewStyle()
		m.listStyle = styles.NewStyle().Width(leftW).Height(available)

		// Right side is: plot canvas + 1 label line, wrapped in a border (adds 2 lines).
		plotHeight := max(1, available-3)
		plotWidth := max(1, rightW-2)
		m.resizePlot(plotWidth, plotHeight)
		return m, nil
	case tui.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.sessionCancel()
			return m, tui.Quit
		case key.Matches(msg, keys.Up):
			m.list.CursorUp()
			return m, nil
		case key.Matches(msg, keys.Down):
			m.list.CursorDown()
			return m, nil
		case key.Matches(msg, keys.Pause):
			m.togglePause()
			return m, nil
		case key.Matches(msg, keys.Restart):
			return m, m.restartSession()
		}
	}
	var cmd tui.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) togglePause() {
	m.pauseMu.Lock()
	m.paused = !m.paused
	m.pauseMu.Unlock()
	m.pauseCond.Broadcast()
}

func (m *model) isPaused() bool {
	m.pauseMu.Lock()
	defer m.pauseMu.Unlock()
	return m.paused
}

func (m *model) waitIfPaused() {
	m.pauseMu.Lock()
	for m.paused {
		m.pauseCond.Wait()
	}
	m.pauseMu.Unlock()
}

func (m *model) resizePlot(w, h int) {
	p := plot.NewCanvas(w, h)
	p.ShowAxis = false
	// Braille cells are 2x4 dots; rasterize one column per dot column.
	p.NumDataPoints = max(2, 2*w)
	p.LineColors = make([]plot.Color, len(m.channels))
	m.plot = &p
	m.plotPixelW = p.NumDataPoints
	m.plotPixelH = max(1, 4*h)
	m.plotData = make([][]float64, len(m.channels))
	for i := range m.plotData {
		m.plotData[i] = make([]float64, m.plotPixelW)
	}
	m.plotColors = make([]plot.Color, len(m.channels))
}

func (m *model) updateChannelList(msg tui.Msg) tui.Cmd {
	m.traceMu.Lock()
	items := make([]list.Item, len(m.channels))
	for i, ch := range m.channels {
		desc := "awaiting readings"
		if mean, ok := ch.averager.Mean(); ok {
			desc = fmt.Sprintf("%.1f %s over %d readings", mean, ch.unit, ch.averager.Count())
		}
		items[i] = channelItem{
			name:   ch.renderer.Label,
			detail: fmt.Sprintf("%s · %d samples", desc, ch.samples),
		}
	}
	m.traceMu.Unlock()

	set := m.list.SetItems(items)
	var cmd tui.Cmd
	m.list, cmd = m.list.Update(msg)
	return tui.Batch(set, cmd)
}

func (m *model) updatePlot(now time.Time) {
	start := time.Now()

	var highlight, dim plot.Color
	if styles.DefaultRenderer().HasDarkBackground() {
		highlight, dim = plot.Red, plot.DimGray
	} else {
		highlight, dim = plot.Black, plot.LightGray
	}

	selected := m.list.Index()
	if selected < 0 || selected >= len(m.channels) {
		selected = 0
	}

	drew := 0
	m.traceMu.Lock()
	// Draw the selected channel last so its line lands on top.
	for i := range m.channels {
		idx := (1 + selected + i) % len(m.channels)
		ch := m.channels[idx]
		ch.renderer.Color = dim
		if idx == selected {
			ch.renderer.Color = highlight
		}
		pts, ok := ch.renderer.Frame(now, ch.buffer.Snapshot(), m.plotPixelW, m.plotPixelH)
		if !ok {
			continue
		}
		rasterizePolyline(pts, m.plotPixelH, m.plotData[drew])
		m.plotColors[drew] = ch.renderer.Color
		drew++
	}
	m.traceMu.Unlock()

	m.placeholder = drew == 0
	if drew > 0 {
		copy(m.plot.LineColors, m.plotColors[:drew])
		m.plot.Fill(m.plotData[:drew])
	}
	m.metrics.observeFrame(time.Since(start), m.placeholder)
}

// rasterizePolyline samples a polyline (drawing coordinates, y down)
// at every dot column and writes value-oriented heights (larger =
// higher) into out, which is what the canvas normalizes and draws.
// Columns outside the polyline's x span hold the nearest endpoint.
func rasterizePolyline(pts []Point, height int, out []float64) {
	seg := 0
	for col := range out {
		x := float64(col)
		for seg < len(pts)-2 && pts[seg+1].X < x {
			seg++
		}
		a, b := pts[seg], pts[seg+1]
		var y float64
		switch {
		case x <= a.X:
			y = a.Y
		case x >= b.X:
			y = b.Y
		default:
			t := (x - a.X) / (b.X - a.X)
			y = a.Y + t*(b.Y-a.Y)
		}
		out[col] = float64(height) - y
	}
}

func (m *model) View() string {
	left := m.listStyle.Render(m.list.View())

	plotStr := ""
	if !m.placeholder {
		plotStr = m.plot.String()
	}
	if plotStr == "" {
		plotStr = awaitingSignalBox(max(1, m.rightWidth()-2), max(1, m.list.Height()-3))
	}

	w := max(0, m.rightWidth()-2)
	leftLabel := fmt.Sprintf("-%s", config.Window)
	rightLabel := "now"
	labels := ""
	if gap := w - len(leftLabel) - len(rightLabel); gap >= 1 {
		labels = borderFg.Render(leftLabel) + strings.Repeat(" ", gap) + borderFg.Render(rightLabel)
	}
	right := plotStyle.Render(styles.JoinVertical(styles.Top, plotStr, labels))
	view := styles.JoinHorizontal(styles.Top, left, right)

	m.traceMu.Lock()
	err := m.err
	state := m.state
	hint := m.hint
	m.traceMu.Unlock()

	statusLine := strings.ToUpper(state.String())
	if m.isPaused() {
		statusLine += " (PAUSED)"
	}
	if hint != "" {
		statusLine += " · " + hint
	}
	view = styles.JoinVertical(styles.Left, view, borderFg.Render(statusLine))

	if err != nil {
		errStyle := styles.NewStyle().Foreground(styles.AdaptiveColor{Light: "1", Dark: "9"})
		return styles.JoinVertical(styles.Left, view, errStyle.Render("ERROR: "+err.Error()), m.help.View(keys))
	}

	if config.StatsEnabled {
		snap := m.metrics.snapshotAt(time.Now())
		frames := snap.frameLatency
		statsBlock := []string{
			"SESSION STATS",
			fmt.Sprintf("samples: %d accepted, %d dropped", snap.acceptedSamples, snap.droppedSamples),
			fmt.Sprintf("ingest rate: %d samples/s", snap.avgSamplesPerSec),
			fmt.Sprintf("data freshness lag: %s", formatMetricDuration(snap.freshnessLag)),
			fmt.Sprintf("frame draw last/avg/max: %s/%s/%s", formatMetricDuration(frames.last), formatMetricDuration(frames.avg), formatMetricDuration(frames.max)),
			fmt.Sprintf("placeholder frames: %d", snap.placeholderFrames),
			fmt.Sprintf("rate readings: %d", snap.rateReadings),
		}
		statsStyle := styles.NewStyle().Foreground(styles.AdaptiveColor{Light: "1", Dark: "9"})
		return styles.JoinVertical(styles.Left, view, statsStyle.Render(strings.Join(statsBlock, "\n")), m.help.View(keys))
	}
	return styles.JoinVertical(styles.Left, view, m.help.View(keys))
}

// awaitingSignalBox fills the plot pane with the "no data yet"
// placeholder, centered.
func awaitingSignalBox(w, h int) string {
	const msg = "awaiting signal..."
	var sb strings.Builder
	sb.Grow((w + 1) * h)
	for row := 0; row < h; row++ {
		line := strings.Repeat(" ", w)
		if row == h/2 && w > len(msg) {
			pad := (w - len(msg)) / 2
			line = strings.Repeat(" ", pad) + msg + strings.Repeat(" ", w-pad-len(msg))
		}
		sb.WriteString(line)
		if row < h-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func formatMetricDuration(d time.Duration) string {
	if d <= 0 {
		return "0.000ms"
	}
	return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
}

func computePaneWidths(totalWidth int, splitPercent int) (left, right int) {
	if totalWidth <= 1 {
		return 1, 1
	}
	left = totalWidth * splitPercent / 100
	if left < 1 {
		left = 1
	}
	if left > totalWidth-1 {
		left = totalWidth - 1
	}
	right = totalWidth - left

	// Keep panes readable when the terminal is wide enough.
	const minPane = 18
	if totalWidth >= minPane*2 {
		if left < minPane {
			left = minPane
			right = totalWidth - left
		}
		if right < minPane {
			right = minPane
			left = totalWidth - right
		}
	}
	if left < 1 {
		left = 1
	}
	if right < 1 {
		right = 1
	}
	return left, right
}

type channelItem struct {
	name   string
	detail string
}

func (i channelItem) Title() string       { return i.name }
func (i channelItem) Description() string { return i.detail }
func (i channelItem) FilterValue() string { return i.name }

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Pause, k.Restart}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Pause},
		{k.Up, k.Down, k.Restart},
	}
}

type keyMap struct {
	Pause   key.Binding
	Restart key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause ingest"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart session"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "previous channel"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "next channel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}
