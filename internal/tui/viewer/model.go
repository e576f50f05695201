// Package viewer содержит модель экрана просмотра волновых форм для TUI
package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-waveview/internal/dsp"
	"github.com/hazadus/go-waveview/internal/trackset"
	"github.com/hazadus/go-waveview/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#666666"))

	zeroLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Палитра треков; цвета назначаются по порядку входных файлов
	trackStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
	}
)

// Коды ячеек сетки: 0 - пусто, zeroLineCell - нулевая линия,
// положительное n - трек с индексом n-1
const zeroLineCell = -1

// keyMap описывает клавиши управления просмотром
type keyMap struct {
	PanLeft   key.Binding
	PanRight  key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	FineIn    key.Binding
	FineOut   key.Binding
	JumpStart key.Binding
	JumpEnd   key.Binding
	Quit      key.Binding
}

// ShortHelp возвращает клавиши для краткой строки подсказки
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PanLeft, k.PanRight, k.ZoomIn, k.ZoomOut, k.JumpStart, k.JumpEnd, k.Quit}
}

// FullHelp возвращает клавиши для развернутой подсказки
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PanLeft, k.PanRight, k.JumpStart, k.JumpEnd},
		{k.ZoomIn, k.ZoomOut, k.FineIn, k.FineOut, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		PanLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "влево"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "вправо"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("z", "pgdown"),
			key.WithHelp("z", "приблизить"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("x", "pgup"),
			key.WithHelp("x", "отдалить"),
		),
		FineIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "точнее"),
		),
		FineOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "шире"),
		),
		JumpStart: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "в начало"),
		),
		JumpEnd: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "в конец"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "выход"),
		),
	}
}

// Model представляет модель экрана просмотра волновых форм
type Model struct {
	set    *trackset.Set
	keys   keyMap
	help   help.Model
	width  int
	height int
}

// NewModel создает новую модель просмотра поверх набора треков
func NewModel(set *trackset.Set) *Model {
	return &Model{
		set:  set,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель.
// Перерисовка происходит только по клавишам и изменению размера окна:
// фоновых тиков у просмотра нет.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		window := m.set.Window()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PanLeft):
			window.Pan(-0.25)
		case key.Matches(msg, m.keys.PanRight):
			window.Pan(0.25)
		case key.Matches(msg, m.keys.ZoomIn):
			window.Zoom(0.5)
		case key.Matches(msg, m.keys.ZoomOut):
			window.Zoom(2.0)
		case key.Matches(msg, m.keys.FineIn):
			window.Zoom(0.8)
		case key.Matches(msg, m.keys.FineOut):
			window.Zoom(1.25)
		case key.Matches(msg, m.keys.JumpStart):
			window.JumpStart()
		case key.Matches(msg, m.keys.JumpEnd):
			window.JumpEnd()
		}
		return m, nil
	}

	return m, nil
}

// View отображает интерфейс: статусная строка, волновая форма в рамке,
// ползунок позиции и подсказка по клавишам
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	// Резервируем строки: статус, ползунок, подсказка и рамка волновой формы
	cols := m.width - 2
	rows := m.height - 5
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	window := m.set.Window()
	status := m.statusLine()
	wave := borderStyle.Render(m.renderWaveform(cols, rows))
	slider := sliderLine(m.width, window.StartTime(), window.Width(), window.Duration())
	helpView := m.help.View(m.keys)

	return strings.Join([]string{status, wave, slider, helpView}, "\n")
}

// statusLine собирает строку с частотой, видимым интервалом и именами файлов
func (m *Model) statusLine() string {
	window := m.set.Window()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("WaveView"))
	sb.WriteString(fmt.Sprintf("  %d Гц  %.2f-%.2fс / %.2fс  файлы: ",
		m.set.Rate(),
		window.StartTime(),
		window.StartTime()+window.Width(),
		window.Duration()))

	for i, track := range m.set.Tracks() {
		if i > 0 {
			sb.WriteString(", ")
		}
		style := trackStyles[i%len(trackStyles)]
		sb.WriteString(style.Render(utils.TruncateString(track.Name(), 24)))
	}

	return sb.String()
}

// renderWaveform рисует сетку cols x rows: на каждую колонку по корзине
// каждого трека, вертикальные границы - из автоматического масштаба
func (m *Model) renderWaveform(cols, rows int) string {
	yMin, yMax := dsp.AutoscaleSymmetric(m.set.VisibleAmplitudeRange())

	grid := make([][]int, rows)
	for row := range grid {
		grid[row] = make([]int, cols)
	}

	// Горизонтальная нулевая линия, если она попадает в видимый диапазон
	if yMin < 0 && yMax > 0 {
		zeroRow := yToRow(0, yMin, yMax, rows)
		for col := 0; col < cols; col++ {
			grid[zeroRow][col] = zeroLineCell
		}
	}

	// Колонки треков рисуются поверх нулевой линии; более поздние треки
	// перекрывают более ранние
	for i := 0; i < m.set.Len(); i++ {
		buckets := m.set.VisibleBuckets(i, cols)
		for col, bucket := range buckets {
			if !bucket.HasData {
				continue
			}

			top := yToRow(bucket.Max, yMin, yMax, rows)
			bottom := yToRow(bucket.Min, yMin, yMax, rows)
			if top > bottom {
				top, bottom = bottom, top
			}

			for row := top; row <= bottom; row++ {
				grid[row][col] = i + 1
			}
		}
	}

	var sb strings.Builder
	for row := range grid {
		if row > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, grid[row])
	}
	return sb.String()
}

// renderRow выводит строку сетки, группируя соседние ячейки одного стиля
func renderRow(sb *strings.Builder, cells []int) {
	runStart := 0
	for col := 1; col <= len(cells); col++ {
		if col < len(cells) && cells[col] == cells[runStart] {
			continue
		}
		code := cells[runStart]
		length := col - runStart
		switch {
		case code == 0:
			sb.WriteString(strings.Repeat(" ", length))
		case code == zeroLineCell:
			sb.WriteString(zeroLineStyle.Render(strings.Repeat("-", length)))
		default:
			style := trackStyles[(code-1)%len(trackStyles)]
			sb.WriteString(style.Render(strings.Repeat("|", length)))
		}
		runStart = col
	}
}

// yToRow переводит амплитуду в номер строки сетки (0 - верхняя строка)
func yToRow(y, yMin, yMax float32, rows int) int {
	if rows <= 0 || yMax <= yMin {
		return 0
	}
	t := (y - yMin) / (yMax - yMin)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	row := int((1-t)*float32(rows-1) + 0.5)
	if row > rows-1 {
		row = rows - 1
	}
	return row
}

// sliderLine строит ASCII-ползунок: видимое окно внутри полной длительности
func sliderLine(width int, start, window, duration float64) string {
	if width <= 0 {
		return ""
	}
	if duration <= 0 {
		return "нет данных"
	}

	chars := make([]byte, width)
	for i := range chars {
		chars[i] = '-'
	}

	end := start + window
	if end > duration {
		end = duration
	}

	maxIdx := float64(width - 1)
	startIdx := int(start/duration*maxIdx + 0.5)
	endIdx := int(end/duration*maxIdx + 0.5)
	if startIdx > endIdx {
		startIdx, endIdx = endIdx, startIdx
	}

	for i := startIdx; i <= endIdx; i++ {
		chars[i] = '='
	}
	chars[startIdx] = '|'
	chars[endIdx] = '|'

	return string(chars)
}
