/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package view

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
)

// Dracula theme colors.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaOrange     = "#FFB86C"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaRed        = "#FF5555"
	draculaComment    = "#6272A4"
)

const (
	defaultTableHeight = 10
	columnWidthHost    = 24
	columnWidthDomain  = 32
	columnWidthPath    = 20
	chromeHeight       = 8
)

type styles struct {
	title, help, hint, success, error, app lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaOrange)),
		success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)),
		error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true),
		app: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaCyan)).
			Foreground(lipgloss.Color(draculaForeground)),
	}
}

// routesChangedMsg tells the model the route list recomputed.
type routesChangedMsg struct{}

// RouteListModel is the terminal rendering of a RouteList.
type RouteListModel struct {
	list        *RouteList
	routes      []models.Record
	table       table.Model
	changes     chan struct{}
	copy        func(string) error
	copyMessage string
	copyFailed  bool
	styles      styles
}

// ModelOption customizes a RouteListModel.
type ModelOption func(*RouteListModel)

// WithClipboard replaces the system clipboard.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *RouteListModel) { m.copy = write }
}

// NewRouteListModel mounts list and returns a model that re-renders on every change.
// Bursts of changes collapse into one re-render.
func NewRouteListModel(list *RouteList, opts ...ModelOption) *RouteListModel {
	columns := []table.Column{
		{Title: Columns[0].Label, Width: columnWidthHost},
		{Title: Columns[1].Label, Width: columnWidthDomain},
		{Title: Columns[2].Label, Width: columnWidthPath},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(draculaPurple)).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(draculaForeground)).
		Background(lipgloss.Color(draculaPurple))
	t.SetStyles(ts)

	m := &RouteListModel{
		list:    list,
		table:   t,
		changes: make(chan struct{}, 1),
		copy:    clipboard.WriteAll,
		styles:  newStyles(),
	}

	for _, opt := range opts {
		opt(m)
	}

	list.Mount(func() {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	})

	m.refresh()

	return m
}

func (m *RouteListModel) waitForChange() tea.Msg {
	<-m.changes
	return routesChangedMsg{}
}

func (m *RouteListModel) Init() tea.Cmd {
	return m.waitForChange
}

// refresh snapshots the routes so the table and SelectedURL index the same slice.
func (m *RouteListModel) refresh() {
	m.routes = m.list.Routes()
	rows := rowsOf(m.routes)
	tableRows := make([]table.Row, 0, len(rows))

	for _, row := range rows {
		tableRows = append(tableRows, table.Row(row))
	}

	m.table.SetRows(tableRows)

	if m.table.Cursor() >= len(tableRows) && len(tableRows) > 0 {
		m.table.SetCursor(len(tableRows) - 1)
	}
}

func (m *RouteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case routesChangedMsg:
		m.refresh()
		return m, m.waitForChange
	case tea.WindowSizeMsg:
		if h := msg.Height - chromeHeight; h > 0 {
			m.table.SetHeight(h)
		}

		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.list.Unmount()
			return m, tea.Quit
		case "c":
			m.copySelected()
			return m, nil
		}
	}

	var cmd tea.Cmd

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

// SelectedURL returns the URL of the highlighted route as last rendered.
func (m *RouteListModel) SelectedURL() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.routes) {
		return ""
	}

	return RouteURL(m.routes[i])
}

func (m *RouteListModel) copySelected() {
	url := m.SelectedURL()
	if url == "" {
		m.copyMessage = "Nothing to copy"
		m.copyFailed = true

		return
	}

	if err := m.copy(url); err != nil {
		m.copyMessage = "Failed to copy to clipboard"
		m.copyFailed = true

		return
	}

	m.copyMessage = "Copied " + url
	m.copyFailed = false
}

func (m *RouteListModel) View() string {
	var content strings.Builder

	content.WriteString(m.styles.title.Render(fmt.Sprintf("Routes for app %s", m.list.AppGUID())))
	content.WriteString("\n\n")

	if len(m.table.Rows()) == 0 {
		content.WriteString(NoRoutesMessage)
	} else {
		content.WriteString(m.table.View())
	}

	content.WriteString("\n\n")
	content.WriteString(m.styles.hint.Render(RoutesGuideText + ": " + RoutesGuideURL))
	content.WriteString("\n")

	if m.copyMessage != "" {
		style := m.styles.success
		if m.copyFailed {
			style = m.styles.error
		}

		content.WriteString(style.Render(m.copyMessage))
		content.WriteString("\n")
	}

	content.WriteString(m.styles.help.Render("↑/↓ select | c copy URL | q quit"))

	return m.styles.app.Align(lipgloss.Left).Render(content.String())
}
