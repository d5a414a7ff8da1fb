// Package cli renders dashboard data for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"repodash/internal/application/dto"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const maxDescription = 60

// RenderRepositories writes one page of repositories as cards followed by a pager line
func RenderRepositories(w io.Writer, resp *dto.RepositoryListResponse) {
	title := fmt.Sprintf("%s: original repositories", resp.Account)
	if resp.Search != "" {
		title += fmt.Sprintf(" matching %q", resp.Search)
	}
	_, _ = fmt.Fprintln(w, headerStyle.Render(title))
	_, _ = fmt.Fprintln(w)

	if resp.Notice != "" {
		_, _ = fmt.Fprintln(w, noticeStyle.Render(resp.Notice))
		return
	}

	for _, r := range resp.Repositories {
		renderCard(w, r)
	}

	_, _ = fmt.Fprintf(w, "Page %d of %d  %s\n",
		resp.Pagination.Page,
		resp.Pagination.TotalPages,
		dimStyle.Render(fmt.Sprintf("(%d matching, %d original)", resp.Pagination.Total, resp.TotalOriginal)),
	)
}

func renderCard(w io.Writer, r *dto.RepositoryResponse) {
	_, _ = fmt.Fprintln(w, nameStyle.Render(r.Name))

	if r.Description != nil && *r.Description != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", truncate(*r.Description, maxDescription))
	}

	language := "-"
	if r.Language != nil {
		language = lipgloss.NewStyle().Foreground(lipgloss.Color(r.LanguageColor)).Render("●") + " " + *r.Language
	}
	_, _ = fmt.Fprintf(w, "  %s  %s  %s  %s\n",
		language,
		countStyle.Render(fmt.Sprintf("★ %d", r.Stars)),
		countStyle.Render(fmt.Sprintf("⑂ %d", r.Forks)),
		dimStyle.Render("updated "+r.UpdatedAt),
	)
	_, _ = fmt.Fprintf(w, "  %s\n\n", dimStyle.Render(r.HTMLURL))
}

// RenderSidebar writes the weather and image widgets
func RenderSidebar(w io.Writer, resp *dto.SidebarResponse) {
	_, _ = fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Weather at %.4f, %.4f", resp.Latitude, resp.Longitude)))
	if resp.Weather == nil {
		_, _ = fmt.Fprintln(w, errorStyle.Render("weather unavailable"))
	} else {
		_, _ = fmt.Fprintf(w, "  temperature     %s\n", countStyle.Render(fmt.Sprintf("%.1f °C", resp.Weather.Temperature)))
		_, _ = fmt.Fprintf(w, "  wind speed      %s\n", countStyle.Render(fmt.Sprintf("%.1f km/h", resp.Weather.WindSpeed)))
		_, _ = fmt.Fprintf(w, "  wind direction  %s\n", countStyle.Render(fmt.Sprintf("%.0f°", resp.Weather.WindDirection)))
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, headerStyle.Render("Random dog"))
	if resp.Image.Fallback {
		_, _ = fmt.Fprintf(w, "  %s %s\n", resp.Image.URL, dimStyle.Render("(placeholder)"))
		return
	}
	_, _ = fmt.Fprintf(w, "  %s\n", resp.Image.URL)
}

// RenderHistory writes recent fetch outcomes as a table
func RenderHistory(w io.Writer, resp *dto.FetchHistoryResponse) {
	if len(resp.Records) == 0 {
		_, _ = fmt.Fprintln(w, "No fetches recorded.")
		return
	}

	maxAccount := len("ACCOUNT")
	for _, r := range resp.Records {
		maxAccount = max(maxAccount, len(r.Account))
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s  %s\n",
		headerStyle.Render(padRight("FETCHED AT", 20)),
		headerStyle.Render(padRight("ACCOUNT", maxAccount)),
		headerStyle.Render(padRight("OUTCOME", 8)),
		headerStyle.Render("DETAIL"),
	)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", maxAccount+50))

	for _, r := range resp.Records {
		outcome := okStyle.Render(padRight(r.Outcome, 8))
		detail := fmt.Sprintf("%d fetched, %d original", r.FetchedCount, r.OriginalCount)
		if r.ErrorCode != "" {
			outcome = errorStyle.Render(padRight(r.Outcome, 8))
			detail = r.ErrorCode + ": " + r.Message
		}
		_, _ = fmt.Fprintf(w, "%s  %s  %s  %s\n",
			padRight(r.FetchedAt, 20),
			padRight(r.Account, maxAccount),
			outcome,
			detail,
		)
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
