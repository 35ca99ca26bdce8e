package client

import (
	"strconv"

	"github.com/MKhiriev/project-elevate/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const dueDateLayout = "2006-01-02"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Faint(true)

	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityHigh:   cellStyle.Foreground(lipgloss.Color("9")),
		models.PriorityMedium: cellStyle.Foreground(lipgloss.Color("11")),
		models.PriorityLow:    cellStyle.Foreground(lipgloss.Color("10")),
	}
)

const (
	colCompany = iota
	colPriority
	colStatus
	colProgress
	colDueDate
)

// RenderAssessments formats assessments as a bordered table with one row per
// assessment, in the given order.
func RenderAssessments(assessments []models.Assessment) string {
	if len(assessments) == 0 {
		return emptyStyle.Render("No assessments assigned.")
	}

	rows := make([][]string, 0, len(assessments))
	for _, a := range assessments {
		rows = append(rows, []string{
			a.CompanyName,
			string(a.Priority),
			string(a.Status),
			strconv.Itoa(a.PercentComplete) + "%",
			a.DueDate.UTC().Format(dueDateLayout),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Company", "Priority", "Status", "Progress", "Due").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == colPriority && row >= 0 && row < len(assessments) {
				if style, ok := priorityStyles[assessments[row].Priority]; ok {
					return style
				}
			}
			return cellStyle
		})

	return t.String()
}
