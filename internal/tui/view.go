// ABOUTME: Rendering of the five views, forms, prompts and toasts.
// ABOUTME: Reads only the cached projections held by the model.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/views"
)

var viewTitles = map[models.View]string{
	models.ViewDashboard: "Dashboard",
	models.ViewExercise:  "Exercise",
	models.ViewNutrition: "Nutrition",
	models.ViewProgress:  "Progress",
	models.ViewSettings:  "Settings",
}

var viewHelp = map[models.View]string{
	models.ViewDashboard: "w water",
	models.ViewExercise:  "a add exercise • w water",
	models.ViewNutrition: "a add meal • w water",
	models.ViewProgress:  "[ ] month • arrows select day • enter details",
	models.ViewSettings:  "↑/↓ select • enter edit • s save • r reset • d defaults",
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.prompt != nil:
		b.WriteString(m.renderPrompt())
	case m.form != nil:
		b.WriteString(m.renderForm())
	default:
		b.WriteString(m.renderBody())
	}
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(m.styles.warn.Render("✗ "+m.err) + "\n")
	}
	if m.toast != "" {
		b.WriteString(m.styles.toast.Render(m.toast) + "\n")
	}
	b.WriteString(m.styles.muted.Render("1-5/tab views • t theme • " + viewHelp[m.nav.View] + " • q quit"))
	return b.String()
}

func (m *Model) renderTabs() string {
	tabs := []string{m.styles.title.Render("FitTrack") + "  "}
	for i, v := range models.AllViews {
		label := fmt.Sprintf("%d %s", i+1, viewTitles[v])
		if v == m.nav.View {
			tabs = append(tabs, m.styles.tabOn.Render(label))
		} else {
			tabs = append(tabs, m.styles.tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderBody() string {
	switch m.nav.View {
	case models.ViewExercise:
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderList(m.todayEx), " ", m.renderList(m.historyEx))
	case models.ViewNutrition:
		return m.renderMealGroups(m.todayMeals) + "\n" + m.renderMealGroups(m.historyMeals)
	case models.ViewProgress:
		return lipgloss.JoinHorizontal(lipgloss.Top, m.renderChart(), " ", m.renderCalendar())
	case models.ViewSettings:
		return m.renderSettings()
	default:
		return m.renderDashboard()
	}
}

func (m *Model) renderDashboard() string {
	d := m.dash
	s := d.Stats
	lines := []string{
		m.styles.title.Render(d.Greeting),
		m.styles.muted.Render(d.Date),
		"",
		fmt.Sprintf("Calories burned    %d", s.CaloriesBurned),
		fmt.Sprintf("Calories consumed  %d / %d  %s", s.CaloriesConsumed, d.CalorieGoal, m.bar(d.CalorieProgress)),
		fmt.Sprintf("Workout time       %d min", s.WorkoutTime),
		fmt.Sprintf("Water              %g / %g L  %s", s.WaterIntake, d.WaterGoal, m.bar(d.WaterProgress)),
		fmt.Sprintf("Weekly workouts    %d / %d  %s", s.WeeklyWorkouts, d.WorkoutGoal, m.bar(d.WorkoutProgress)),
		fmt.Sprintf("Streak             %d days", s.StreakDays),
		fmt.Sprintf("Weight change      %+.1f kg", s.WeightChange),
	}
	tasks := []string{
		m.styles.title.Render("Today"),
		fmt.Sprintf("Exercises  %d", d.Tasks.Exercises),
		fmt.Sprintf("Meals      %d", d.Tasks.Meals),
		fmt.Sprintf("Water      %s", d.Tasks.Water),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.box.Render(strings.Join(lines, "\n")), " ",
		m.styles.box.Render(strings.Join(tasks, "\n")))
}

func (m *Model) bar(p float64) string {
	const width = 20
	filled := int(p * width)
	return m.styles.good.Render(strings.Repeat("█", filled)) +
		m.styles.muted.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %3.0f%%", p*100)
}

func (m *Model) renderList(l views.List) string {
	lines := []string{m.styles.title.Render(l.Title)}
	if l.IsEmpty() {
		lines = append(lines, m.styles.muted.Render(l.Empty.Message))
		if l.Empty.Action != "" {
			lines = append(lines, m.styles.accent.Render("press a: "+l.Empty.Action))
		}
	}
	for _, it := range l.Items {
		lines = append(lines, fmt.Sprintf("%-18s %-10s %s", it.Title, it.Value, m.styles.muted.Render(it.Detail)))
	}
	return m.styles.box.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderMealGroups(groups []views.MealGroup) string {
	boxes := make([]string, 0, len(groups))
	for _, g := range groups {
		boxes = append(boxes, m.renderList(g.List))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m *Model) renderChart() string {
	lines := []string{m.styles.title.Render("This Week")}
	if len(m.chart.Series) < 2 {
		return m.styles.box.Render(strings.Join(lines, "\n"))
	}
	calories, workouts := m.chart.Series[0].Values, m.chart.Series[1].Values

	top := 0
	for _, v := range calories {
		if v > top {
			top = v
		}
	}
	const width = 24
	for i, label := range m.chart.Labels {
		n := 0
		if top > 0 {
			n = calories[i] * width / top
		}
		lines = append(lines, fmt.Sprintf("%s %s%s %4d cal  %d×",
			label,
			m.styles.accent.Render(strings.Repeat("▇", n)),
			strings.Repeat(" ", width-n),
			calories[i], workouts[i]))
	}
	lines = append(lines, m.styles.muted.Render(m.chart.Series[0].Label+" • "+m.chart.Series[1].Label))
	return m.styles.box.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderCalendar() string {
	g := m.grid
	var b strings.Builder
	b.WriteString(m.styles.title.Render(g.Title) + "\n")
	for _, h := range g.Headers {
		b.WriteString(fmt.Sprintf("%-4s", h[:2]))
	}
	b.WriteString("\n")

	for i, c := range g.Cells {
		cell := "    "
		if !c.Blank {
			text := fmt.Sprintf("%2d", c.Day)
			if c.HasData {
				text += "•"
			} else {
				text += " "
			}
			switch {
			case c.Day == m.selDay:
				text = m.styles.selected.Render(text)
			case c.Today:
				text = m.styles.accent.Render(text)
			case c.HasData:
				text = m.styles.good.Render(text)
			}
			cell = text + " "
		}
		b.WriteString(cell)
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n" + m.styles.muted.Render("• activity logged"))
	return m.styles.box.Render(b.String())
}

func (m *Model) renderSettings() string {
	lines := []string{m.styles.title.Render("Settings")}
	for i, f := range m.fields {
		value := f.Value
		if f.Kind == "toggle" {
			if value == "true" {
				value = "on"
			} else {
				value = "off"
			}
		}
		line := fmt.Sprintf("%-22s %s", f.Label, value)
		if i == m.selField {
			line = m.styles.selected.Render(line)
		}
		lines = append(lines, line)
	}
	return m.styles.box.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderForm() string {
	f := m.form
	lines := []string{m.styles.title.Render(f.title), ""}
	for i, in := range f.inputs {
		lines = append(lines, fmt.Sprintf("%-16s %s", f.labels[i], in.View()))
	}
	lines = append(lines, "", m.styles.muted.Render("tab next • enter submit • esc cancel"))
	return m.styles.modal.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderPrompt() string {
	p := m.prompt
	hint := "y confirm • n cancel"
	if p.Informational() {
		hint = "enter close"
	}
	body := m.styles.title.Render(p.Title) + "\n\n" + p.Message + "\n\n" + m.styles.muted.Render(hint)
	return m.styles.modal.Render(body)
}
