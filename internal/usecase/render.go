package usecase

import (
	"fmt"
	"strings"

	"telegram-blackout-bot/internal/domain/model"
)

const (
	iconOutage  = "🔴"
	iconPowerOn = "🟢"
	iconNeutral = "⚪️"
)

// FormatMinutes converts minutes from midnight to "HH:MM". No wrap is
// performed: 1440 renders as "24:00", the full-day boundary the upstream
// schedule uses.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// renderDay produces the display lines for one day. A nil day means the
// document carried no data for it; an empty slot list means no outages
// are planned.
func (uc *NavigationUC) renderDay(day *model.DaySchedule) []string {
	if day == nil {
		return []string{uc.tr.T("no_data")}
	}
	if len(day.Slots) == 0 {
		return []string{uc.tr.T("schedule_empty")}
	}

	date := strings.SplitN(day.Date, "T", 2)[0]
	lines := make([]string, 0, len(day.Slots)+1)
	lines = append(lines, uc.tr.T("date_header", date))

	for _, slot := range day.Slots {
		var icon, label string
		switch slot.Type {
		case model.StatusDefinite:
			icon, label = iconOutage, uc.tr.T("status_outage")
		case model.StatusNotPlanned:
			icon, label = iconPowerOn, uc.tr.T("status_power_on")
		default:
			// unrecognized future tags degrade gracefully
			icon, label = iconNeutral, slot.Type
		}
		lines = append(lines, fmt.Sprintf("%s %s - %s : %s",
			icon, FormatMinutes(slot.Start), FormatMinutes(slot.End), label))
	}
	return lines
}

// renderGroup builds the full message for one group: header plus the
// today and tomorrow sections.
func (uc *NavigationUC) renderGroup(city model.CityConfig, groupID string, gs model.GroupSchedule) string {
	updated := gs.UpdatedOn
	if updated == "" {
		updated = uc.tr.T("updated_unknown")
	}

	var b strings.Builder
	b.WriteString(uc.tr.T("group_header", city.Name, groupID, updated))
	b.WriteString("\n\n")
	b.WriteString(uc.tr.T("today_header") + "\n")
	b.WriteString(strings.Join(uc.renderDay(gs.Today), "\n"))
	b.WriteString("\n\n")
	b.WriteString(uc.tr.T("tomorrow_header") + "\n")
	b.WriteString(strings.Join(uc.renderDay(gs.Tomorrow), "\n"))
	return b.String()
}
