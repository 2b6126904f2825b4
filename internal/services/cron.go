package services

import (
	"fmt"
	"strconv"
	"strings"
)

var weekdayNames = map[string]string{
	"0": "Sunday", "1": "Monday", "2": "Tuesday", "3": "Wednesday",
	"4": "Thursday", "5": "Friday", "6": "Saturday", "7": "Sunday",
}

// CronToHuman renders a standard five-field cron expression as display text.
// Only the daily/weekly shapes the scheduler actually produces are
// translated; anything else is shown as-is.
func CronToHuman(expr string) string {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return expr
	}
	minute, hour, dom, month, dow := fields[0], fields[1], fields[2], fields[3], fields[4]

	if dom != "*" || month != "*" {
		return expr
	}

	clock, ok := formatClock(hour, minute)
	if !ok {
		return expr
	}

	if dow == "*" {
		return "Daily at " + clock
	}
	if name, ok := weekdayNames[dow]; ok {
		return "Weekly on " + name + " at " + clock
	}
	return expr
}

func formatClock(hourField, minuteField string) (string, bool) {
	hour, err := strconv.Atoi(hourField)
	if err != nil || hour < 0 || hour > 23 {
		return "", false
	}
	minute, err := strconv.Atoi(minuteField)
	if err != nil || minute < 0 || minute > 59 {
		return "", false
	}

	suffix := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, suffix), true
}
