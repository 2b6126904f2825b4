package services

import "time"

// The weekly digest runs Monday 08:00 in UTC+5:30. A fixed offset is used on
// purpose: the target zone observes no daylight-saving transitions, so no
// timezone database is needed.
var istZone = time.FixedZone("IST", 5*3600+30*60)

const deliveryHour = 8

// NextScheduledRun returns the next Monday 08:00 IST strictly after the
// current slot: invoked exactly at Monday 08:00:00 it returns the following
// Monday.
func NextScheduledRun(now time.Time) time.Time {
	ist := now.In(istZone)

	days := (int(time.Monday) - int(ist.Weekday()) + 7) % 7
	if days == 0 && ist.Hour() >= deliveryHour {
		// Today's slot has passed.
		days = 7
	}

	return time.Date(ist.Year(), ist.Month(), ist.Day()+days, deliveryHour, 0, 0, 0, istZone)
}

// FormatNextRun renders a run time the way the dashboard displays it.
func FormatNextRun(t time.Time) string {
	return t.In(istZone).Format("Monday, January 2, 2006 at 3:04 PM") + " IST"
}
