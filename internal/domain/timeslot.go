package domain

import "time"

type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
	TimeSlotEvening   TimeSlot = "evening"
)

// Slot boundaries are UTC hours, lower bound inclusive and upper bound exclusive.
// They approximate a CET business day: morning 09:00-13:59, afternoon 14:00-17:59,
// evening 18:00-22:59 local time.
var timeSlotHours = map[TimeSlot][2]int{
	TimeSlotMorning:   {8, 13},
	TimeSlotAfternoon: {13, 17},
	TimeSlotEvening:   {17, 22},
}

func (s TimeSlot) Valid() bool {
	_, ok := timeSlotHours[s]
	return ok
}

// Matches reports whether t starts within the slot. An empty or unknown slot
// matches every instant.
func (s TimeSlot) Matches(t time.Time) bool {
	bounds, ok := timeSlotHours[s]
	if !ok {
		return true
	}

	h := t.UTC().Hour()

	return h >= bounds[0] && h < bounds[1]
}
