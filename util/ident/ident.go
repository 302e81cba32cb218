package ident

import (
	"strconv"
	"time"
)

// TimeID returns the current millisecond timestamp as a decimal string,
// the id scheme used for animals, tickets and users.
func TimeID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// BookingID returns "B" + the last 6 digits of the millisecond timestamp.
// Ids are only time-locally unique; two bookings in the same millisecond
// collide, and the prefix repeats roughly every 17 minutes.
func BookingID() string {
	ms := TimeID()
	return "B" + ms[len(ms)-6:]
}

// Today returns the current date as YYYY-MM-DD, the createdAt format
// stamped on bookings.
func Today() string {
	return time.Now().Format("2006-01-02")
}
