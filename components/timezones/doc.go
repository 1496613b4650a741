// Package timezones provides the IANA time zone list behind the form
// builder's time-zone select, the priority-first ordering that select uses,
// search helpers, and a small net/http handler returning JSON options for
// client-side pickers.
//
// The backing data is embedded from data/iana_timezones.txt.
package timezones
