// Package timetable loads point-to-point transit schedules from a
// delimited text file.
//
// One line is one record with exactly six fields in fixed order:
//
//	id ; origin ; destination ; price ; departure "HH:MM" ; arrival "HH:MM"
//
// (the delimiter rune is caller-chosen; ';' matches the reference data).
// There is no header row and no quoting. Every field that later feeds a
// cost computation is validated at load time — price must be a
// non-negative decimal, clock fields must be well-formed HH:MM — so the
// planning packages never see a partially-formed record.
package timetable
