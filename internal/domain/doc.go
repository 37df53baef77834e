// Package domain models the decision logic of the weather alarm engine.
//
// # Severity bands
//
// Each alarm defines an ordered list of severity bands. A band covers the
// half-open value range [Gt, Lt) and carries the notification message and the
// cooldown for that tier:
//
//	gt: 10, lt: 20   "Lite blåsigt"    cooldown 24h
//	gt: 20, lt: 30   "Mycket blåsigt"  cooldown 24h
//	gt: 30, lt: 40   "Jätteblåsigt!"   cooldown 6h
//	gt: 40, lt: 1000 "STORM VARNING!"  cooldown 1h
//
// Bands may leave gaps (a value in a gap simply produces no alert) and may,
// by misconfiguration, overlap. Overlaps are resolved by declaration order:
// the first matching band wins, regardless of severity. A band with
// Gt >= Lt is a configuration error and disables the whole alarm.
//
// # Cooldowns
//
// A cooldown suppresses repeat notifications for the same (recipient, band)
// pair. State lives in memory for the lifetime of the process; a restart
// resets every pair to eligible. The key space is bounded by
// recipients × bands per alarm, so entries are never expired.
//
// # Status pings
//
// Independent of forecast data, a recipient may opt into a startup ping
// (sent once per process start) and a daily ping (sent once per calendar day
// at or after a configured local time). Sending a startup ping counts as that
// day's status ping so a recipient never receives two on the same day.
//
// # Weather metrics
//
// One alarm watches one scalar metric of the hourly forecast. The metric is
// selected by a [MetricSpec]: the forecast field to read plus the unit and
// title strings used in notification text. Supported metrics are wind_speed
// (m/s), precipitation (mm/h) and temperature (°C). A forecast hour that
// lacks the field is skipped, not an error.
package domain
