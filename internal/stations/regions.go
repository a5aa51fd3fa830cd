package stations

import "strings"

// Region describes one region the station data source can serve.
type Region struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Area   string `json:"area"`
	Active bool   `json:"active"`
}

// SupportedRegions lists the regions the station data source covers.
var SupportedRegions = []Region{
	{Code: "de", Name: "Germany", Area: "europe", Active: true},
	{Code: "at", Name: "Austria", Area: "europe", Active: true},
	{Code: "ch", Name: "Switzerland", Area: "europe", Active: true},
	{Code: "fr", Name: "France", Area: "europe", Active: true},
	{Code: "nl", Name: "Netherlands", Area: "europe", Active: true},
	{Code: "be", Name: "Belgium", Area: "europe", Active: true},
	{Code: "uk", Name: "United Kingdom", Area: "europe", Active: true},
	{Code: "es", Name: "Spain", Area: "europe", Active: true},
	{Code: "it", Name: "Italy", Area: "europe", Active: true},
	{Code: "pt", Name: "Portugal", Area: "europe", Active: true},
	{Code: "cz", Name: "Czech Republic", Area: "europe", Active: true},
	{Code: "pl", Name: "Poland", Area: "europe", Active: true},
	{Code: "hu", Name: "Hungary", Area: "europe", Active: true},
	{Code: "sk", Name: "Slovakia", Area: "europe", Active: true},
	{Code: "dk", Name: "Denmark", Area: "europe", Active: true},
	{Code: "no", Name: "Norway", Area: "europe", Active: true},
	{Code: "fi", Name: "Finland", Area: "europe", Active: true},
	{Code: "se", Name: "Sweden", Area: "europe", Active: true},
	{Code: "ie", Name: "Ireland", Area: "europe", Active: true},
	{Code: "ee", Name: "Estonia", Area: "europe", Active: true},
	{Code: "lt", Name: "Lithuania", Area: "europe", Active: true},
	{Code: "hr", Name: "Croatia", Area: "europe", Active: true},
	{Code: "ro", Name: "Romania", Area: "europe", Active: true},
	{Code: "ba", Name: "Bosnia", Area: "europe", Active: true},
	{Code: "al", Name: "Albania", Area: "europe", Active: true},
	{Code: "ua", Name: "Ukraine", Area: "europe", Active: true},
	{Code: "md", Name: "Moldova", Area: "europe", Active: true},
	{Code: "ru", Name: "Russia", Area: "europe", Active: true},
	{Code: "jp", Name: "Japan", Area: "asia", Active: true},
	{Code: "cn", Name: "China", Area: "asia", Active: true},
	{Code: "tw", Name: "Taiwan", Area: "asia", Active: true},
	{Code: "in", Name: "India", Area: "asia", Active: true},
	{Code: "us", Name: "United States", Area: "americas", Active: true},
	{Code: "ca", Name: "Canada", Area: "americas", Active: true},
	{Code: "au", Name: "Australia", Area: "oceania", Active: true},
}

var regionTimezones = map[string]string{
	"de": "Europe/Berlin",
	"at": "Europe/Vienna",
	"ch": "Europe/Zurich",
	"fr": "Europe/Paris",
	"nl": "Europe/Amsterdam",
	"be": "Europe/Brussels",
	"uk": "Europe/London",
	"es": "Europe/Madrid",
	"it": "Europe/Rome",
	"cz": "Europe/Prague",
	"pl": "Europe/Warsaw",
	"hu": "Europe/Budapest",
	"dk": "Europe/Copenhagen",
	"no": "Europe/Oslo",
	"fi": "Europe/Helsinki",
	"jp": "Asia/Tokyo",
	"in": "Asia/Kolkata",
	"au": "Australia/Sydney",
	"us": "America/New_York",
	"ca": "America/Toronto",
	"ru": "Europe/Moscow",
	"cn": "Asia/Shanghai",
	"tw": "Asia/Taipei",
}

// RegionName returns the display name for a region code, falling back to the
// uppercased code for regions outside the catalog.
func RegionName(code string) string {
	code = strings.ToLower(code)
	for _, r := range SupportedRegions {
		if r.Code == code {
			return r.Name
		}
	}
	return strings.ToUpper(code)
}

// TimezoneFor returns the IANA timezone for a region code, defaulting to UTC.
func TimezoneFor(code string) string {
	if tz, ok := regionTimezones[strings.ToLower(code)]; ok {
		return tz
	}
	return "UTC"
}
