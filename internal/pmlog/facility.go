package pmlog

// Facility is a secondary classification tag for log messages,
// independent of severity. Codes follow the syslog encoding
// (facility number shifted left by 3).
type Facility int

const (
	FacilityKern     Facility = 0 << 3
	FacilityUser     Facility = 1 << 3
	FacilityMail     Facility = 2 << 3
	FacilityDaemon   Facility = 3 << 3
	FacilityAuth     Facility = 4 << 3
	FacilitySyslog   Facility = 5 << 3
	FacilityLpr      Facility = 6 << 3
	FacilityNews     Facility = 7 << 3
	FacilityUucp     Facility = 8 << 3
	FacilityCron     Facility = 9 << 3
	FacilityAuthpriv Facility = 10 << 3
	FacilityFtp      Facility = 11 << 3
	FacilityLocal0   Facility = 16 << 3
	FacilityLocal1   Facility = 17 << 3
	FacilityLocal2   Facility = 18 << 3
	FacilityLocal3   Facility = 19 << 3
	FacilityLocal4   Facility = 20 << 3
	FacilityLocal5   Facility = 21 << 3
	FacilityLocal6   Facility = 22 << 3
	FacilityLocal7   Facility = 23 << 3
)

var facilityNames = map[Facility]string{
	FacilityKern:     "kern",
	FacilityUser:     "user",
	FacilityMail:     "mail",
	FacilityDaemon:   "daemon",
	FacilityAuth:     "auth",
	FacilitySyslog:   "syslog",
	FacilityLpr:      "lpr",
	FacilityNews:     "news",
	FacilityUucp:     "uucp",
	FacilityCron:     "cron",
	FacilityAuthpriv: "authpriv",
	FacilityFtp:      "ftp",
	FacilityLocal0:   "local0",
	FacilityLocal1:   "local1",
	FacilityLocal2:   "local2",
	FacilityLocal3:   "local3",
	FacilityLocal4:   "local4",
	FacilityLocal5:   "local5",
	FacilityLocal6:   "local6",
	FacilityLocal7:   "local7",
}

// ParseFacility matches s against the canonical facility names.
// The boolean result is false for unrecognized input.
func ParseFacility(s string) (Facility, bool) {
	for f, name := range facilityNames {
		if s == name {
			return f, true
		}
	}
	return 0, false
}

// String returns the canonical name of the facility, or "Unknown" for
// unrecognized codes.
func (f Facility) String() string {
	if name, ok := facilityNames[f]; ok {
		return name
	}
	return "Unknown"
}
