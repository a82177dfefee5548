package models

import "sort"

// EventCode is the single-character record type of a PBS accounting log line.
type EventCode string

const (
	EventReservationRecord    EventCode = "B"
	EventCheckpointed         EventCode = "C"
	EventDeleted              EventCode = "D"
	EventEnded                EventCode = "E"
	EventReservationTerminate EventCode = "K"
	EventLicenseInfo          EventCode = "L"
	EventMoved                EventCode = "M"
	EventProvisionStart       EventCode = "P"
	EventProvisionEnd         EventCode = "p"
	EventQueued               EventCode = "Q"
	EventRerun                EventCode = "R"
	EventStarted              EventCode = "S"
	EventRestarted            EventCode = "T"
	EventUnconfirmedResv      EventCode = "U"
	EventConfirmedResv        EventCode = "Y"
)

// JobMask describes every event code the histogram pre-seeds. It must not be mutated.
var JobMask = map[EventCode]string{
	EventReservationRecord:    "Reservation Record",
	EventCheckpointed:         "Job checkpointed & requeued",
	EventDeleted:              "Job/Subjob deleted",
	EventEnded:                "Job/Subjob ended",
	EventReservationTerminate: "Reservation terminated by owner",
	EventLicenseInfo:          "Information about floating licenses",
	EventMoved:                "Job move record",
	EventProvisionStart:       "Provisioning starts for job/reservation",
	EventProvisionEnd:         "Provisioning ends for job/reservation",
	EventQueued:               "Job entered queue",
	EventRerun:                "Job rerun",
	EventStarted:              "Job execution started",
	EventRestarted:            "Job restarted from checkpoint file",
	EventUnconfirmedResv:      "Unconfirmed reservation",
	EventConfirmedResv:        "Confirmed reservation by scheduler",
}

var sortedEventCodes = SortCodes(func() []EventCode {
	codes := make([]EventCode, 0, len(JobMask))
	for code := range JobMask {
		codes = append(codes, code)
	}
	return codes
}())

// SortedEventCodes returns the known codes in report column order (byte order, so
// upper case codes come before "p"). The returned slice is a copy.
func SortedEventCodes() []EventCode {
	return append([]EventCode(nil), sortedEventCodes...)
}

// SortCodes sorts codes in place in report column order and returns them.
func SortCodes(codes []EventCode) []EventCode {
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Known reports whether the code belongs to the job mask.
func (c EventCode) Known() bool {
	_, ok := JobMask[c]
	return ok
}

// Description returns the legend text of the code, or "" for unknown codes.
func (c EventCode) Description() string {
	return JobMask[c]
}
