package racadm

import "fmt"

// enclosure is the internal backplane FQDD suffix used for bay addressing
// on this hardware class.
const enclosure = "Enclosure.Internal.0-1"

// StatusCommand returns the RACADM command listing physical disks with
// status, size and serial number.
func StatusCommand() string {
	return "racadm raid get pdisks -o -p Status,Size,SerialNumber"
}

// LocateCommand returns the RACADM command toggling a bay's locate LED.
// The blink/unblink keywords are idempotent on the controller side.
func LocateCommand(on bool, slot string) string {
	action := "blink"
	if !on {
		action = "unblink"
	}
	return fmt.Sprintf("racadm raid %s:%s", action, BayID(slot))
}

// BayID returns the FQDD of a drive bay, as it appears in RACADM output.
func BayID(slot string) string {
	return fmt.Sprintf("Disk.Bay.%s:%s", slot, enclosure)
}
