package racadm

import (
	"strings"

	"github.com/sylgeist/oob-cli/pkg/transport"
)

// bayMarker identifies a physical-drive header line in pdisk output.
const bayMarker = "Disk.Bay."

// OddBayWarning annotates a pdisk listing with an odd drive count. This
// hardware class populates enclosures in pairs, so an odd count usually
// means a dead or missing drive.
const OddBayWarning = "WARNING: odd drive count reported, enclosure should hold drives in pairs"

// ParseDiskStatus scans RACADM pdisk output into drive entries, preserving
// the controller's reporting order. The returned warning is empty unless the
// bay count is odd.
func ParseDiskStatus(output string) ([]transport.DiskEntry, string) {
	var disks []transport.DiskEntry

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, bayMarker) {
			disks = append(disks, transport.DiskEntry{Bay: line})
			continue
		}

		if len(disks) == 0 {
			continue
		}

		// Property lines follow their bay header as "Key = Value".
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		current := &disks[len(disks)-1]
		switch key {
		case "Status":
			current.Status = value
		case "Size":
			current.Size = value
		case "SerialNumber":
			current.Detail = value
		}
	}

	warning := ""
	if len(disks)%2 != 0 {
		warning = OddBayWarning
	}

	return disks, warning
}
