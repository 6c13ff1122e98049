package redfish

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sylgeist/oob-cli/pkg/inventory"
	"github.com/sylgeist/oob-cli/pkg/transport"
)

// bayMarker identifies a physical drive slot in Redfish device records.
const bayMarker = "Bay"

// Fixed resource paths for the NVMe drive inventory, expanded in place so
// one GET returns full device records.
const (
	dellDrivesPath       = "/redfish/v1/Systems/System.Embedded.1/Storage/CPU.1?$expand=*($levels=1)"
	supermicroDrivesPath = "/redfish/v1/Chassis/1/Drives?$expand=*($levels=1)"

	dellBlinkPath   = "/redfish/v1/Dell/Systems/System.Embedded.1/DellRaidService/Actions/DellRaidService.BlinkTarget"
	dellUnblinkPath = "/redfish/v1/Dell/Systems/System.Embedded.1/DellRaidService/Actions/DellRaidService.UnBlinkTarget"
)

// StatusPath returns the vendor's drive inventory resource path.
func StatusPath(m inventory.Manufacturer) string {
	if m == inventory.ManufacturerSupermicro {
		return supermicroDrivesPath
	}
	return dellDrivesPath
}

// LocatePath returns the locate-LED action path. Locate is Dell-only.
func LocatePath(on bool) string {
	if on {
		return dellBlinkPath
	}
	return dellUnblinkPath
}

// LocateBody returns the JSON body addressing the target drive bay.
func LocateBody(slot string) map[string]string {
	return map[string]string{
		"TargetFQDD": fmt.Sprintf("Disk.Bay.%s:Enclosure.Internal.0-1", slot),
	}
}

// drive is one device record in a storage or drive-collection response.
type drive struct {
	ID               string `json:"Id"`
	Name             string `json:"Name"`
	Model            string `json:"Model"`
	CapacityBytes    int64  `json:"CapacityBytes"`
	PhysicalLocation struct {
		PartLocation struct {
			ServiceLabel string `json:"ServiceLabel"`
		} `json:"PartLocation"`
	} `json:"PhysicalLocation"`
	Status struct {
		State  string `json:"State"`
		Health string `json:"Health"`
	} `json:"Status"`
}

// driveCollection covers both response shapes: Dell storage controllers
// embed Drives, drive collections list Members.
type driveCollection struct {
	Drives  []drive `json:"Drives"`
	Members []drive `json:"Members"`
}

// ParseDriveStatus projects device records containing a bay marker into
// drive entries. An empty projection is a valid result, not an error: the
// caller reports it as "no compatible drives found".
func ParseDriveStatus(body string) ([]transport.DiskEntry, error) {
	var collection driveCollection
	if err := json.Unmarshal([]byte(body), &collection); err != nil {
		return nil, fmt.Errorf("failed to decode drive inventory: %w", err)
	}

	records := collection.Drives
	if len(records) == 0 {
		records = collection.Members
	}

	var disks []transport.DiskEntry
	for _, d := range records {
		location := d.PhysicalLocation.PartLocation.ServiceLabel
		if location == "" {
			location = d.ID
		}
		if !strings.Contains(location, bayMarker) && !strings.Contains(d.ID, bayMarker) {
			continue
		}

		disks = append(disks, transport.DiskEntry{
			Bay:    location,
			Status: d.Status.Health,
			Size:   formatCapacity(d.CapacityBytes),
			Detail: d.Model,
		})
	}

	return disks, nil
}

func formatCapacity(bytes int64) string {
	if bytes <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%.1f GB", float64(bytes)/1e9)
}
