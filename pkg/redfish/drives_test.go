package redfish

import (
	"testing"

	"github.com/sylgeist/oob-cli/pkg/inventory"
)

func TestParseDriveStatusDellShape(t *testing.T) {
	body := `{
		"Drives": [
			{
				"Id": "Disk.Bay.21:Enclosure.Internal.0-1",
				"Model": "Dell Ent NVMe CM6 RI 3.84TB",
				"CapacityBytes": 3840755982336,
				"Status": {"State": "Enabled", "Health": "OK"}
			},
			{
				"Id": "Disk.Bay.22:Enclosure.Internal.0-1",
				"Model": "Dell Ent NVMe CM6 RI 3.84TB",
				"CapacityBytes": 3840755982336,
				"Status": {"State": "Enabled", "Health": "Critical"}
			}
		]
	}`

	disks, err := ParseDriveStatus(body)
	if err != nil {
		t.Fatalf("ParseDriveStatus() error = %v", err)
	}
	if len(disks) != 2 {
		t.Fatalf("ParseDriveStatus() returned %d disks; want 2", len(disks))
	}
	if disks[0].Status != "OK" || disks[1].Status != "Critical" {
		t.Errorf("health fields = %q, %q; want OK, Critical", disks[0].Status, disks[1].Status)
	}
	if disks[0].Size != "3840.8 GB" {
		t.Errorf("capacity = %q; want 3840.8 GB", disks[0].Size)
	}
	if disks[0].Detail != "Dell Ent NVMe CM6 RI 3.84TB" {
		t.Errorf("model = %q", disks[0].Detail)
	}
}

func TestParseDriveStatusMembersShape(t *testing.T) {
	body := `{
		"Members": [
			{
				"Id": "NVMe-Bay-0",
				"Model": "SAMSUNG MZQL23T8HCLS",
				"CapacityBytes": 3840755982336,
				"Status": {"State": "Enabled", "Health": "OK"}
			}
		]
	}`

	disks, err := ParseDriveStatus(body)
	if err != nil {
		t.Fatalf("ParseDriveStatus() error = %v", err)
	}
	if len(disks) != 1 {
		t.Fatalf("ParseDriveStatus() returned %d disks; want 1", len(disks))
	}
}

func TestParseDriveStatusSkipsRecordsWithoutBayMarker(t *testing.T) {
	body := `{
		"Drives": [
			{"Id": "Virtual.Disk.0", "Model": "PERC H755", "CapacityBytes": 100},
			{"Id": "Disk.Bay.1:Enclosure.Internal.0-1", "Model": "X", "CapacityBytes": 100, "Status": {"Health": "OK"}}
		]
	}`

	disks, err := ParseDriveStatus(body)
	if err != nil {
		t.Fatalf("ParseDriveStatus() error = %v", err)
	}
	if len(disks) != 1 {
		t.Fatalf("ParseDriveStatus() returned %d disks; want 1", len(disks))
	}
}

func TestParseDriveStatusEmptyProjectionIsNotAnError(t *testing.T) {
	disks, err := ParseDriveStatus(`{"Drives": []}`)
	if err != nil {
		t.Fatalf("ParseDriveStatus() error = %v", err)
	}
	if len(disks) != 0 {
		t.Fatalf("ParseDriveStatus() returned %d disks; want 0", len(disks))
	}
}

func TestParseDriveStatusMalformedBody(t *testing.T) {
	if _, err := ParseDriveStatus("not json"); err == nil {
		t.Error("ParseDriveStatus() accepted malformed body")
	}
}

func TestStatusPathPerManufacturer(t *testing.T) {
	if got := StatusPath(inventory.ManufacturerDell); got != dellDrivesPath {
		t.Errorf("StatusPath(Dell) = %q", got)
	}
	if got := StatusPath(inventory.ManufacturerSupermicro); got != supermicroDrivesPath {
		t.Errorf("StatusPath(Supermicro) = %q", got)
	}
}

func TestLocateBodyAddressesBay(t *testing.T) {
	body := LocateBody("7")
	if body["TargetFQDD"] != "Disk.Bay.7:Enclosure.Internal.0-1" {
		t.Errorf("LocateBody(7) = %q", body["TargetFQDD"])
	}
}
