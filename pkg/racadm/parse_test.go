package racadm

import (
	"strings"
	"testing"
)

const pdiskPair = `Disk.Bay.0:Enclosure.Internal.0-1:RAID.Integrated.1-1
   Status                           = Ok
   Size                             = 931.00 GB
   SerialNumber                     = WD-AAA111
Disk.Bay.1:Enclosure.Internal.0-1:RAID.Integrated.1-1
   Status                           = Ok
   Size                             = 931.00 GB
   SerialNumber                     = WD-BBB222
`

func TestParseDiskStatusFields(t *testing.T) {
	disks, warning := ParseDiskStatus(pdiskPair)

	if len(disks) != 2 {
		t.Fatalf("ParseDiskStatus() returned %d disks; want 2", len(disks))
	}
	if warning != "" {
		t.Errorf("even disk count produced warning %q", warning)
	}

	first := disks[0]
	if !strings.HasPrefix(first.Bay, "Disk.Bay.0") {
		t.Errorf("first bay = %q; want Disk.Bay.0 prefix", first.Bay)
	}
	if first.Status != "Ok" {
		t.Errorf("first status = %q; want Ok", first.Status)
	}
	if first.Size != "931.00 GB" {
		t.Errorf("first size = %q; want 931.00 GB", first.Size)
	}
	if first.Detail != "WD-AAA111" {
		t.Errorf("first serial = %q; want WD-AAA111", first.Detail)
	}
}

func TestParseDiskStatusOddCountWarns(t *testing.T) {
	single := `Disk.Bay.4:Enclosure.Internal.0-1:RAID.Integrated.1-1
   Status                           = Ok
   Size                             = 1863.00 GB
   SerialNumber                     = ZZZ999
`
	disks, warning := ParseDiskStatus(single)

	if len(disks) != 1 {
		t.Fatalf("ParseDiskStatus() returned %d disks; want 1", len(disks))
	}
	if warning == "" {
		t.Error("odd disk count produced no warning")
	}
}

func TestParseDiskStatusEmptyOutput(t *testing.T) {
	disks, warning := ParseDiskStatus("")

	if len(disks) != 0 {
		t.Fatalf("ParseDiskStatus(empty) returned %d disks; want 0", len(disks))
	}
	if warning != "" {
		t.Errorf("empty output produced warning %q", warning)
	}
}

func TestParseDiskStatusPreservesReportingOrder(t *testing.T) {
	disks, _ := ParseDiskStatus(pdiskPair)

	if !strings.HasPrefix(disks[0].Bay, "Disk.Bay.0") || !strings.HasPrefix(disks[1].Bay, "Disk.Bay.1") {
		t.Errorf("disk order not preserved: %q, %q", disks[0].Bay, disks[1].Bay)
	}
}

func TestLocateCommand(t *testing.T) {
	tests := []struct {
		name string
		on   bool
		slot string
		want string
	}{
		{"blink", true, "3", "racadm raid blink:Disk.Bay.3:Enclosure.Internal.0-1"},
		{"unblink", false, "0", "racadm raid unblink:Disk.Bay.0:Enclosure.Internal.0-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocateCommand(tt.on, tt.slot); got != tt.want {
				t.Errorf("LocateCommand(%v, %q) = %q; want %q", tt.on, tt.slot, got, tt.want)
			}
		})
	}
}
