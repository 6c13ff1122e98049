package router

// OpKind names a logical management operation.
type OpKind string

const (
	OpPower       OpKind = "power"
	OpHealth      OpKind = "health"
	OpSEL         OpKind = "sel"
	OpPowerOn     OpKind = "poweron"
	OpSetBootMode OpKind = "boot"
	OpReboot      OpKind = "reboot"
	OpKdump       OpKind = "kdump"
	OpDriveStatus OpKind = "drive_status"
	OpDriveLocate OpKind = "drive_locate"
	OpNvmeStatus  OpKind = "nvme_status"
	OpNvmeLocate  OpKind = "nvme_locate"
)

// Operation is a logical operation plus everything needed to build its
// transport payload. Constructed once from parsed input, read-only after.
type Operation struct {
	Kind OpKind

	// SetBootMode
	BootTarget string

	// DriveLocate / NvmeLocate
	LocateState string // "on" or "off"
	Slot        string

	// Reboot / Kdump
	Magic  string
	Reason string
}

// Power queries the chassis power state.
func Power() Operation { return Operation{Kind: OpPower} }

// Health queries sensor readings.
func Health() Operation { return Operation{Kind: OpHealth} }

// SEL lists the system event log.
func SEL() Operation { return Operation{Kind: OpSEL} }

// PowerOn powers the chassis on.
func PowerOn() Operation { return Operation{Kind: OpPowerOn} }

// SetBootMode selects the next boot device (pxe or bios).
func SetBootMode(target string) Operation {
	return Operation{Kind: OpSetBootMode, BootTarget: target}
}

// Reboot power-cycles the host after confirmation.
func Reboot(magic, reason string) Operation {
	return Operation{Kind: OpReboot, Magic: magic, Reason: reason}
}

// Kdump sends a diagnostic interrupt after confirmation.
func Kdump(magic, reason string) Operation {
	return Operation{Kind: OpKdump, Magic: magic, Reason: reason}
}

// DriveStatus lists RAID physical disks via RACADM.
func DriveStatus() Operation { return Operation{Kind: OpDriveStatus} }

// DriveLocate toggles a drive bay locate LED via RACADM.
func DriveLocate(state, slot string) Operation {
	return Operation{Kind: OpDriveLocate, LocateState: state, Slot: slot}
}

// NvmeStatus lists NVMe drives via Redfish.
func NvmeStatus() Operation { return Operation{Kind: OpNvmeStatus} }

// NvmeLocate toggles an NVMe bay locate LED via Redfish.
func NvmeLocate(state, slot string) Operation {
	return Operation{Kind: OpNvmeLocate, LocateState: state, Slot: slot}
}
