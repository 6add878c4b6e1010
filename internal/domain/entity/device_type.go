package entity

// DeviceType tags a telemetry entry with the kind of sensor that produced it.
// The set is fixed; payloads from unknown device kinds are rejected at ingestion.
type DeviceType string

const (
	DeviceTypeSonar      DeviceType = "sonar"
	DeviceTypeMotion     DeviceType = "motion"
	DeviceTypeThermostat DeviceType = "thermostat"
	DeviceTypeLight      DeviceType = "light"
)

// ParseDeviceType maps a raw request value onto the enumeration.
func ParseDeviceType(raw string) (DeviceType, bool) {
	dt := DeviceType(raw)

	return dt, dt.Valid()
}

// Valid reports whether the device type belongs to the fixed enumeration.
func (dt DeviceType) Valid() bool {
	switch dt {
	case DeviceTypeSonar, DeviceTypeMotion, DeviceTypeThermostat, DeviceTypeLight:
		return true
	default:
		return false
	}
}

func (dt DeviceType) String() string {
	return string(dt)
}
