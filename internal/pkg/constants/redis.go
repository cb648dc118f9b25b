package constants

// Redis key formats
const (
	// Collector Service
	KeyVehicleLocation = "vehicle:location:%s" // Format: vehicle:location:{vehicle_id}
	KeyVehicleGeo      = "vehicles:geo"        // Geo set of latest vehicle positions
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
)
