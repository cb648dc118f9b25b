package constants

// NSQ topics
const (
	// Every accepted position report is published here for the toll pipeline
	TopicLocationUpdate = "location_update"
)
