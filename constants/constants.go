package constants

import "os"

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetPublishBucket() string {
	bucket := os.Getenv("PUBLISH_BUCKET")
	if bucket != "" {
		return bucket
	}

	panic("PUBLISH_BUCKET environment variable is not set!")
}

func GetPublishRegion() string {
	region := os.Getenv("PUBLISH_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}

// quarter note resolution for every beats-to-ticks conversion
const TicksPerQuarter = 960

const PercussionChannel = 9

const DefaultTempo = 120
const DefaultOctave = 4
