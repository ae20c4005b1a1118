package common

// UnknownStr is the display name for enum values outside their known range.
const UnknownStr = "unknown"
