package common

// UnknownStr is rendered for enum values outside their defined range.
const UnknownStr = "unknown"
