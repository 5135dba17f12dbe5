package version

// Version is stamped at release time; keep buildable defaults for dev.
const Version = "0.3.1"
