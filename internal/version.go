package internal

// Version is the langl release version.
const Version = "0.3.0"
