package model

// Version of tidypath.
const Version = "1.0.0"
