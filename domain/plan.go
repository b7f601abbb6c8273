package domain

import "time"

// Plan is one plan document from the plans directory
type Plan struct {
	Name     string // derived from the file name
	Path     string
	Content  string // read lazily, empty until loaded
	Modified time.Time
	Size     int64
}
