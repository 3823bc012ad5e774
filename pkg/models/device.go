package models

// Device is one entry from the video device listing: a product name and
// the device nodes it exposes.
type Device struct {
	Name  string   `json:"name"`
	Paths []string `json:"paths"`
}
