// Package device provides device identity and location collaborators
// consumed by the analytics and push modules.
package device

import (
	"runtime"
	"time"

	"github.com/google/uuid"
)

// Info describes the installation and host device.
type Info interface {
	InstallationID() string
	Model() string
	Manufacturer() string
	OSName() string
	OSVersion() string
	TimezoneOffsetSeconds() int
}

// StaticInfo is an Info with fixed values, generated once at construction.
type StaticInfo struct {
	ID              string
	DeviceModel     string
	DeviceVendor    string
	OS              string
	Version         string
	TimezoneSeconds int
}

// NewInfo creates device info for the running process. The installation id
// is freshly generated and stable for the process lifetime.
func NewInfo(osVersion string) *StaticInfo {
	_, offset := time.Now().Zone()
	return &StaticInfo{
		ID:              uuid.NewString(),
		DeviceModel:     "unknown",
		DeviceVendor:    "unknown",
		OS:              runtime.GOOS,
		Version:         osVersion,
		TimezoneSeconds: offset,
	}
}

func (i *StaticInfo) InstallationID() string { return i.ID }
func (i *StaticInfo) Model() string { return i.DeviceModel }
func (i *StaticInfo) Manufacturer() string { return i.DeviceVendor }
func (i *StaticInfo) OSName() string { return i.OS }
func (i *StaticInfo) OSVersion() string { return i.Version }
func (i *StaticInfo) TimezoneOffsetSeconds() int { return i.TimezoneSeconds }
