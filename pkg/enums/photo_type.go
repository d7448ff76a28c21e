package enums

import "fmt"

// PhotoType labels a maintenance photo upload.
type PhotoType string

const (
	PhotoTypeBreakdown    PhotoType = "breakdown"
	PhotoTypeInstallation PhotoType = "installation"
	PhotoTypeCompletion   PhotoType = "completion"
)

var validPhotoTypes = []PhotoType{
	PhotoTypeBreakdown,
	PhotoTypeInstallation,
	PhotoTypeCompletion,
}

// String implements fmt.Stringer.
func (p PhotoType) String() string {
	return string(p)
}

// IsValid reports whether the value is known.
func (p PhotoType) IsValid() bool {
	for _, candidate := range validPhotoTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePhotoType converts raw input into a PhotoType.
func ParsePhotoType(value string) (PhotoType, error) {
	for _, candidate := range validPhotoTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid photo type %q", value)
}
