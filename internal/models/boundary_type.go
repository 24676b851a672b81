package models

// BoundaryType identifies the kind of security zone a trust boundary
// represents. The diagram synthesizer keys its cluster palette off this.
type BoundaryType string

const (
	BoundaryTypeInternet   BoundaryType = "internet"
	BoundaryTypeDMZ        BoundaryType = "dmz"
	BoundaryTypeInternal   BoundaryType = "internal"
	BoundaryTypeCloud      BoundaryType = "cloud"
	BoundaryTypePartner    BoundaryType = "partner"
	BoundaryTypeRestricted BoundaryType = "restricted"
)

// IsValid checks if the BoundaryType is a known, valid type
func (b BoundaryType) IsValid() bool {
	switch b {
	case BoundaryTypeInternet, BoundaryTypeDMZ, BoundaryTypeInternal,
		BoundaryTypeCloud, BoundaryTypePartner, BoundaryTypeRestricted:
		return true
	}
	return false
}

// String returns the string representation of the BoundaryType
func (b BoundaryType) String() string {
	return string(b)
}

// AllBoundaryTypes returns a slice of all valid BoundaryType values
func AllBoundaryTypes() []BoundaryType {
	return []BoundaryType{
		BoundaryTypeInternet,
		BoundaryTypeDMZ,
		BoundaryTypeInternal,
		BoundaryTypeCloud,
		BoundaryTypePartner,
		BoundaryTypeRestricted,
	}
}
