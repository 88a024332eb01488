package installer

// Installer represents an installer identity record. Records are
// provisioned out-of-band; this system only reads them.
type Installer struct {
	ID       int
	Name     string
	Number   string
	Code     string
	Password string
	Type     *string
	Branch   *string
	City     *string
}

// BranchOrEmpty returns the installer's branch, or "" when unassigned.
func (i *Installer) BranchOrEmpty() string {
	if i.Branch == nil {
		return ""
	}
	return *i.Branch
}

// TypeOrEmpty returns the installer's role label, or "" when unassigned.
func (i *Installer) TypeOrEmpty() string {
	if i.Type == nil {
		return ""
	}
	return *i.Type
}
